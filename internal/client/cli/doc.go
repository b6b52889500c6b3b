// Package cli is the interactive front-end of the lovers client. It renders
// the dashboard flow as a read–eval–print loop: the user fills the profile
// form command by command, submits it to receive a share code, and can look
// up any profile by code.
package cli
