package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/api"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/config"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/dashboard"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/repositories/users"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/session"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/usecases"
	"github.com/wolfdeveloper/wolfdevlovers/internal/logging"
)

// App wires the client stack for one CLI session: REST client, session
// cache, repository, use cases and the dashboard view-model.
type App struct {
	config *config.Config
	vm     *dashboard.ViewModel
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the client stack from configuration.
func NewApp(c *config.Config, logger logging.Logger) *App {
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	sess := session.NewStore()
	repo := users.NewRESTRepository(apiClient, sess)

	vm := dashboard.New(
		usecases.NewInsert(repo),
		usecases.NewProfile(repo),
		usecases.NewBackground(repo),
		usecases.NewLoverImage(repo),
		usecases.NewLookup(repo),
		sess,
		logger,
	)
	vm.Setup()

	return &App{
		config: c,
		vm:     vm,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}
