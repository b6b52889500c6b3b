package main

import (
	"context"
	"os"

	"github.com/wolfdeveloper/wolfdevlovers/internal/buildinfo"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/cli"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/config"
	"github.com/wolfdeveloper/wolfdevlovers/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr)

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
