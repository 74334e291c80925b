package main

import (
	"os"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:           "fleet",
		Usage:          "capacity-aware fleet assignment service",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
