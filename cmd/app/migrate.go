package main

import (
	"fmt"

	"fleet/cmd"
	"fleet/internal/adapters/out/postgres"

	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply the database migrations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "down",
				Usage: "revert every applied migration instead",
			},
		},
		Action: func(c *cli.Context) error {
			config, err := cmd.LoadConfig()
			if err != nil {
				return err
			}

			if c.Bool("down") {
				if err = postgres.MigrateDown(config.DSN()); err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.App.Writer, "migrations reverted")
				return err
			}

			applied, err := postgres.Migrate(config.DSN())
			if err != nil {
				return err
			}
			if applied {
				_, err = fmt.Fprintln(c.App.Writer, "migrations applied")
			} else {
				_, err = fmt.Fprintln(c.App.Writer, "no change")
			}
			return err
		},
	}
}
