package main

import (
	"fmt"
	"time"

	"fleet/cmd"
	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/principal"

	"github.com/urfave/cli/v2"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "mint a bearer token for local development",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "role",
				Value: string(principal.RoleSuperAdmin),
				Usage: "SUPER_ADMIN or MSME",
			},
			&cli.StringFlag{
				Name:  "company",
				Usage: "company id, required for MSME",
			},
			&cli.StringFlag{
				Name:  "subject",
				Value: "dev",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Value: 24 * time.Hour,
			},
		},
		Action: func(c *cli.Context) error {
			config, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			auth, err := httpin.NewTokenAuthenticator(config.JWTSecret)
			if err != nil {
				return fmt.Errorf("JWT_SECRET: %w", err)
			}

			role, err := principal.ParseRole(c.String("role"))
			if err != nil {
				return err
			}

			var companyID *kernel.UUID
			if raw := c.String("company"); raw != "" {
				id, parseErr := kernel.UUIDFromString(raw)
				if parseErr != nil {
					return fmt.Errorf("company: %w", parseErr)
				}
				companyID = &id
			}

			token, err := auth.Issue(c.String("subject"), role, companyID, c.Duration("ttl"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.App.Writer, token)
			return err
		},
	}
}
