package main

import (
	"context"
	"fmt"
	"io"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/logging"

	"github.com/spf13/cobra"
)

const placeholderName = "Your Name"

func newCreateAdminCmd() *cobra.Command {
	var (
		username string
		password string
		reset    bool
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the dashboard user and the placeholder profile if they are missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if username == "" {
				username = cfg.AdminUsername
			}
			if password == "" {
				password = cfg.AdminPassword
			}
			log := logging.New(cfg.LogLevel, cfg.LogFormat)

			db, err := database.Open(cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.Migrate(db); err != nil {
				return err
			}

			return createAdmin(cmd.Context(), cmd.OutOrStdout(), database.NewStore(db), username, password, reset)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (defaults to ADMIN_USERNAME)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (defaults to ADMIN_PASSWORD)")
	cmd.Flags().BoolVar(&reset, "reset", false, "overwrite the password if the user already exists")
	return cmd
}

// createAdmin is safe to run on every deploy.
func createAdmin(ctx context.Context, out io.Writer, store *database.Store, username, password string, reset bool) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	created, err := store.EnsureAdmin(ctx, username, hash)
	if err != nil {
		return err
	}
	switch {
	case created:
		fmt.Fprintf(out, "created user %q\n", username)
	case reset:
		user, err := store.UserByUsername(ctx, username)
		if err != nil {
			return err
		}
		if err := store.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}
		fmt.Fprintf(out, "password reset for %q\n", username)
	default:
		fmt.Fprintf(out, "user %q already exists\n", username)
	}

	created, err = store.EnsureAbout(ctx, placeholderName)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintln(out, "created placeholder profile")
	}
	return nil
}
