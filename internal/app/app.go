// Package app wires configuration, logging and the user map together and
// replays a short session against the table.
package app

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/usermap/internal/common"
	"github.com/dmitrijs2005/usermap/internal/config"
	"github.com/dmitrijs2005/usermap/internal/logging"
	"github.com/dmitrijs2005/usermap/internal/usermap"
)

type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer
	table  *usermap.Table
}

// NewApp validates cfg and builds a table from it. Session output goes to
// out, JSON log records to logOut.
func NewApp(cfg *config.Config, out, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(logOut, level)

	table, err := usermap.New(
		usermap.WithInitialCapacity(cfg.InitialCapacity),
		usermap.WithMaxLoadFactor(cfg.MaxLoadFactor),
		usermap.WithSaltGenerator(usermap.NewSaltGenerator(nil, cfg.SaltLength)),
		usermap.WithLogger(logger.With("component", "usermap")),
	)
	if err != nil {
		return nil, fmt.Errorf("table init error: %w", err)
	}

	return &App{config: cfg, logger: logger, out: out, table: table}, nil
}

// Run executes the session: register a user, inspect the stored record,
// change the password, reject a wrong one, and dump the slots.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting session...",
		"capacity", app.table.Capacity(), "max_load_factor", app.config.MaxLoadFactor)

	const (
		user     = "Spiderkid423"
		password = "Azeem423"
		changed  = "Zeemie$"
	)

	if err := app.table.Insert(user, password); err != nil {
		return err
	}

	rec, err := app.table.Lookup(user)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, rec.UserName())
	fmt.Fprintln(app.out, rec.Salt())
	fmt.Fprintln(app.out, hex.EncodeToString(rec.Digest()))
	fmt.Fprintf(app.out, "verify %q: %t\n", changed, rec.Verify(changed))
	fmt.Fprintf(app.out, "verify %q: %t\n", password, rec.Verify(password))

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := app.table.UpdatePassword(user, password, changed); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "password changed, verify %q: %t\n", changed, rec.Verify(changed))

	err = app.table.UpdatePassword(user, "Zeemie?", "Zmoney2")
	switch {
	case errors.Is(err, common.ErrorAuthentication):
		app.logger.Warn(ctx, "password change rejected", "user", user)
	case err != nil:
		return err
	default:
		return fmt.Errorf("password change with wrong secret succeeded for %s", user)
	}

	if err := app.table.Insert(user, password); !errors.Is(err, common.ErrorAlreadyExists) {
		return fmt.Errorf("duplicate insert for %s: %v", user, err)
	}

	fmt.Fprintf(app.out, "size: %d, capacity: %d\n", app.table.Size(), app.table.Capacity())
	fmt.Fprintln(app.out, app.table)

	app.logger.Info(ctx, "Session finished", "size", app.table.Size())
	return nil
}
