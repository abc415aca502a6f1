package app

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"shelftrack/config"
	"shelftrack/logger"
	"shelftrack/repo"
)

func CLI(args []string) int {
	var app appEnv
	if err := app.fromArgs(args); err != nil {
		fmt.Println(err)
		return 2
	}

	if err := app.run(); err != nil {
		logger.Error("Runtime error", "error", err)
		return 1
	}
	return 0
}

type appEnv struct {
	config  *config.Config
	storage *repo.Repo
	in      io.Reader
	out     io.Writer
}

func (app *appEnv) fromArgs(args []string) error {
	// The program is purely interactive: no flags, no subcommands.
	// Everything configurable comes from the environment.
	if len(args) > 0 {
		return fmt.Errorf("shelftrack takes no arguments, got %q", args)
	}

	app.config = config.Load()
	app.in = os.Stdin
	app.out = os.Stdout

	return nil
}

func (app *appEnv) run() error {
	logger.Init(app.config.LogLevel)

	// One id per interactive session, to correlate log lines from a run
	session := uuid.New().String()
	logger.Info("Starting session", "session", session, "db", app.config.Database.Path)

	storage, err := repo.GetStorage(app.config.Database.Path)
	if err != nil {
		return err
	}
	app.storage = storage
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Error("Error closing storage", "error", err)
		}
	}()

	if err := storage.Seed(repo.SeedAuthors, repo.SeedBooks); err != nil {
		return err
	}

	menu := newMenu(storage, app.in, app.out)
	menu.run()

	logger.Info("Session finished", "session", session)
	return nil
}
