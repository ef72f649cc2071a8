package root

import (
	"context"
	"database/sql"
	"io"

	"github.com/hiagosil/sistemalevelup/internal/config"
	"github.com/hiagosil/sistemalevelup/internal/engine"
	"github.com/hiagosil/sistemalevelup/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context, out io.Writer) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	notifier := engine.NopNotifier()
	if !cfg.Quiet {
		notifier = consoleNotifier(out)
	}
	return engine.NewServiceWith(db, engine.SystemClock(), notifier), cleanup, nil
}

func openServiceQuiet(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db), cleanup, nil
}
