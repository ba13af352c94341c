package main

import (
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/config"
	"github.com/dmitrijs2005/passvault/internal/filex"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/store"
	"github.com/spf13/cobra"
)

// vault holds what every store-backed command needs.
type vault struct {
	cfg   *config.Config
	log   logging.Logger
	store *store.Store
}

func loadConfig(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(cmd.Context(), cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: cmd.ErrOrStderr(),
	})
	return cfg, log, nil
}

func setup(cmd *cobra.Command) (*vault, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureParentDir(cfg.DBPath); err != nil {
		return nil, err
	}

	st, err := store.Open(cmd.Context(), cfg.DBPath)
	if err != nil {
		log.Error(cmd.Context(), "cannot open vault", "path", cfg.DBPath, "error", err)
		return nil, fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}
	log.Debug(cmd.Context(), "vault opened", "path", cfg.DBPath)

	return &vault{cfg: cfg, log: log, store: st}, nil
}

func (r *vault) Close() error {
	return r.store.Close()
}
