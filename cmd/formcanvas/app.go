package main

import (
	"github.com/formcanvas/formcanvas/internal/config"
	"github.com/formcanvas/formcanvas/internal/logger"
	"github.com/formcanvas/formcanvas/internal/registry"
	"github.com/formcanvas/formcanvas/internal/store"
)

// loadConfig reads the config file named by the flags, falling back to
// the default location, and applies flag overrides.
func loadConfig(flags *rootFlags) (config.Config, error) {
	path := flags.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	return cfg, nil
}

func newAppLogger(cfg config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: true})
}

// openForms opens the saved-forms registry under the data directory.
func openForms(cfg config.Config) (*registry.Registry, error) {
	path, err := cfg.RegistryPath()
	if err != nil {
		return nil, err
	}
	return registry.NewRegistry(path)
}

// sessionStore assembles the tiered session store: Redis when
// configured, then the data-dir file, then the temp-dir fallback. Tiers
// that cannot be opened are skipped with a warning so the builder still
// starts.
func sessionStore(cfg config.Config, log *logger.Logger) (store.Store, error) {
	var backends []store.Store

	if cfg.RedisURL != "" {
		redis, err := store.NewRedisStore(cfg.RedisURL, "")
		if err != nil {
			log.WithFields(map[string]any{"error": err.Error()}).Warn("redis tier unavailable")
		} else {
			backends = append(backends, redis)
		}
	}

	sessionPath, err := cfg.SessionPath()
	if err != nil {
		return nil, err
	}
	file, err := store.NewFileStore(sessionPath)
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("file tier unavailable")
	} else {
		backends = append(backends, file)
	}

	temp, err := store.NewSessionFileStore("session")
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("temp tier unavailable")
	} else {
		backends = append(backends, temp)
	}

	return store.NewTiered(log, backends...), nil
}
