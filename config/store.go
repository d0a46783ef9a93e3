package config

import (
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/storage"
)

// OpenStore picks the key-value backend: Postgres when DATABASE_URL is set,
// otherwise the local SQLite file.
func OpenStore(cfg Config, log *logrus.Logger) (storage.KV, error) {
	if cfg.DatabaseURL != "" {
		log.Info("using postgres store")
		return storage.OpenPostgres(cfg.DatabaseURL)
	}

	log.WithField("path", cfg.StorePath).Info("using local sqlite store")
	return storage.OpenSQLite(cfg.StorePath)
}
