package impl

import (
	"io"
	"log/slog"

	"github.com/ushankamesh-devX/helatrade-sub000/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(strictCategories bool, maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Categories: &config.CategoriesConfig{
			Strict: strictCategories,
		},
	}
}
