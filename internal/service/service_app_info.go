package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/config"
)

type appInfoService struct {
	version string
}

// NewAppInfoService constructs an [AppInfoService] serving the configured
// application version.
func NewAppInfoService(cfg config.App) AppInfoService {
	return &appInfoService{version: cfg.Version}
}

func (a *appInfoService) GetAppVersion(_ context.Context) string {
	return a.version
}
