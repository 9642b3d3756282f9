package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/models"
)

type appInfoService struct {
	version string
}

// NewAppInfoService picks the version the gateway reports on /api/version/:
// cfg.Version when set, else the version stamped into the binary.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, log *logger.Logger) (AppInfoService, error) {
	version, source := strings.TrimSpace(cfg.Version), "config"
	if version == "" && build.BuildVersion() != models.BuildInfoNotAvailable {
		version, source = build.BuildVersion(), "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Str("source", source).Msg("gateway version resolved")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
