// Package device подменяет службу геолокации устройства и систему разрешений
// ОС: внешние коллабораторы, до которых из процесса не дотянуться напрямую.
// Поведение задаётся конфигурацией, ошибки совпадают с ошибками реальной
// службы.
package device

import (
	"context"

	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/config"
	"github.com/adygyes-guide/internal/domain"
	"github.com/adygyes-guide/internal/domain/repository"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
)

type locator struct {
	cfg    config.LocationConfig
	logger *zap.Logger
}

func NewLocator(cfg config.LocationConfig, logger *zap.Logger) repository.DeviceLocationRepository {
	return &locator{
		cfg:    cfg,
		logger: logger,
	}
}

func (l *locator) HasPermission(ctx context.Context) bool {
	return l.cfg.PermissionGranted
}

func (l *locator) RequestPermission(ctx context.Context) (bool, error) {
	l.logger.Debug("Location permission requested",
		zap.Bool("granted", l.cfg.PermissionGranted))
	return l.cfg.PermissionGranted, nil
}

func (l *locator) CurrentLocation(ctx context.Context) (*domain.Location, error) {
	if !l.cfg.PermissionGranted {
		return nil, apperrors.ErrLocationPermissionDenied
	}
	if !l.cfg.Available {
		return nil, apperrors.ErrLocationUnavailable
	}

	return &domain.Location{
		Latitude:  l.cfg.Lat,
		Longitude: l.cfg.Lon,
	}, nil
}
