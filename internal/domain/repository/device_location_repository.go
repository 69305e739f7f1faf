package repository

import (
	"context"

	"github.com/adygyes-guide/internal/domain"
)

// DeviceLocationRepository - внешний коллаборатор: служба геолокации
// устройства и система разрешений ОС. Функции, зависящие от местоположения,
// обязаны проверить разрешение перед запросом координат.
type DeviceLocationRepository interface {
	// HasPermission проверяет, выдано ли разрешение на геолокацию
	HasPermission(ctx context.Context) bool

	// RequestPermission запрашивает разрешение у пользователя
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentLocation возвращает текущие координаты устройства
	CurrentLocation(ctx context.Context) (*domain.Location, error)
}
