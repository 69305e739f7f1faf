package repository

import (
	"context"

	"github.com/adygyes-guide/internal/domain"
)

// AttractionRepository определяет методы для работы с достопримечательностями.
// Watch-методы возвращают живые потоки снимков: каждый вызов создаёт новую
// подписку с собственным начальным снимком. Подписка живёт до отмены ctx
// или Close потока.
type AttractionRepository interface {
	// WatchAll возвращает поток полного списка
	WatchAll(ctx context.Context) *domain.AttractionStream

	// GetByID возвращает достопримечательность по ID
	GetByID(ctx context.Context, id int64) (*domain.Attraction, error)

	// WatchByCategory возвращает поток, отфильтрованный по категории
	WatchByCategory(ctx context.Context, category domain.Category) *domain.AttractionStream

	// WatchSearch возвращает поток подстрочного поиска по имени или описанию
	WatchSearch(ctx context.Context, query string) *domain.AttractionStream

	// WatchOfflineAvailable возвращает поток записей, доступных офлайн
	WatchOfflineAvailable(ctx context.Context) *domain.AttractionStream

	// Upsert вставляет или полностью заменяет запись по ID
	Upsert(ctx context.Context, attraction domain.Attraction) error

	// UpsertMany вставляет или заменяет набор записей, идемпотентно
	UpsertMany(ctx context.Context, attractions []domain.Attraction) error

	// Delete удаляет запись по идентичности
	Delete(ctx context.Context, attraction domain.Attraction) error

	// DeleteAll очищает хранилище
	DeleteAll(ctx context.Context) error

	// Count возвращает число записей в хранилище
	Count(ctx context.Context) (int, error)
}
