package sqlite

import (
	"context"

	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/domain"
	"github.com/adygyes-guide/internal/domain/repository"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
)

// attractionRepository транслирует строки хранилища в доменную модель
// поле-в-поле и обратно. Никакого кэширования сверх живых подписок
// хранилища. Нераспознанный тег категории при чтении - ошибка декодирования,
// а не значение по умолчанию.
type attractionRepository struct {
	store  *AttractionStore
	logger *zap.Logger
}

func NewAttractionRepository(store *AttractionStore, logger *zap.Logger) repository.AttractionRepository {
	return &attractionRepository{
		store:  store,
		logger: logger,
	}
}

func (r *attractionRepository) WatchAll(ctx context.Context) *domain.AttractionStream {
	return r.stream(ctx, r.store.queryAll)
}

func (r *attractionRepository) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	row, err := r.store.getByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDatabaseError.WithCause(err)
	}
	if row == nil {
		return nil, apperrors.ErrAttractionNotFound
	}

	attraction, err := rowToDomain(*row)
	if err != nil {
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) WatchByCategory(ctx context.Context, category domain.Category) *domain.AttractionStream {
	return r.stream(ctx, r.store.queryByCategory(string(category)))
}

func (r *attractionRepository) WatchSearch(ctx context.Context, query string) *domain.AttractionStream {
	return r.stream(ctx, r.store.querySearch(query))
}

func (r *attractionRepository) WatchOfflineAvailable(ctx context.Context) *domain.AttractionStream {
	return r.stream(ctx, r.store.queryOfflineAvailable)
}

func (r *attractionRepository) Upsert(ctx context.Context, attraction domain.Attraction) error {
	if err := r.store.upsert(ctx, rowFromDomain(attraction)); err != nil {
		return apperrors.ErrDatabaseError.WithCause(err)
	}
	return nil
}

func (r *attractionRepository) UpsertMany(ctx context.Context, attractions []domain.Attraction) error {
	rows := make([]attractionRow, len(attractions))
	for i, a := range attractions {
		rows[i] = rowFromDomain(a)
	}
	if err := r.store.upsertMany(ctx, rows); err != nil {
		return apperrors.ErrDatabaseError.WithCause(err)
	}
	return nil
}

func (r *attractionRepository) Delete(ctx context.Context, attraction domain.Attraction) error {
	if err := r.store.delete(ctx, attraction.ID); err != nil {
		return apperrors.ErrDatabaseError.WithCause(err)
	}
	return nil
}

func (r *attractionRepository) DeleteAll(ctx context.Context) error {
	if err := r.store.deleteAll(ctx); err != nil {
		return apperrors.ErrDatabaseError.WithCause(err)
	}
	return nil
}

func (r *attractionRepository) Count(ctx context.Context) (int, error) {
	n, err := r.store.count(ctx)
	if err != nil {
		return 0, apperrors.ErrDatabaseError.WithCause(err)
	}
	return n, nil
}

// stream оборачивает подписку хранилища, конвертируя каждый снимок в домен.
// Ошибка конвертации (неизвестная категория) завершает поток так же громко,
// как ошибка запроса.
func (r *attractionRepository) stream(ctx context.Context, query rowQuery) *domain.AttractionStream {
	ctx, cancel := context.WithCancel(ctx)

	rows, errs := r.store.watch(ctx, query)

	out := make(chan []domain.Attraction)
	outErrs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(outErrs)

		for {
			select {
			case batch, ok := <-rows:
				if !ok {
					return
				}

				attractions, err := rowsToDomain(batch)
				if err != nil {
					r.logger.Error("Failed to decode attraction rows", zap.Error(err))
					outErrs <- err
					return
				}

				select {
				case out <- attractions:
				case <-ctx.Done():
					return
				}

			case err, ok := <-errs:
				if ok && err != nil {
					outErrs <- apperrors.ErrDatabaseError.WithCause(err)
				}
				return

			case <-ctx.Done():
				return
			}
		}
	}()

	return domain.NewAttractionStream(out, outErrs, cancel)
}

func rowToDomain(row attractionRow) (domain.Attraction, error) {
	category, err := domain.ParseCategory(row.Category)
	if err != nil {
		return domain.Attraction{}, apperrors.ErrUnknownCategory.WithCause(err)
	}

	return domain.Attraction{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Description,
		Latitude:           row.Latitude,
		Longitude:          row.Longitude,
		Category:           category,
		PhotoURL:           row.PhotoURL,
		Rating:             row.Rating,
		IsOfflineAvailable: row.IsOfflineAvailable,
	}, nil
}

func rowsToDomain(rows []attractionRow) ([]domain.Attraction, error) {
	attractions := make([]domain.Attraction, len(rows))
	for i, row := range rows {
		a, err := rowToDomain(row)
		if err != nil {
			return nil, err
		}
		attractions[i] = a
	}
	return attractions, nil
}

func rowFromDomain(a domain.Attraction) attractionRow {
	return attractionRow{
		ID:                 a.ID,
		Name:               a.Name,
		Description:        a.Description,
		Latitude:           a.Latitude,
		Longitude:          a.Longitude,
		Category:           string(a.Category),
		PhotoURL:           a.PhotoURL,
		Rating:             a.Rating,
		IsOfflineAvailable: a.IsOfflineAvailable,
	}
}
