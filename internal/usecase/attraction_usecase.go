package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/domain"
	"github.com/adygyes-guide/internal/domain/repository"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
)

// AttractionUseCase обслуживает одноразовые запросы REST-поверхности.
// Каждый запрос берёт первый снимок свежей подписки и тут же освобождает её:
// свежая подписка всегда начинается с актуального снимка.
type AttractionUseCase struct {
	repo   repository.AttractionRepository
	logger *zap.Logger
}

func NewAttractionUseCase(
	repo repository.AttractionRepository,
	logger *zap.Logger,
) *AttractionUseCase {
	return &AttractionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *AttractionUseCase) List(ctx context.Context) ([]domain.Attraction, error) {
	return uc.firstSnapshot(ctx, uc.repo.WatchAll(ctx))
}

func (uc *AttractionUseCase) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	attraction, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get attraction", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return attraction, nil
}

func (uc *AttractionUseCase) Search(ctx context.Context, query string) ([]domain.Attraction, error) {
	return uc.firstSnapshot(ctx, uc.repo.WatchSearch(ctx, query))
}

func (uc *AttractionUseCase) ByCategory(ctx context.Context, tag string) ([]domain.Attraction, error) {
	category, err := domain.ParseCategory(tag)
	if err != nil {
		return nil, apperrors.ErrUnknownCategory.WithCause(err)
	}
	return uc.firstSnapshot(ctx, uc.repo.WatchByCategory(ctx, category))
}

func (uc *AttractionUseCase) OfflineAvailable(ctx context.Context) ([]domain.Attraction, error) {
	return uc.firstSnapshot(ctx, uc.repo.WatchOfflineAvailable(ctx))
}

func (uc *AttractionUseCase) firstSnapshot(ctx context.Context, stream *domain.AttractionStream) ([]domain.Attraction, error) {
	defer stream.Close()

	select {
	case snapshot, ok := <-stream.C:
		if !ok {
			// поток закрыт, завершающая ошибка могла остаться в буфере
			select {
			case err, ok := <-stream.Errors:
				if ok && err != nil {
					uc.logger.Error("Attraction query failed", zap.Error(err))
					return nil, err
				}
			default:
			}
			return nil, apperrors.ErrDatabaseError
		}
		return snapshot, nil

	case err, ok := <-stream.Errors:
		if !ok || err == nil {
			return nil, apperrors.ErrDatabaseError
		}
		uc.logger.Error("Attraction query failed", zap.Error(err))
		return nil, err

	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
