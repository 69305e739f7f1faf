package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/domain"
	"github.com/adygyes-guide/internal/domain/repository"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
	"github.com/adygyes-guide/internal/pkg/validator"
)

// datasetRecord - запись комплектного набора данных
type datasetRecord struct {
	ID                 int64   `json:"id" validate:"required"`
	Name               string  `json:"name" validate:"required"`
	Description        string  `json:"description"`
	Latitude           float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude          float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Category           string  `json:"category" validate:"required"`
	PhotoURL           *string `json:"photoUrl,omitempty"`
	Rating             float64 `json:"rating"`
	IsOfflineAvailable bool    `json:"isOfflineAvailable"`
}

// BootstrapUseCase - одноразовое наполнение хранилища комплектным набором
// данных. Идентификаторы стабильны, а upsert идемпотентен, поэтому повторный
// запуск безопасен; при непустом хранилище посев пропускается.
type BootstrapUseCase struct {
	repo        repository.AttractionRepository
	datasetPath string
	logger      *zap.Logger
}

func NewBootstrapUseCase(
	repo repository.AttractionRepository,
	datasetPath string,
	logger *zap.Logger,
) *BootstrapUseCase {
	return &BootstrapUseCase{
		repo:        repo,
		datasetPath: datasetPath,
		logger:      logger,
	}
}

// Run наполняет хранилище, если оно пусто
func (uc *BootstrapUseCase) Run(ctx context.Context) error {
	return uc.run(ctx, false)
}

// RunForced наполняет хранилище независимо от его состояния
func (uc *BootstrapUseCase) RunForced(ctx context.Context) error {
	return uc.run(ctx, true)
}

func (uc *BootstrapUseCase) run(ctx context.Context, force bool) error {
	if !force {
		count, err := uc.repo.Count(ctx)
		if err != nil {
			return apperrors.ErrInitializationFailed.WithCause(err)
		}
		if count > 0 {
			uc.logger.Debug("Store already seeded, skipping bootstrap",
				zap.Int("count", count))
			return nil
		}
	}

	attractions, err := uc.loadDataset()
	if err != nil {
		return apperrors.ErrInitializationFailed.WithCause(err)
	}

	if err := uc.repo.UpsertMany(ctx, attractions); err != nil {
		return apperrors.ErrInitializationFailed.WithCause(err)
	}

	uc.logger.Info("Store seeded from bundled dataset",
		zap.String("path", uc.datasetPath),
		zap.Int("count", len(attractions)))

	return nil
}

func (uc *BootstrapUseCase) loadDataset() ([]domain.Attraction, error) {
	raw, err := os.ReadFile(uc.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []datasetRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	attractions := make([]domain.Attraction, 0, len(records))
	for i, rec := range records {
		if err := validator.Validate(&rec); err != nil {
			return nil, fmt.Errorf("dataset record %d: %w", i, err)
		}

		category, err := domain.ParseCategory(rec.Category)
		if err != nil {
			return nil, fmt.Errorf("dataset record %d: %w", i, err)
		}

		attractions = append(attractions, domain.Attraction{
			ID:                 rec.ID,
			Name:               rec.Name,
			Description:        rec.Description,
			Latitude:           rec.Latitude,
			Longitude:          rec.Longitude,
			Category:           category,
			PhotoURL:           rec.PhotoURL,
			Rating:             rec.Rating,
			IsOfflineAvailable: rec.IsOfflineAvailable,
		})
	}

	return attractions, nil
}
