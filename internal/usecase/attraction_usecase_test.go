package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/domain"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
	"github.com/adygyes-guide/internal/usecase"
)

func newSeededUseCase(t *testing.T) *usecase.AttractionUseCase {
	t.Helper()

	repo := newBootstrapRepository(t)
	require.NoError(t, repo.UpsertMany(context.Background(), []domain.Attraction{
		{ID: 1, Name: "Хаджохская теснина", Category: domain.CategoryNature, IsOfflineAvailable: true},
		{ID: 2, Name: "Национальный музей", Description: "Главный музей республики", Category: domain.CategoryCultural},
		{ID: 3, Name: "Монастырь", Category: domain.CategoryHistorical},
	}))

	return usecase.NewAttractionUseCase(repo, zap.NewNop())
}

func TestAttractionUseCase_List(t *testing.T) {
	uc := newSeededUseCase(t)

	attractions, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, attractions, 3)
}

func TestAttractionUseCase_GetByID(t *testing.T) {
	uc := newSeededUseCase(t)
	ctx := context.Background()

	got, err := uc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Национальный музей", got.Name)

	_, err = uc.GetByID(ctx, 999)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ATTRACTION_NOT_FOUND", appErr.Code)
}

func TestAttractionUseCase_Search(t *testing.T) {
	uc := newSeededUseCase(t)

	attractions, err := uc.Search(context.Background(), "музей")
	require.NoError(t, err)
	require.Len(t, attractions, 1)
	assert.Equal(t, int64(2), attractions[0].ID)
}

func TestAttractionUseCase_ByCategory(t *testing.T) {
	uc := newSeededUseCase(t)
	ctx := context.Background()

	attractions, err := uc.ByCategory(ctx, "NATURE")
	require.NoError(t, err)
	require.Len(t, attractions, 1)
	assert.Equal(t, int64(1), attractions[0].ID)

	// Неизвестный тег - ошибка, а не пустой список
	_, err = uc.ByCategory(ctx, "SHOPPING")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_CATEGORY", appErr.Code)
}

func TestAttractionUseCase_OfflineAvailable(t *testing.T) {
	uc := newSeededUseCase(t)

	attractions, err := uc.OfflineAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, attractions, 1)
	assert.Equal(t, int64(1), attractions[0].ID)
}
