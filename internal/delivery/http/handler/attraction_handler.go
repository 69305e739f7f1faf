package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/adygyes-guide/internal/pkg/errors"
	"github.com/adygyes-guide/internal/pkg/utils"
	"github.com/adygyes-guide/internal/usecase"
	"github.com/adygyes-guide/internal/usecase/dto"
)

// AttractionHandler - обработчик запросов каталога достопримечательностей
type AttractionHandler struct {
	attractionUC *usecase.AttractionUseCase
	logger       *zap.Logger
}

func NewAttractionHandler(attractionUC *usecase.AttractionUseCase, logger *zap.Logger) *AttractionHandler {
	return &AttractionHandler{
		attractionUC: attractionUC,
		logger:       logger,
	}
}

// List - полный список достопримечательностей
// @Summary Список достопримечательностей
// @Tags attractions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/attractions [get]
func (h *AttractionHandler) List(c *fiber.Ctx) error {
	attractions, err := h.attractionUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	result := dto.ConvertAttractions(attractions)
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// GetByID - достопримечательность по идентификатору
// @Summary Достопримечательность по ID
// @Tags attractions
// @Produce json
// @Param id path int true "ID достопримечательности"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/attractions/{id} [get]
func (h *AttractionHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	attraction, err := h.attractionUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertAttraction(*attraction), nil)
}

// Search - подстрочный поиск по имени или описанию
// @Summary Поиск достопримечательностей
// @Tags attractions
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/attractions/search [get]
func (h *AttractionHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	attractions, err := h.attractionUC.Search(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	result := dto.ConvertAttractions(attractions)
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ByCategory - достопримечательности одной категории
// @Summary Достопримечательности категории
// @Tags attractions
// @Produce json
// @Param tag path string true "Тег категории"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/attractions/category/{tag} [get]
func (h *AttractionHandler) ByCategory(c *fiber.Ctx) error {
	attractions, err := h.attractionUC.ByCategory(c.Context(), c.Params("tag"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result := dto.ConvertAttractions(attractions)
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// OfflineAvailable - записи, доступные без сети
// @Summary Доступные офлайн достопримечательности
// @Tags attractions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/attractions/offline [get]
func (h *AttractionHandler) OfflineAvailable(c *fiber.Ctx) error {
	attractions, err := h.attractionUC.OfflineAvailable(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	result := dto.ConvertAttractions(attractions)
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Categories - закрытый набор категорий с подписями
// @Summary Категории достопримечательностей
// @Tags attractions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/categories [get]
func (h *AttractionHandler) Categories(c *fiber.Ctx) error {
	categories := dto.ConvertCategories()
	return utils.SendSuccess(c, fiber.Map{
		"categories": categories,
	}, &utils.Meta{Total: len(categories)})
}
