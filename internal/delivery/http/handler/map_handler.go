package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/domain"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
	"github.com/adygyes-guide/internal/pkg/utils"
	"github.com/adygyes-guide/internal/pkg/validator"
	"github.com/adygyes-guide/internal/usecase"
	"github.com/adygyes-guide/internal/usecase/dto"
)

// MapHandler транслирует поверхность отрисовки карты на сессию:
// снимки состояния и маркеры наружу, намерения пользователя внутрь
type MapHandler struct {
	session *usecase.MapSession
	logger  *zap.Logger
}

func NewMapHandler(session *usecase.MapSession, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		session: session,
		logger:  logger,
	}
}

// State - текущий снимок состояния карты
// @Summary Состояние экрана карты
// @Tags map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/map/state [get]
func (h *MapHandler) State(c *fiber.Ctx) error {
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Markers - дескрипторы маркеров видимого списка
// @Summary Маркеры карты
// @Tags map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/map/markers [get]
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	state := h.session.State()
	result := dto.ConvertMarkers(state.Attractions, state.SelectedAttraction)
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Search - смена поискового запроса
// @Summary Поиск на карте
// @Tags map
// @Accept json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/map/search [post]
func (h *MapHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	h.session.OnSearchQueryChanged(req.Query)
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Select - тап по маркеру
// @Summary Выбор достопримечательности
// @Tags map
// @Accept json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/map/select [post]
func (h *MapHandler) Select(c *fiber.Ctx) error {
	var req dto.SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	h.session.OnAttractionSelected(req.ID)
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Dismiss - закрытие карточки достопримечательности
func (h *MapHandler) Dismiss(c *fiber.Ctx) error {
	h.session.DismissSelection()
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Categories - замена набора выбранных категорий
// @Summary Фильтр по категориям
// @Tags map
// @Accept json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/categories [post]
func (h *MapHandler) Categories(c *fiber.Ctx) error {
	var req dto.CategoryFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	categories := make([]domain.Category, 0, len(req.Categories))
	for _, tag := range req.Categories {
		category, err := domain.ParseCategory(tag)
		if err != nil {
			return utils.SendError(c, apperrors.ErrUnknownCategory.WithCause(err))
		}
		categories = append(categories, category)
	}

	h.session.OnCategoryFilterChanged(domain.NewCategorySet(categories...))
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Retry - повтор загрузки после ошибки
func (h *MapHandler) Retry(c *fiber.Ctx) error {
	h.session.Retry()
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Ready - внешний движок карты готов
func (h *MapHandler) Ready(c *fiber.Ctx) error {
	h.session.OnMapReady()
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// ClearError - закрытие сообщения об ошибке
func (h *MapHandler) ClearError(c *fiber.Ctx) error {
	h.session.ClearError()
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Locate - центрирование на пользователе через коллаборатора геолокации
// @Summary Центрирование на пользователе
// @Tags map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/map/locate [post]
func (h *MapHandler) Locate(c *fiber.Ctx) error {
	h.session.CenterOnUser(c.Context())
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// Pan - перемещение камеры к точке
func (h *MapHandler) Pan(c *fiber.Ctx) error {
	var req dto.PanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	h.session.PanTo(domain.Location{Latitude: req.Latitude, Longitude: req.Longitude})
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// ZoomIn - приближение на единицу
func (h *MapHandler) ZoomIn(c *fiber.Ctx) error {
	h.session.ZoomIn()
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// ZoomOut - отдаление на единицу
func (h *MapHandler) ZoomOut(c *fiber.Ctx) error {
	h.session.ZoomOut()
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

// FitVisible - камера по границам видимого списка
func (h *MapHandler) FitVisible(c *fiber.Ctx) error {
	h.session.FitVisible()
	return utils.SendSuccess(c, convertMapState(h.session.State()), nil)
}

func convertMapState(state usecase.MapState) dto.MapStateDTO {
	selectedCategories := make([]string, 0, len(state.SelectedCategories))
	for _, c := range domain.Categories() {
		if state.SelectedCategories.Contains(c) {
			selectedCategories = append(selectedCategories, string(c))
		}
	}

	out := dto.MapStateDTO{
		Attractions:        dto.ConvertAttractions(state.Attractions),
		IsLoading:          state.IsLoading,
		ErrorMessage:       state.ErrorMessage,
		SelectedCategories: selectedCategories,
		SearchQuery:        state.SearchQuery,
		IsMapReady:         state.IsMapReady,
		UserLocation:       state.UserLocation,
		CameraCenter:       state.Camera.Center,
		CameraZoom:         state.Camera.Zoom,
	}

	if state.SelectedAttraction != nil {
		selected := dto.ConvertAttraction(*state.SelectedAttraction)
		out.SelectedAttraction = &selected
	}

	return out
}
