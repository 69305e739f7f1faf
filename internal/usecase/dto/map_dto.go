package dto

import (
	"github.com/adygyes-guide/internal/domain"
)

// MapStateDTO - снимок состояния экрана карты для поверхности отрисовки
type MapStateDTO struct {
	Attractions        []AttractionDTO  `json:"attractions"`
	SelectedAttraction *AttractionDTO   `json:"selected_attraction,omitempty"`
	IsLoading          bool             `json:"is_loading"`
	ErrorMessage       string           `json:"error_message,omitempty"`
	SelectedCategories []string         `json:"selected_categories"`
	SearchQuery        string           `json:"search_query"`
	IsMapReady         bool             `json:"is_map_ready"`
	UserLocation       *domain.Location `json:"user_location,omitempty"`
	CameraCenter       domain.Location  `json:"camera_center"`
	CameraZoom         float64          `json:"camera_zoom"`
}

// SearchRequest - смена поискового запроса; пустой запрос допустим и
// возвращает полный список
type SearchRequest struct {
	Query string `json:"query"`
}

// SelectRequest - тап по маркеру достопримечательности
type SelectRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// CategoryFilterRequest - замена набора выбранных категорий
type CategoryFilterRequest struct {
	Categories []string `json:"categories" validate:"required,min=1,dive,required"`
}

// PanRequest - запрос перемещения камеры
type PanRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}
