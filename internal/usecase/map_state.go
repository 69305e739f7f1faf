package usecase

import (
	"github.com/adygyes-guide/internal/domain"
)

// CameraPosition - запрошенная позиция камеры внешнего движка карты
type CameraPosition struct {
	Center domain.Location `json:"center"`
	Zoom   float64         `json:"zoom"`
}

// MapState - снимок состояния экрана карты. Снимок неизменяем: каждый
// переход заменяет его целиком, наблюдатели никогда не видят смесь старых
// и новых полей.
type MapState struct {
	// Attractions - видимый список: проекция последнего снимка хранилища
	// через активный запрос и выбранные категории
	Attractions []domain.Attraction `json:"attractions"`

	// SelectedAttraction валиден только относительно текущего списка
	SelectedAttraction *domain.Attraction `json:"selected_attraction,omitempty"`

	IsLoading          bool               `json:"is_loading"`
	ErrorMessage       string             `json:"error_message,omitempty"`
	SelectedCategories domain.CategorySet `json:"-"`
	SearchQuery        string             `json:"search_query"`
	IsMapReady         bool               `json:"is_map_ready"`
	UserLocation       *domain.Location   `json:"user_location,omitempty"`
	Camera             CameraPosition     `json:"camera"`
}

// clone возвращает независимую копию снимка
func (s MapState) clone() MapState {
	out := s

	out.Attractions = make([]domain.Attraction, len(s.Attractions))
	copy(out.Attractions, s.Attractions)

	if s.SelectedAttraction != nil {
		selected := *s.SelectedAttraction
		out.SelectedAttraction = &selected
	}
	if s.UserLocation != nil {
		loc := *s.UserLocation
		out.UserLocation = &loc
	}
	out.SelectedCategories = s.SelectedCategories.Clone()

	return out
}
