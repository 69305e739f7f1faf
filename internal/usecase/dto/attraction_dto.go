package dto

import (
	"github.com/adygyes-guide/internal/domain"
	"github.com/adygyes-guide/internal/pkg/markers"
)

// AttractionDTO - достопримечательность в ответе API
type AttractionDTO struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Category           string  `json:"category"`
	CategoryLabel      string  `json:"category_label"`
	PhotoURL           *string `json:"photo_url,omitempty"`
	Rating             float64 `json:"rating"`
	IsOfflineAvailable bool    `json:"is_offline_available"`
}

// CategoryDTO - категория с человекочитаемой подписью
type CategoryDTO struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// MarkerDTO - маркер для внешней поверхности карты: позиция и дескриптор
// отрисовки, ключ - идентификатор достопримечательности
type MarkerDTO struct {
	AttractionID int64           `json:"attraction_id"`
	Position     domain.Location `json:"position"`
	Style        markers.Style   `json:"style"`
}

func ConvertAttraction(a domain.Attraction) AttractionDTO {
	return AttractionDTO{
		ID:                 a.ID,
		Name:               a.Name,
		Description:        a.Description,
		Latitude:           a.Latitude,
		Longitude:          a.Longitude,
		Category:           string(a.Category),
		CategoryLabel:      a.Category.DisplayName(),
		PhotoURL:           a.PhotoURL,
		Rating:             a.Rating,
		IsOfflineAvailable: a.IsOfflineAvailable,
	}
}

func ConvertAttractions(attractions []domain.Attraction) []AttractionDTO {
	out := make([]AttractionDTO, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, ConvertAttraction(a))
	}
	return out
}

func ConvertCategories() []CategoryDTO {
	categories := domain.Categories()
	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryDTO{Tag: string(c), Label: c.DisplayName()})
	}
	return out
}

// ConvertMarkers строит маркеры видимого списка; выбранный маркер получает
// акцентный стиль
func ConvertMarkers(attractions []domain.Attraction, selected *domain.Attraction) []MarkerDTO {
	out := make([]MarkerDTO, 0, len(attractions))
	for _, a := range attractions {
		isSelected := selected != nil && selected.ID == a.ID
		out = append(out, MarkerDTO{
			AttractionID: a.ID,
			Position:     a.Location(),
			Style:        markers.StyleFor(a, isSelected),
		})
	}
	return out
}
