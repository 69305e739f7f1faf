package domain

import "fmt"

// Attraction представляет достопримечательность Адыгеи
type Attraction struct {
	ID                 int64    `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	Description        string   `json:"description" db:"description"`
	Latitude           float64  `json:"latitude" db:"latitude"`
	Longitude          float64  `json:"longitude" db:"longitude"`
	Category           Category `json:"category" db:"category"`
	PhotoURL           *string  `json:"photo_url,omitempty" db:"photo_url"`
	Rating             float64  `json:"rating" db:"rating"`
	IsOfflineAvailable bool     `json:"is_offline_available" db:"is_offline_available"`
}

// Location - координаты точки (достопримечательности или пользователя)
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Location возвращает координаты достопримечательности
func (a *Attraction) Location() Location {
	return Location{Latitude: a.Latitude, Longitude: a.Longitude}
}

// Category - закрытый набор категорий достопримечательностей
type Category string

const (
	CategoryNature        Category = "NATURE"
	CategoryCultural      Category = "CULTURAL"
	CategoryHistorical    Category = "HISTORICAL"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryFood          Category = "FOOD"
	CategoryAccommodation Category = "ACCOMMODATION"
)

var categoryDisplayNames = map[Category]string{
	CategoryNature:        "Природа",
	CategoryCultural:      "Культура",
	CategoryHistorical:    "История",
	CategoryEntertainment: "Развлечения",
	CategoryFood:          "Еда",
	CategoryAccommodation: "Размещение",
}

// Categories возвращает все категории в фиксированном порядке
func Categories() []Category {
	return []Category{
		CategoryNature,
		CategoryCultural,
		CategoryHistorical,
		CategoryEntertainment,
		CategoryFood,
		CategoryAccommodation,
	}
}

// DisplayName возвращает человекочитаемое название категории
func (c Category) DisplayName() string {
	return categoryDisplayNames[c]
}

// IsValid проверяет, что категория входит в закрытый набор
func (c Category) IsValid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// ParseCategory разбирает тег категории. Неизвестный тег - ошибка,
// категория никогда не приводится к значению по умолчанию.
func ParseCategory(tag string) (Category, error) {
	c := Category(tag)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category tag %q", tag)
	}
	return c, nil
}

// CategorySet - набор выбранных категорий для фильтрации
type CategorySet map[Category]struct{}

// AllCategories возвращает набор со всеми категориями
func AllCategories() CategorySet {
	set := make(CategorySet, len(categoryDisplayNames))
	for _, c := range Categories() {
		set[c] = struct{}{}
	}
	return set
}

// NewCategorySet собирает набор из перечисленных категорий
func NewCategorySet(categories ...Category) CategorySet {
	set := make(CategorySet, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}

// Contains проверяет, входит ли категория в набор
func (s CategorySet) Contains(c Category) bool {
	_, ok := s[c]
	return ok
}

// Clone возвращает независимую копию набора
func (s CategorySet) Clone() CategorySet {
	out := make(CategorySet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}
