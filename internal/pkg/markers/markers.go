// Package markers строит дескрипторы маркеров для внешней поверхности карты.
// Все функции чистые и детерминированные.
package markers

import (
	"github.com/adygyes-guide/internal/domain"
)

const (
	borderDefault  = "#FFFFFF"
	borderSelected = "#FF6200EE"

	scaleDefault  = 1.0
	scaleSelected = 1.2

	defaultIcon = "ic_place"
)

// Anchor - точка привязки иконки маркера в долях размера
type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style - дескриптор отрисовки маркера, передаётся движку карты как есть
type Style struct {
	FillColor   string  `json:"fill_color"`
	BorderColor string  `json:"border_color"`
	Icon        string  `json:"icon"`
	Scale       float64 `json:"scale"`
	Anchor      Anchor  `json:"anchor"`
	ZIndex      int     `json:"z_index"`
}

var categoryColors = map[domain.Category]string{
	domain.CategoryNature:        "#4CAF50",
	domain.CategoryCultural:      "#2196F3",
	domain.CategoryHistorical:    "#FF9800",
	domain.CategoryEntertainment: "#E91E63",
	domain.CategoryFood:          "#FF5722",
	domain.CategoryAccommodation: "#9C27B0",
}

var categoryIcons = map[domain.Category]string{
	domain.CategoryNature:        "ic_nature",
	domain.CategoryCultural:      "ic_cultural",
	domain.CategoryHistorical:    "ic_historical",
	domain.CategoryEntertainment: "ic_entertainment",
	domain.CategoryFood:          "ic_food",
	domain.CategoryAccommodation: "ic_accommodation",
}

// StyleFor возвращает дескриптор маркера для достопримечательности.
// Выбранный маркер получает акцентную рамку, масштаб 1.2 и рисуется
// поверх остальных.
func StyleFor(attraction domain.Attraction, isSelected bool) Style {
	style := Style{
		FillColor:   CategoryColor(attraction.Category),
		BorderColor: borderDefault,
		Icon:        CategoryIcon(attraction.Category),
		Scale:       scaleDefault,
		Anchor:      Anchor{X: 0.5, Y: 0.5},
		ZIndex:      0,
	}

	if isSelected {
		style.BorderColor = borderSelected
		style.Scale = scaleSelected
		style.ZIndex = 1
	}

	return style
}

// CategoryColor возвращает цвет заливки для категории
func CategoryColor(c domain.Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	// цвет рамки как нейтральная заливка, карта не прерывается
	return borderDefault
}

// CategoryIcon возвращает имя иконки категории. Неизвестная категория
// молча получает иконку по умолчанию - единственное место, где сбой
// не всплывает наружу.
func CategoryIcon(c domain.Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return defaultIcon
}
