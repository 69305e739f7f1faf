package utils

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/adygyes-guide/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(a, b domain.Location) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180.0
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	lat1Rad := a.Latitude * math.Pi / 180.0
	lat2Rad := b.Latitude * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BoundsCenter возвращает центр ограничивающего прямоугольника набора точек.
// Для пустого набора возвращает false.
func BoundsCenter(points []domain.Location) (domain.Location, bool) {
	if len(points) == 0 {
		return domain.Location{}, false
	}

	bound := orb.Bound{Min: locationToPoint(points[0]), Max: locationToPoint(points[0])}
	for _, p := range points[1:] {
		bound = bound.Extend(locationToPoint(p))
	}

	center := bound.Center()
	return domain.Location{Latitude: center.Lat(), Longitude: center.Lon()}, true
}

func locationToPoint(l domain.Location) orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}
