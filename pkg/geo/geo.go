package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate возвращается при широте вне [-90,90] или долготе вне [-180,180]
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// earthRadiusMeters - средний радиус Земли
const earthRadiusMeters = 6371000.0

// ValidateCoordinate проверяет, что координаты лежат в допустимых диапазонах
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %f out of range: %w", lat, ErrInvalidCoordinate)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %f out of range: %w", lon, ErrInvalidCoordinate)
	}
	return nil
}

// Distance возвращает расстояние по дуге большого круга (haversine) в метрах
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := ValidateCoordinate(lat1, lon1); err != nil {
		return 0, err
	}
	if err := ValidateCoordinate(lat2, lon2); err != nil {
		return 0, err
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}
