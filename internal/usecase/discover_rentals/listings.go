package discover_rentals

import (
	"math"
	"sort"
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

// assembleListings разворачивает организации -> поля -> слоты в плоский
// список листингов аренды. Слоты без будущих вхождений пропускаются.
// Если известны координаты зрителя и организации, листинг получает
// расстояние по большому кругу; ошибка вычисления расстояния не
// отбрасывает листинг, а лишь оставляет расстояние неизвестным.
func assembleListings(orgs []*domain.Organization, reference time.Time, viewer *domain.GeoPoint) []domain.RentalListing {
	listings := make([]domain.RentalListing, 0)

	for _, org := range orgs {
		var distance *float64
		if viewer != nil && org.HasCoordinates() {
			if d, ok := haversineKm(viewer.Latitude, viewer.Longitude, *org.Latitude, *org.Longitude); ok {
				distance = &d
			}
		}

		for i := range org.Fields {
			field := &org.Fields[i]
			for j := range field.TimeSlots {
				slot := &field.TimeSlots[j]

				next, ok := resolveNextOccurrence(slot, reference)
				if !ok {
					continue
				}

				listings = append(listings, domain.RentalListing{
					Organization:   org,
					Field:          field,
					Slot:           slot,
					NextOccurrence: next,
					DistanceKm:     distance,
				})
			}
		}
	}

	sortListings(listings)
	return listings
}

// sortListings сортирует листинги детерминированным полным порядком:
// сначала листинги с известным расстоянием (по возрастанию расстояния),
// затем листинги без расстояния (по возрастанию времени вхождения).
// Классический компаратор "defined перед undefined, потом два независимых
// порядка" - направление tie-break легко перепутать, см. тесты.
func sortListings(listings []domain.RentalListing) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := &listings[i], &listings[j]

		switch {
		case a.HasDistance() && !b.HasDistance():
			return true
		case !a.HasDistance() && b.HasDistance():
			return false
		case a.HasDistance() && b.HasDistance():
			return *a.DistanceKm < *b.DistanceKm
		default:
			return a.NextOccurrence.Before(b.NextOccurrence)
		}
	})
}

// haversineKm расстояние по большому кругу между двумя точками в километрах
// Возвращает ok=false для нечисловых входов или результата
func haversineKm(lat1, lon1, lat2, lon2 float64) (float64, bool) {
	for _, v := range [...]float64{lat1, lon1, lat2, lon2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
	}

	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	d := 2 * domain.EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}
	return d, true
}
