package discover_rentals

import (
	"strings"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

// applyFilters применяет активные фильтры к списку листингов
// Все предикаты независимы и объединяются логическим И;
// порядок проверки на результат не влияет
func applyFilters(listings []domain.RentalListing, opts filterOptions) []domain.RentalListing {
	result := make([]domain.RentalListing, 0, len(listings))

	for i := range listings {
		listing := &listings[i]

		if !matchesFieldType(listing, opts) {
			continue
		}
		if !matchesSports(listing, opts) {
			continue
		}
		if !matchesTimeRange(listing, opts) {
			continue
		}
		if !matchesMaxDistance(listing, opts) {
			continue
		}
		if !matchesQuery(listing, opts) {
			continue
		}

		result = append(result, *listing)
	}

	return result
}

// matchesFieldType тип поля должен входить в выбранное множество
// (пустое множество пропускает всё)
func matchesFieldType(listing *domain.RentalListing, opts filterOptions) bool {
	if len(opts.fieldTypes) == 0 {
		return true
	}
	_, ok := opts.fieldTypes[listing.Field.Type]
	return ok
}

// matchesSports организация должна предлагать хотя бы один из выбранных
// видов спорта (без учета регистра; пустой список пропускает всё)
func matchesSports(listing *domain.RentalListing, opts filterOptions) bool {
	if len(opts.sports) == 0 {
		return true
	}
	for _, sport := range opts.sports {
		if listing.Organization.OffersSport(sport) {
			return true
		}
	}
	return false
}

// matchesTimeRange полуинтервал [start, end) часов применяется к локальному
// часу ВХОЖДЕНИЯ (не к номинальному времени слота): повторяющиеся слоты
// всегда резолвятся в конкретную будущую дату, и фильтровать нужно её
func matchesTimeRange(listing *domain.RentalListing, opts filterOptions) bool {
	if opts.timeStartHour == nil || opts.timeEndHour == nil {
		return true
	}

	occurrence := listing.NextOccurrence
	hour := float64(occurrence.Hour()) + float64(occurrence.Minute())/60

	return hour >= *opts.timeStartHour && hour < *opts.timeEndHour
}

// matchesMaxDistance листинг без вычисленного расстояния исключается,
// только когда пользователь явно запросил фильтр по расстоянию
// (консервативно считаем "не прошел фильтр")
func matchesMaxDistance(listing *domain.RentalListing, opts filterOptions) bool {
	if opts.maxDistanceKm == nil {
		return true
	}
	if !listing.HasDistance() {
		return false
	}
	return *listing.DistanceKm <= *opts.maxDistanceKm
}

// matchesQuery подстрочный поиск без учета регистра по конкатенации
// названия/описания/адреса организации и названия поля
func matchesQuery(listing *domain.RentalListing, opts filterOptions) bool {
	if opts.query == "" {
		return true
	}

	haystack := strings.ToLower(
		listing.Organization.Name + " " +
			listing.Organization.Description + " " +
			listing.Organization.Location + " " +
			listing.Field.Name,
	)

	return strings.Contains(haystack, opts.query)
}

// groupByOrganization схлопывает отфильтрованные листинги в группы по
// организациям, сохраняя порядок первого появления организации
func groupByOrganization(listings []domain.RentalListing) []Group {
	groups := make([]Group, 0)
	index := make(map[int64]int)

	for i := range listings {
		orgID := listings[i].Organization.ID

		pos, ok := index[orgID]
		if !ok {
			pos = len(groups)
			index[orgID] = pos
			groups = append(groups, Group{Organization: listings[i].Organization})
		}

		groups[pos].Listings = append(groups[pos].Listings, listings[i])
	}

	return groups
}
