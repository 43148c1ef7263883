package discover_rentals

import (
	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

// Request модель запроса витрины аренды
// Все фильтры опциональны: пустой запрос возвращает все листинги
type Request struct {
	UserID *int64 // ID пользователя (для логирования, не влияет на результат)

	Sports     []string // Организация должна предлагать хотя бы один из видов спорта
	FieldTypes []string // Тип поля должен входить в множество

	// Полуинтервал [TimeStartHour, TimeEndHour) по локальному часу
	// ближайшего вхождения (дробная часть - минуты)
	TimeStartHour *float64
	TimeEndHour   *float64

	MaxDistanceKm *float64 // Максимальное расстояние до зрителя
	Query         string   // Поиск по подстроке (без учета регистра)

	Viewer *domain.GeoPoint // Координаты зрителя (для расстояний)
}

// Response модель ответа витрины: листинги, сгруппированные по организациям
type Response struct {
	Groups        []Group
	TotalListings int
}

// Group организация с её листингами, пережившими фильтрацию
type Group struct {
	Organization *domain.Organization
	Listings     []domain.RentalListing
}

// filterOptions нормализованные активные фильтры
type filterOptions struct {
	sports     []string
	fieldTypes map[string]struct{}

	timeStartHour *float64
	timeEndHour   *float64

	maxDistanceKm *float64
	query         string // уже в нижнем регистре
}
