package domain

// Time and date format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// Форматы "голых" локальных date-time строк слотов (без зоны)
	SlotDateTimeFormat      = "2006-01-02T15:04:05"
	SlotDateTimeShortFormat = "2006-01-02T15:04"
)

// Business validation constants
const (
	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MinutesPerDay = 24 * 60

	MaxNameLength        = 200
	MaxDescriptionLength = 2000
)

// EarthRadiusKm радиус Земли для haversine-дистанции
const EarthRadiusKm = 6371.0

// ValidConsentStatuses список допустимых статусов согласия
// Используется при валидации и конвертации из строк
var ValidConsentStatuses = []ConsentStatus{
	ConsentPending,
	ConsentGranted,
	ConsentDeclined,
	ConsentNotRequired,
}

// IsValidConsentStatus проверяет, что строка является допустимым статусом согласия
func IsValidConsentStatus(s string) bool {
	for _, status := range ValidConsentStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}
