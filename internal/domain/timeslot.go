package domain

import "time"

// TimeSlot represents a rental availability window of a field.
// Either a one-time dated slot (Repeating=false, StartDate is the absolute
// occurrence start) or a weekly recurrence (Repeating=true, DayOfWeek is the
// weekday and StartDate anchors both the earliest date and the wall-clock
// time-of-day of every occurrence).
//
// StartDate и EndDate хранятся как "голые" локальные date-time строки
// (без зоны) - так их присылает клиентский слой. Парсинг и политика
// локального времени находятся в резолвере, а не здесь.
type TimeSlot struct {
	ID      int64
	FieldID int64

	DayOfWeek int    // 0 = Sunday ... 6 = Saturday, имеет смысл только при Repeating=true
	StartDate string // ISO-8601 local date-time, например "2024-01-02T18:00:00"
	EndDate   *string
	Repeating bool

	// Минуты с полуночи, используются витриной для показа времени слота
	StartTimeMinutes *int
	EndTimeMinutes   *int

	PricePerHour *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEndDate returns true if the recurrence window is bounded
func (s *TimeSlot) HasEndDate() bool {
	return s.EndDate != nil && *s.EndDate != ""
}

// IsRecurring returns true for weekly-recurring slots
func (s *TimeSlot) IsRecurring() bool {
	return s.Repeating
}

// DurationMinutes возвращает длительность слота в минутах, если заданы обе границы
func (s *TimeSlot) DurationMinutes() (int, bool) {
	if s.StartTimeMinutes == nil || s.EndTimeMinutes == nil {
		return 0, false
	}
	d := *s.EndTimeMinutes - *s.StartTimeMinutes
	if d <= 0 {
		return 0, false
	}
	return d, true
}
