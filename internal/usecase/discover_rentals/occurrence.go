package discover_rentals

import (
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

const daysPerWeek = 7

// resolveNextOccurrence вычисляет ближайшее конкретное вхождение слота
// начиная с момента reference.
//
// Неповторяющийся слот: возвращает StartDate, если он не раньше reference,
// иначе вхождений больше нет.
//
// Повторяющийся слот: берет время суток слота (StartTimeMinutes, если задано,
// иначе время из StartDate), идет по дням от более поздней из дат
// (reference, StartDate) до первого дня с нужным днем недели (0-6 шагов),
// и если полученный кандидат уже прошел - сдвигает ровно на неделю.
// Кандидат позже EndDate означает, что окно повторения закрылось.
//
// Все ошибки входных данных (нечитаемые даты, день недели вне 0-6)
// превращаются в "вхождений нет": одна битая запись не должна ронять
// всю витрину аренды.
//
// Функция чистая: ни системных часов, ни скрытого состояния. "Голые"
// date-time строки без зоны трактуются как локальное настенное время
// в таймзоне reference.
func resolveNextOccurrence(slot *domain.TimeSlot, reference time.Time) (time.Time, bool) {
	loc := reference.Location()

	start, err := parseSlotDateTime(slot.StartDate, loc)
	if err != nil {
		return time.Time{}, false
	}

	if !slot.Repeating {
		if start.Before(reference) {
			return time.Time{}, false
		}
		return start, true
	}

	if slot.DayOfWeek < domain.MinDayOfWeek || slot.DayOfWeek > domain.MaxDayOfWeek {
		return time.Time{}, false
	}

	hour, minute, second := occurrenceClock(slot, start)

	// Начинаем с более поздней из дат: сегодняшней и якорной даты слота
	candidateDay := dateOf(reference, loc)
	if startDay := dateOf(start, loc); startDay.After(candidateDay) {
		candidateDay = startDay
	}

	// Идем вперед по дням до совпадения дня недели (максимум 6 шагов)
	for i := 0; i < daysPerWeek; i++ {
		if int(candidateDay.Weekday()) == slot.DayOfWeek {
			break
		}
		candidateDay = candidateDay.AddDate(0, 0, 1)
	}

	candidate := time.Date(
		candidateDay.Year(), candidateDay.Month(), candidateDay.Day(),
		hour, minute, second, 0, loc,
	)

	// Время суток сегодня уже прошло - следующее вхождение через неделю
	if candidate.Before(reference) {
		candidate = candidate.AddDate(0, 0, daysPerWeek)
	}

	if slot.HasEndDate() {
		end, err := parseSlotDateTime(*slot.EndDate, loc)
		// Нечитаемый EndDate трактуем как отсутствие границы
		if err == nil && candidate.After(end) {
			return time.Time{}, false
		}
	}

	return candidate, true
}

// occurrenceClock возвращает каноническое время суток повторяющегося слота
// StartTimeMinutes имеет приоритет над временем из StartDate
func occurrenceClock(slot *domain.TimeSlot, start time.Time) (hour, minute, second int) {
	if slot.StartTimeMinutes != nil {
		m := *slot.StartTimeMinutes
		if m >= 0 && m < domain.MinutesPerDay {
			return m / 60, m % 60, 0
		}
	}
	return start.Hour(), start.Minute(), start.Second()
}

// parseSlotDateTime парсит "голую" локальную date-time строку слота
// в указанной таймзоне. Поддерживает секунды и форму без секунд.
func parseSlotDateTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(domain.SlotDateTimeFormat, s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation(domain.SlotDateTimeShortFormat, s, loc)
}

// dateOf обнуляет время, оставляя только календарную дату
func dateOf(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
