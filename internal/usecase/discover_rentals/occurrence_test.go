package discover_rentals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	"github.com/apermyakov/SLM-RentalService/pkg/ptr"
)

// Понедельник, 1 января 2024, полдень
var reference = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestResolveNextOccurrence_NonRepeating(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		wantOK    bool
		want      time.Time
	}{
		{
			name:      "future start date resolves to itself",
			startDate: "2024-01-05T10:00:00",
			wantOK:    true,
			want:      time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "past start date has no occurrence",
			startDate: "2023-12-25T10:00:00",
			wantOK:    false,
		},
		{
			name:      "start date exactly at reference is included",
			startDate: "2024-01-01T12:00:00",
			wantOK:    true,
			want:      reference,
		},
		{
			name:      "short form without seconds",
			startDate: "2024-01-05T10:00",
			wantOK:    true,
			want:      time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "unparsable start date",
			startDate: "not-a-date",
			wantOK:    false,
		},
		{
			name:      "empty start date",
			startDate: "",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &domain.TimeSlot{
				StartDate: tt.startDate,
				Repeating: false,
			}

			got, ok := resolveNextOccurrence(slot, reference)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResolveNextOccurrence_Repeating(t *testing.T) {
	tests := []struct {
		name             string
		dayOfWeek        int
		startDate        string
		endDate          *string
		startTimeMinutes *int
		wantOK           bool
		want             time.Time
	}{
		{
			name:             "wednesday evening slot resolves to nearest wednesday",
			dayOfWeek:        3,
			startDate:        "2023-12-20T00:00:00",
			startTimeMinutes: ptr.Ptr(1080), // 18:00
			wantOK:           true,
			want:             time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC),
		},
		{
			name:             "closed repetition window has no occurrence",
			dayOfWeek:        3,
			startDate:        "2023-12-20T00:00:00",
			endDate:          ptr.Ptr("2023-12-31T23:59:59"),
			startTimeMinutes: ptr.Ptr(1080),
			wantOK:           false,
		},
		{
			name:      "same weekday with time already passed shifts one week",
			dayOfWeek: 1, // понедельник, как и reference
			startDate: "2023-12-04T09:00:00",
			wantOK:    true,
			want:      time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "same weekday with time still ahead stays today",
			dayOfWeek: 1,
			startDate: "2023-12-04T15:30:00",
			wantOK:    true,
			want:      time.Date(2024, time.January, 1, 15, 30, 0, 0, time.UTC),
		},
		{
			name:      "anchor in the future walks from the anchor date",
			dayOfWeek: 5, // пятница
			startDate: "2024-02-01T10:00:00", // четверг
			wantOK:    true,
			want:      time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "clock falls back to start date time when minutes are absent",
			dayOfWeek: 4, // четверг
			startDate: "2023-11-02T19:15:00",
			wantOK:    true,
			want:      time.Date(2024, time.January, 4, 19, 15, 0, 0, time.UTC),
		},
		{
			name:             "start time minutes override the start date clock",
			dayOfWeek:        4,
			startDate:        "2023-11-02T19:15:00",
			startTimeMinutes: ptr.Ptr(8 * 60),
			wantOK:           true,
			want:             time.Date(2024, time.January, 4, 8, 0, 0, 0, time.UTC),
		},
		{
			name:             "out-of-range minutes fall back to start date clock",
			dayOfWeek:        4,
			startDate:        "2023-11-02T19:15:00",
			startTimeMinutes: ptr.Ptr(domain.MinutesPerDay + 5),
			wantOK:           true,
			want:             time.Date(2024, time.January, 4, 19, 15, 0, 0, time.UTC),
		},
		{
			name:      "end date on the occurrence day keeps the occurrence",
			dayOfWeek: 3,
			startDate: "2023-12-20T18:00:00",
			endDate:   ptr.Ptr("2024-01-03T23:00:00"),
			wantOK:    true,
			want:      time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC),
		},
		{
			name:      "unparsable end date means no upper bound",
			dayOfWeek: 3,
			startDate: "2023-12-20T18:00:00",
			endDate:   ptr.Ptr("garbage"),
			wantOK:    true,
			want:      time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC),
		},
		{
			name:      "day of week below range has no occurrence",
			dayOfWeek: -1,
			startDate: "2023-12-20T18:00:00",
			wantOK:    false,
		},
		{
			name:      "day of week above range has no occurrence",
			dayOfWeek: 7,
			startDate: "2023-12-20T18:00:00",
			wantOK:    false,
		},
		{
			name:      "unparsable start date has no occurrence",
			dayOfWeek: 3,
			startDate: "2023-13-45T99:00:00",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &domain.TimeSlot{
				DayOfWeek:        tt.dayOfWeek,
				StartDate:        tt.startDate,
				EndDate:          tt.endDate,
				Repeating:        true,
				StartTimeMinutes: tt.startTimeMinutes,
			}

			got, ok := resolveNextOccurrence(slot, reference)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

// Вхождение повторяющегося слота всегда не раньше reference,
// попадает на заявленный день недели и отстоит не дальше двух недель
func TestResolveNextOccurrence_RepeatingProperties(t *testing.T) {
	references := []time.Time{
		reference,
		time.Date(2024, time.January, 3, 17, 59, 0, 0, time.UTC),
		time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 3, 18, 1, 0, 0, time.UTC),
		time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
	}

	for day := domain.MinDayOfWeek; day <= domain.MaxDayOfWeek; day++ {
		for _, ref := range references {
			slot := &domain.TimeSlot{
				DayOfWeek:        day,
				StartDate:        "2023-12-20T00:00:00",
				Repeating:        true,
				StartTimeMinutes: ptr.Ptr(1080),
			}

			got, ok := resolveNextOccurrence(slot, ref)
			require.True(t, ok, "day=%d ref=%v", day, ref)

			assert.False(t, got.Before(ref), "day=%d ref=%v: occurrence %v before reference", day, ref, got)
			assert.Equal(t, day, int(got.Weekday()), "day=%d ref=%v", day, ref)
			assert.Equal(t, 18, got.Hour(), "day=%d ref=%v", day, ref)
			assert.True(t, got.Sub(ref) < 14*24*time.Hour, "day=%d ref=%v: occurrence too far ahead", day, ref)
		}
	}
}

// Повторный резолв относительно полученного вхождения возвращает его же
func TestResolveNextOccurrence_Idempotent(t *testing.T) {
	slot := &domain.TimeSlot{
		DayOfWeek:        3,
		StartDate:        "2023-12-20T00:00:00",
		Repeating:        true,
		StartTimeMinutes: ptr.Ptr(1080),
	}

	first, ok := resolveNextOccurrence(slot, reference)
	require.True(t, ok)

	second, ok := resolveNextOccurrence(slot, first)
	require.True(t, ok)

	assert.True(t, first.Equal(second), "want %v, got %v", first, second)
}

// Строки без зоны трактуются как настенное время в зоне reference
func TestResolveNextOccurrence_ReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ref := time.Date(2024, time.January, 1, 12, 0, 0, 0, loc)

	slot := &domain.TimeSlot{
		StartDate: "2024-01-05T10:00:00",
		Repeating: false,
	}

	got, ok := resolveNextOccurrence(slot, ref)
	require.True(t, ok)

	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, loc, got.Location())
}
