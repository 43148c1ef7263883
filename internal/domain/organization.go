package domain

import (
	"math"
	"strings"
	"time"
)

// Organization represents a sports organization that owns rentable fields
type Organization struct {
	ID          int64
	Name        string
	Description string
	Location    string   // Человекочитаемый адрес ("Austin, TX")
	Sports      []string // Виды спорта, которые предлагает организация
	Latitude    *float64
	Longitude   *float64

	Fields []Field

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates returns true if the organization exposes finite coordinates
func (o *Organization) HasCoordinates() bool {
	if o.Latitude == nil || o.Longitude == nil {
		return false
	}
	return isFinite(*o.Latitude) && isFinite(*o.Longitude)
}

// OffersSport returns true if the organization offers the given sport (case-insensitive)
func (o *Organization) OffersSport(sport string) bool {
	for _, s := range o.Sports {
		if strings.EqualFold(s, sport) {
			return true
		}
	}
	return false
}

// Field represents a rentable field owned by an organization
type Field struct {
	ID             int64
	OrganizationID int64
	Name           string
	Type           string // Тип поля: "soccer", "baseball", "multi-purpose", ...
	Surface        *string
	Indoor         bool

	TimeSlots []TimeSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
