package domain

import "time"

// RentalListing is one bookable (organization, field, slot) combination
// annotated with its resolved next occurrence and optional viewer distance.
// Listings are derived per request and never persisted.
type RentalListing struct {
	Organization *Organization
	Field        *Field
	Slot         *TimeSlot

	NextOccurrence time.Time
	DistanceKm     *float64 // nil = расстояние неизвестно (нет координат зрителя или организации)
}

// HasDistance returns true if the viewer distance could be computed
func (l *RentalListing) HasDistance() bool {
	return l.DistanceKm != nil
}

// OrganizationGroup is a bucket of filtered listings belonging to one organization,
// in the order they survived filtering
type OrganizationGroup struct {
	Organization *Organization
	Listings     []RentalListing
}

// ListingCount возвращает число листингов в группе (для однострочной сводки)
func (g *OrganizationGroup) ListingCount() int {
	return len(g.Listings)
}

// GeoPoint координаты зрителя
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}
