package discover_rentals

import (
	"fmt"
	"math"
	"strings"
)

// validateRequest валидирует входные данные запроса витрины
func validateRequest(req *Request) error {
	if req.TimeStartHour != nil || req.TimeEndHour != nil {
		if req.TimeStartHour == nil || req.TimeEndHour == nil {
			return fmt.Errorf("%w: time range requires both start and end hours", ErrInvalidInput)
		}
		if *req.TimeStartHour < 0 || *req.TimeStartHour > 24 {
			return fmt.Errorf("%w: timeStartHour must be between 0 and 24", ErrInvalidInput)
		}
		if *req.TimeEndHour < 0 || *req.TimeEndHour > 24 {
			return fmt.Errorf("%w: timeEndHour must be between 0 and 24", ErrInvalidInput)
		}
		if *req.TimeStartHour >= *req.TimeEndHour {
			return fmt.Errorf("%w: timeStartHour must be less than timeEndHour", ErrInvalidInput)
		}
	}

	if req.MaxDistanceKm != nil {
		if *req.MaxDistanceKm < 0 || math.IsNaN(*req.MaxDistanceKm) || math.IsInf(*req.MaxDistanceKm, 0) {
			return fmt.Errorf("%w: maxDistanceKm must be a non-negative number", ErrInvalidInput)
		}
	}

	if req.Viewer != nil {
		if math.IsNaN(req.Viewer.Latitude) || math.IsInf(req.Viewer.Latitude, 0) ||
			math.IsNaN(req.Viewer.Longitude) || math.IsInf(req.Viewer.Longitude, 0) {
			return fmt.Errorf("%w: viewer coordinates must be finite", ErrInvalidInput)
		}
	}

	return nil
}

// toFilterOptions нормализует запрос в активные фильтры
func toFilterOptions(req *Request) filterOptions {
	opts := filterOptions{
		sports:        req.Sports,
		timeStartHour: req.TimeStartHour,
		timeEndHour:   req.TimeEndHour,
		maxDistanceKm: req.MaxDistanceKm,
		query:         strings.ToLower(strings.TrimSpace(req.Query)),
	}

	if len(req.FieldTypes) > 0 {
		opts.fieldTypes = make(map[string]struct{}, len(req.FieldTypes))
		for _, ft := range req.FieldTypes {
			opts.fieldTypes[ft] = struct{}{}
		}
	}

	return opts
}
