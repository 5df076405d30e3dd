package doctor

import (
	"fmt"

	"medibook/models"
)

// MergeWorkingHours appends incoming rules to the existing set, collapsing
// duplicates by (day, hour, minute). Existing rules are always retained;
// removal goes through a separate administrative flow.
//
// Incoming day codes 0 and 1 (native Sunday/Monday) are normalized to the
// stored legacy codes 7 and 8 so both encodings address the same weekday.
func MergeWorkingHours(existing, incoming []models.WorkingHourRule) ([]models.WorkingHourRule, error) {
	merged := make([]models.WorkingHourRule, 0, len(existing)+len(incoming))
	seen := make(map[string]bool)

	for _, r := range existing {
		id := r.RuleID()
		if seen[id] {
			continue
		}
		seen[id] = true
		merged = append(merged, r)
	}

	for _, r := range incoming {
		if err := validateRule(&r); err != nil {
			return nil, err
		}
		id := r.RuleID()
		if seen[id] {
			continue
		}
		seen[id] = true
		merged = append(merged, r)
	}
	return merged, nil
}

func validateRule(r *models.WorkingHourRule) error {
	switch r.DayOfWeek {
	case 0:
		r.DayOfWeek = 7
	case 1:
		r.DayOfWeek = 8
	}
	if r.DayOfWeek < 2 || r.DayOfWeek > 8 {
		return fmt.Errorf("invalid dayOfWeek %d: expected 0..8", r.DayOfWeek)
	}
	if r.Hour < 0 || r.Hour > 23 {
		return fmt.Errorf("invalid hour %d: expected 0..23", r.Hour)
	}
	if r.Minute < 0 || r.Minute > 59 {
		return fmt.Errorf("invalid minute %d: expected 0..59", r.Minute)
	}
	return nil
}
