package scheduling

import (
	"sort"
	"time"

	"medibook/models"
	"medibook/utils"
)

// legacyDayCode maps Go's native weekday onto the encoding stored in doctor
// working-hour rules: Tuesday through Saturday keep their native values 2..6,
// Sunday is stored as 7 and Monday as 8. Every stored doctor document uses
// this encoding, so it is applied as-is rather than re-derived.
var legacyDayCode = map[time.Weekday]int{
	time.Sunday:    7,
	time.Monday:    8,
	time.Tuesday:   2,
	time.Wednesday: 3,
	time.Thursday:  4,
	time.Friday:    5,
	time.Saturday:  6,
}

// AvailabilityParams are the inputs to ComputeAvailability.
type AvailabilityParams struct {
	Rules  []models.WorkingHourRule
	Booked map[string]map[string]bool // date -> set of "HH:MM" held times
	Start  time.Time                  // inclusive, UTC midnight
	End    time.Time                  // exclusive, UTC midnight
	Now    time.Time
	Pinned bool // single-specific-date mode: past days are not skipped
	// LeadTime excludes slots today that start within this buffer of Now.
	LeadTime time.Duration
}

// ComputeAvailability walks every calendar day in [Start, End) and emits the
// surviving open slots per day. It is a pure function over its inputs: no
// I/O, no hidden state, identical inputs yield identical output.
//
// Days strictly before today are skipped unless a specific date was pinned.
// Days with no matching rules, or whose slots are all booked or inside the
// lead-time buffer, are omitted from the result entirely.
func ComputeAvailability(p AvailabilityParams) []models.AvailableDay {
	today := utils.StartOfDayUTC(p.Now)
	cutoff := p.Now.Add(p.LeadTime)

	var days []models.AvailableDay
	for d := utils.StartOfDayUTC(p.Start); d.Before(p.End); d = d.AddDate(0, 0, 1) {
		if !p.Pinned && d.Before(today) {
			continue
		}

		dayCode := legacyDayCode[d.Weekday()]
		rules := rulesForDay(p.Rules, dayCode)
		if len(rules) == 0 {
			continue
		}

		dateStr := utils.FormatDate(d)
		held := p.Booked[dateStr]
		isToday := utils.SameUTCDay(d, p.Now)

		var slots []models.SlotEntry
		for _, r := range rules {
			clock := utils.FormatClock(r.Hour, r.Minute)
			if held[clock] {
				continue
			}
			if isToday {
				instant := d.Add(time.Duration(r.Hour)*time.Hour + time.Duration(r.Minute)*time.Minute)
				if !instant.After(cutoff) {
					continue
				}
			}
			slots = append(slots, models.SlotEntry{
				WorkingHourID: r.RuleID(),
				Time:          clock,
				Hour:          r.Hour,
				Minute:        r.Minute,
				DisplayTime:   clock,
			})
		}

		if len(slots) == 0 {
			continue
		}
		days = append(days, models.AvailableDay{
			Date:        dateStr,
			DayOfWeek:   dayCode,
			DayName:     d.Format("Monday"),
			DisplayDate: utils.FormatDisplayDate(d),
			Slots:       slots,
			TotalSlots:  len(slots),
		})
	}
	return days
}

// rulesForDay selects the rules matching a day code, collapses duplicate
// (day, hour, minute) entries and sorts ascending by (hour, minute).
func rulesForDay(rules []models.WorkingHourRule, dayCode int) []models.WorkingHourRule {
	seen := make(map[string]bool)
	var matched []models.WorkingHourRule
	for _, r := range rules {
		if r.DayOfWeek != dayCode {
			continue
		}
		id := r.RuleID()
		if seen[id] {
			continue
		}
		seen[id] = true
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Hour != matched[j].Hour {
			return matched[i].Hour < matched[j].Hour
		}
		return matched[i].Minute < matched[j].Minute
	})
	return matched
}

// groupBookedSlots builds the date -> set-of-times index consumed by
// ComputeAvailability.
func groupBookedSlots(slots []models.BookedSlot) map[string]map[string]bool {
	index := make(map[string]map[string]bool, len(slots))
	for _, s := range slots {
		if index[s.Date] == nil {
			index[s.Date] = make(map[string]bool)
		}
		index[s.Date][s.Time] = true
	}
	return index
}
