package scheduling

import (
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-01 is a Sunday, so 2026-03-02 is a Monday and 2026-03-03 a Tuesday.
var (
	monday  = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	nextMon = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
)

func tuesdayNineRule() models.WorkingHourRule {
	return models.WorkingHourRule{DayOfWeek: 2, Hour: 9, Minute: 0}
}

func TestComputeAvailabilitySingleTuesdayRule(t *testing.T) {
	days := ComputeAvailability(AvailabilityParams{
		Rules:    []models.WorkingHourRule{tuesdayNineRule()},
		Booked:   nil,
		Start:    monday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		LeadTime: 30 * time.Minute,
	})

	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-03", days[0].Date)
	assert.Equal(t, 2, days[0].DayOfWeek)
	assert.Equal(t, "Tuesday", days[0].DayName)
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, "09:00", days[0].Slots[0].Time)
	assert.Equal(t, "09:00", days[0].Slots[0].DisplayTime)
	assert.Equal(t, "2-9-0", days[0].Slots[0].WorkingHourID)
	assert.Equal(t, 1, days[0].TotalSlots)
}

func TestComputeAvailabilityExcludesBookedSlot(t *testing.T) {
	days := ComputeAvailability(AvailabilityParams{
		Rules: []models.WorkingHourRule{tuesdayNineRule()},
		Booked: map[string]map[string]bool{
			"2026-03-03": {"09:00": true},
		},
		Start:    monday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		LeadTime: 30 * time.Minute,
	})

	// The only slot is booked, so the day is omitted entirely.
	assert.Empty(t, days)
}

func TestComputeAvailabilitySkipsPastDaysInWindowMode(t *testing.T) {
	saturdayRule := models.WorkingHourRule{DayOfWeek: 6, Hour: 10, Minute: 0}
	saturday := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	days := ComputeAvailability(AvailabilityParams{
		Rules:    []models.WorkingHourRule{saturdayRule},
		Start:    saturday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		Pinned:   false,
		LeadTime: 30 * time.Minute,
	})

	// 2026-02-28 and the following Saturday 2026-03-07: only the future one survives.
	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-07", days[0].Date)
}

func TestComputeAvailabilityPinnedPastDateStillEmitted(t *testing.T) {
	saturdayRule := models.WorkingHourRule{DayOfWeek: 6, Hour: 10, Minute: 0}
	saturday := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	days := ComputeAvailability(AvailabilityParams{
		Rules:    []models.WorkingHourRule{saturdayRule},
		Start:    saturday,
		End:      saturday.AddDate(0, 0, 1),
		Now:      monday.Add(8 * time.Hour),
		Pinned:   true,
		LeadTime: 30 * time.Minute,
	})

	require.Len(t, days, 1)
	assert.Equal(t, "2026-02-28", days[0].Date)
}

func TestComputeAvailabilityLeadTimeBuffer(t *testing.T) {
	rules := []models.WorkingHourRule{
		{DayOfWeek: 2, Hour: 9, Minute: 0},  // now+10min: inside the buffer
		{DayOfWeek: 2, Hour: 9, Minute: 30}, // now+40min: outside
	}
	now := tuesday.Add(8*time.Hour + 50*time.Minute) // 08:50 on Tuesday

	days := ComputeAvailability(AvailabilityParams{
		Rules:    rules,
		Start:    tuesday,
		End:      tuesday.AddDate(0, 0, 1),
		Now:      now,
		Pinned:   true,
		LeadTime: 30 * time.Minute,
	})

	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, "09:30", days[0].Slots[0].Time)
}

func TestComputeAvailabilityBufferBoundaryExcluded(t *testing.T) {
	// A slot exactly at now+buffer is excluded: the cutoff comparison is
	// strict "after".
	now := tuesday.Add(8*time.Hour + 30*time.Minute) // 08:30, cutoff 09:00

	days := ComputeAvailability(AvailabilityParams{
		Rules:    []models.WorkingHourRule{tuesdayNineRule()},
		Start:    tuesday,
		End:      tuesday.AddDate(0, 0, 1),
		Now:      now,
		Pinned:   true,
		LeadTime: 30 * time.Minute,
	})

	assert.Empty(t, days)
}

func TestComputeAvailabilityBufferOnlyAppliesToday(t *testing.T) {
	// The same 09:00 rule next Tuesday is unaffected by today's buffer.
	now := tuesday.Add(8*time.Hour + 50*time.Minute)

	days := ComputeAvailability(AvailabilityParams{
		Rules:    []models.WorkingHourRule{tuesdayNineRule()},
		Start:    tuesday,
		End:      tuesday.AddDate(0, 0, 8),
		Now:      now,
		LeadTime: 30 * time.Minute,
	})

	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-10", days[0].Date)
	require.Len(t, days[0].Slots, 1)
}

func TestComputeAvailabilitySortsSlotsWithinDay(t *testing.T) {
	rules := []models.WorkingHourRule{
		{DayOfWeek: 2, Hour: 14, Minute: 30},
		{DayOfWeek: 2, Hour: 9, Minute: 0},
		{DayOfWeek: 2, Hour: 14, Minute: 0},
		{DayOfWeek: 2, Hour: 9, Minute: 15},
	}

	days := ComputeAvailability(AvailabilityParams{
		Rules:    rules,
		Start:    monday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		LeadTime: 30 * time.Minute,
	})

	require.Len(t, days, 1)
	var got []string
	for _, s := range days[0].Slots {
		got = append(got, s.Time)
	}
	assert.Equal(t, []string{"09:00", "09:15", "14:00", "14:30"}, got)
}

func TestComputeAvailabilityCollapsesDuplicateRules(t *testing.T) {
	rules := []models.WorkingHourRule{
		tuesdayNineRule(),
		tuesdayNineRule(),
		tuesdayNineRule(),
	}

	days := ComputeAvailability(AvailabilityParams{
		Rules:    rules,
		Start:    monday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		LeadTime: 30 * time.Minute,
	})

	require.Len(t, days, 1)
	assert.Len(t, days[0].Slots, 1)
}

func TestComputeAvailabilityLegacySundayMondayCodes(t *testing.T) {
	rules := []models.WorkingHourRule{
		{DayOfWeek: 7, Hour: 11, Minute: 0}, // legacy Sunday
		{DayOfWeek: 8, Hour: 12, Minute: 0}, // legacy Monday
	}

	days := ComputeAvailability(AvailabilityParams{
		Rules:    rules,
		Start:    monday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		LeadTime: 30 * time.Minute,
	})

	// Monday 2026-03-02 (today) and Sunday 2026-03-08 both match.
	require.Len(t, days, 2)
	assert.Equal(t, "2026-03-02", days[0].Date)
	assert.Equal(t, 8, days[0].DayOfWeek)
	assert.Equal(t, "12:00", days[0].Slots[0].Time)
	assert.Equal(t, "2026-03-08", days[1].Date)
	assert.Equal(t, 7, days[1].DayOfWeek)
	assert.Equal(t, "11:00", days[1].Slots[0].Time)
}

func TestComputeAvailabilityIsIdempotent(t *testing.T) {
	params := AvailabilityParams{
		Rules: []models.WorkingHourRule{
			tuesdayNineRule(),
			{DayOfWeek: 5, Hour: 16, Minute: 45},
		},
		Booked: map[string]map[string]bool{
			"2026-03-06": {"16:45": true},
		},
		Start:    monday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		LeadTime: 30 * time.Minute,
	}

	first := ComputeAvailability(params)
	second := ComputeAvailability(params)
	assert.Equal(t, first, second)
}

func TestComputeAvailabilityZeroPadsDisplayTimes(t *testing.T) {
	days := ComputeAvailability(AvailabilityParams{
		Rules:    []models.WorkingHourRule{{DayOfWeek: 2, Hour: 8, Minute: 5}},
		Start:    monday,
		End:      nextMon,
		Now:      monday.Add(8 * time.Hour),
		LeadTime: 30 * time.Minute,
	})

	require.Len(t, days, 1)
	assert.Equal(t, "08:05", days[0].Slots[0].DisplayTime)
}
