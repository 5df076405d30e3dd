package doctor

import (
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWorkingHoursAppendsNewRules(t *testing.T) {
	existing := []models.WorkingHourRule{{DayOfWeek: 2, Hour: 9, Minute: 0}}
	incoming := []models.WorkingHourRule{{DayOfWeek: 3, Hour: 10, Minute: 30}}

	merged, err := MergeWorkingHours(existing, incoming)
	require.NoError(t, err)
	assert.Equal(t, []models.WorkingHourRule{
		{DayOfWeek: 2, Hour: 9, Minute: 0},
		{DayOfWeek: 3, Hour: 10, Minute: 30},
	}, merged)
}

func TestMergeWorkingHoursRetainsExisting(t *testing.T) {
	existing := []models.WorkingHourRule{
		{DayOfWeek: 2, Hour: 9, Minute: 0},
		{DayOfWeek: 4, Hour: 14, Minute: 0},
	}

	merged, err := MergeWorkingHours(existing, nil)
	require.NoError(t, err)
	assert.Equal(t, existing, merged)
}

func TestMergeWorkingHoursCollapsesDuplicates(t *testing.T) {
	existing := []models.WorkingHourRule{{DayOfWeek: 2, Hour: 9, Minute: 0}}
	incoming := []models.WorkingHourRule{
		{DayOfWeek: 2, Hour: 9, Minute: 0},
		{DayOfWeek: 2, Hour: 9, Minute: 0},
	}

	merged, err := MergeWorkingHours(existing, incoming)
	require.NoError(t, err)
	assert.Len(t, merged, 1)
}

func TestMergeWorkingHoursNormalizesNativeSundayMonday(t *testing.T) {
	incoming := []models.WorkingHourRule{
		{DayOfWeek: 0, Hour: 11, Minute: 0}, // native Sunday
		{DayOfWeek: 1, Hour: 12, Minute: 0}, // native Monday
	}

	merged, err := MergeWorkingHours(nil, incoming)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, 7, merged[0].DayOfWeek)
	assert.Equal(t, 8, merged[1].DayOfWeek)
}

func TestMergeWorkingHoursNormalizedDuplicateCollapses(t *testing.T) {
	existing := []models.WorkingHourRule{{DayOfWeek: 7, Hour: 11, Minute: 0}}
	incoming := []models.WorkingHourRule{{DayOfWeek: 0, Hour: 11, Minute: 0}}

	merged, err := MergeWorkingHours(existing, incoming)
	require.NoError(t, err)
	assert.Len(t, merged, 1)
}

func TestMergeWorkingHoursRejectsInvalidRules(t *testing.T) {
	cases := []struct {
		name string
		rule models.WorkingHourRule
	}{
		{"day too large", models.WorkingHourRule{DayOfWeek: 9, Hour: 9, Minute: 0}},
		{"negative day", models.WorkingHourRule{DayOfWeek: -1, Hour: 9, Minute: 0}},
		{"hour out of range", models.WorkingHourRule{DayOfWeek: 2, Hour: 24, Minute: 0}},
		{"minute out of range", models.WorkingHourRule{DayOfWeek: 2, Hour: 9, Minute: 60}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MergeWorkingHours(nil, []models.WorkingHourRule{tc.rule})
			assert.Error(t, err)
		})
	}
}
