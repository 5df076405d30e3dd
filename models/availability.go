package models

// SlotEntry is a single open slot within a day.
type SlotEntry struct {
	WorkingHourID string `json:"workingHourId"` // "{dayOfWeek}-{hour}-{minute}"
	Time          string `json:"time"`          // "HH:MM", zero-padded
	Hour          int    `json:"hour"`
	Minute        int    `json:"minute"`
	DisplayTime   string `json:"displayTime"`
}

// AvailableDay lists the open slots for one calendar day. Days with no open
// slots are omitted from reports entirely.
type AvailableDay struct {
	Date        string      `json:"date"` // "YYYY-MM-DD"
	DayOfWeek   int         `json:"dayOfWeek"`
	DayName     string      `json:"dayName"`
	DisplayDate string      `json:"displayDate"`
	Slots       []SlotEntry `json:"slots"`
	TotalSlots  int         `json:"totalSlots"`
}

// AvailabilityReport is the assembled answer to an availability query.
// It is computed per request and never persisted.
type AvailabilityReport struct {
	DoctorID    string         `json:"doctorId"`
	DoctorName  string         `json:"doctorName"`
	SearchStart string         `json:"searchStart"` // human-readable window start
	SearchEnd   string         `json:"searchEnd"`   // human-readable window end (exclusive)
	TotalDays   int            `json:"totalDays"`
	TotalSlots  int            `json:"totalSlots"`
	Message     string         `json:"message,omitempty"`
	Days        []AvailableDay `json:"days"`
}
