package models

import (
	"fmt"
	"time"
)

// WorkingHourRule is a single recurring weekly slot a doctor offers.
// DayOfWeek uses the clinic's legacy encoding: Tuesday..Saturday are the
// native weekday values 2..6, Sunday is stored as 7 and Monday as 8.
type WorkingHourRule struct {
	DayOfWeek int `bson:"dayOfWeek" json:"dayOfWeek"` // 2..8, legacy encoding
	Hour      int `bson:"hour" json:"hour"`           // 0..23
	Minute    int `bson:"minute" json:"minute"`       // 0..59
}

// RuleID returns the synthetic identifier clients use to reference a rule.
// It is stable across requests because it is derived from the rule itself.
func (r WorkingHourRule) RuleID() string {
	return fmt.Sprintf("%d-%d-%d", r.DayOfWeek, r.Hour, r.Minute)
}

// Doctor represents a doctor profile document.
type Doctor struct {
	ID           string            `bson:"id" json:"id"`
	Name         string            `bson:"name" json:"name"`
	Email        string            `bson:"email,omitempty" json:"email,omitempty"`
	Specialty    string            `bson:"specialty,omitempty" json:"specialty,omitempty"`
	ClinicName   string            `bson:"clinicName,omitempty" json:"clinicName,omitempty"`
	Address      string            `bson:"address,omitempty" json:"address,omitempty"`
	FCMToken     string            `bson:"fcmToken,omitempty" json:"-"`
	WorkingHours []WorkingHourRule `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// ClinicInfoUpdate carries the mutable clinic profile fields. Working-hour
// rules are merged into the existing set, never replaced wholesale.
type ClinicInfoUpdate struct {
	ClinicName   string            `json:"clinicName,omitempty"`
	Address      string            `json:"address,omitempty"`
	Specialty    string            `json:"specialty,omitempty"`
	WorkingHours []WorkingHourRule `json:"workingHours,omitempty"`
}
