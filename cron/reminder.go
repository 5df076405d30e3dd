package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "reminder:appointment"

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}

// ReminderClient enqueues appointment reminders to fire ahead of the slot.
type ReminderClient struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderClient constructs the enqueue side of the reminder queue.
func NewReminderClient() *ReminderClient {
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	return &ReminderClient{
		client: asynq.NewClient(redisOpts()),
		lead:   lead,
	}
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// ScheduleReminder enqueues a reminder for the appointment, timed to fire
// before the slot starts. Slots too close to fire a reminder are skipped.
func (c *ReminderClient) ScheduleReminder(appt *models.Appointment) error {
	instant, err := slotInstant(appt)
	if err != nil {
		return err
	}
	fireAt := instant.Add(-c.lead)
	if !fireAt.After(time.Now().UTC()) {
		utils.GetLogger().Debug("skipping reminder for near-term slot",
			zap.String("appointmentID", appt.ID))
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{AppointmentID: appt.ID})
	if err != nil {
		return fmt.Errorf("marshaling reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if _, err := c.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("enqueueing reminder: %w", err)
	}
	return nil
}

// slotInstant resolves the appointment's UTC start instant from its stored
// date and time strings.
func slotInstant(appt *models.Appointment) (time.Time, error) {
	day, err := utils.ParseDate(appt.Date)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := utils.ParseClock(appt.Time)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}
