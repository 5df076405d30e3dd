package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"medibook/config"
	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/notification"
	"medibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: config.AppConfig.ReminderConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(apptRepo, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				// Appointment removed since booking; nothing to remind.
				return nil
			}
			return err
		}

		// A cancelled or completed appointment no longer needs a reminder.
		if appt.Status != models.StatusPending && appt.Status != models.StatusConfirmed {
			return nil
		}

		data := map[string]string{
			"type":          "appointment_reminder",
			"appointmentId": appt.ID,
			"date":          appt.Date,
			"time":          appt.Time,
		}
		if err := notifSvc.SendPatientPush(ctx, appt.PatientID,
			"Upcoming appointment",
			"You have an appointment on "+appt.Date+" at "+appt.Time, data); err != nil {
			logger.Warn("failed to send patient reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
		if err := notifSvc.SendDoctorPush(ctx, appt.DoctorID,
			"Upcoming appointment",
			"You have an appointment on "+appt.Date+" at "+appt.Time, data); err != nil {
			logger.Warn("failed to send doctor reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
		return nil
	}
}
