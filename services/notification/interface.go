package notification

import (
	"context"
	"fmt"

	doctorRepo "medibook/database/repository/doctor"
	patientRepo "medibook/database/repository/patient"
	"medibook/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes to the two
// parties of an appointment.
type NotificationService interface {
	SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error
	SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Doctors  doctorRepo.DoctorRepository
	Patients patientRepo.PatientRepository
}

// NewDefaultNotificationService wires the notification service.
func NewDefaultNotificationService(
	doctors doctorRepo.DoctorRepository,
	patients patientRepo.PatientRepository,
) (*DefaultNotificationService, error) {
	if doctors == nil || patients == nil {
		return nil, fmt.Errorf("notification service initialization error: doctor or patient repository is nil")
	}
	return &DefaultNotificationService{Doctors: doctors, Patients: patients}, nil
}

// SendDoctorPush looks up a doctor's FCM token and sends a push.
func (s *DefaultNotificationService) SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error {
	d, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("SendDoctorPush: could not find doctor %s: %w", doctorID, err)
	}
	if d.FCMToken == "" {
		return fmt.Errorf("SendDoctorPush: doctor %s has no FCM token", doctorID)
	}
	return send(ctx, d.FCMToken, "doctor", title, body, data)
}

// SendPatientPush looks up a patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error {
	p, err := s.Patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPush: could not find patient %s: %w", patientID, err)
	}
	if p.FCMToken == "" {
		return fmt.Errorf("SendPatientPush: patient %s has no FCM token", patientID)
	}
	return send(ctx, p.FCMToken, "patient", title, body, data)
}

func send(ctx context.Context, token, role, title, body string, data map[string]string) error {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "appointments",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
