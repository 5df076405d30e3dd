package appointmentRepo

import (
	"context"
	"fmt"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetBookedSlots projects active appointments for a doctor within
// [startDate, endDate) onto their (date, time) pairs. Cancelled appointments
// never block a slot, so only active statuses are matched.
func (repo *MongoAppointmentRepo) GetBookedSlots(ctx context.Context, doctorID, startDate, endDate string) ([]models.BookedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"status":   bson.M{"$in": models.ActiveStatuses},
		"date":     bson.M{"$gte": startDate, "$lt": endDate},
	}
	opts := options.Find().SetProjection(bson.M{"date": 1, "time": 1, "_id": 0})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding booked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.BookedSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding booked slots: %w", err)
	}
	return slots, nil
}

// ListByDoctor returns all appointments booked with a doctor, newest date first.
func (repo *MongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return repo.list(ctx, bson.M{"doctorId": doctorID})
}

// ListByPatient returns all appointments a patient holds, newest date first.
func (repo *MongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return repo.list(ctx, bson.M{"patientId": patientID})
}

func (repo *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
