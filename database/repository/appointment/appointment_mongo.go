package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrAppointmentNotFound is returned when no appointment matches the query.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrSlotTaken is returned when a pending appointment already holds the
	// (doctor, date, time) slot. Backed by the unique partial index, so it
	// also covers two writers racing for the same slot.
	ErrSlotTaken = errors.New("slot already held by a pending appointment")
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	db := database.MongoClient.Database("medibook")
	return &MongoAppointmentRepo{coll: db.Collection("appointments")}
}

func opTimeout() time.Duration {
	if s := config.AppConfig.CollaboratorTimeout; s > 0 {
		return time.Duration(s) * time.Second
	}
	return 5 * time.Second
}

// GetByID retrieves an appointment document by ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": appointmentID}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	return &appt, nil
}

// FindPending returns the pending appointment holding the slot, or (nil, nil).
func (repo *MongoAppointmentRepo) FindPending(ctx context.Context, doctorID, date, timeStr string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     timeStr,
		"status":   models.StatusPending,
	}
	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding pending appointment: %w", err)
	}
	return &appt, nil
}

// Insert persists a new appointment document. The unique partial index on
// (doctorId, date, time, status=pending) turns a lost race into ErrSlotTaken
// instead of a duplicate pending row.
func (repo *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// Revive flips a cancelled appointment back to pending in a single
// find-and-update, overwriting the mutable booking fields.
func (repo *MongoAppointmentRepo) Revive(ctx context.Context, doctorID, patientID, date, timeStr string, fields models.AppointmentUpdate) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	filter := bson.M{
		"doctorId":  doctorID,
		"patientId": patientID,
		"date":      date,
		"time":      timeStr,
		"status":    models.StatusCancelled,
	}
	update := bson.M{"$set": bson.M{
		"status":    models.StatusPending,
		"method":    fields.Method,
		"reason":    fields.Reason,
		"notes":     fields.Notes,
		"cost":      fields.Cost,
		"location":  fields.Location,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("error reviving cancelled appointment: %w", err)
	}
	return &appt, nil
}

// UpdateStatus atomically moves an appointment between statuses. The source
// statuses are part of the filter so an illegal transition never matches.
func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, appointmentID string, from []string, to string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	filter := bson.M{
		"id":     appointmentID,
		"status": bson.M{"$in": from},
	}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("error updating appointment %s status: %w", appointmentID, err)
	}
	return &appt, nil
}
