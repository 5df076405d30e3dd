package patientRepo

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
)

// ErrPatientNotFound is returned when no patient document matches the query.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines data access for patient profiles.
type PatientRepository interface {
	// GetByID retrieves a patient by its unique ID.
	GetByID(ctx context.Context, patientID string) (*models.Patient, error)
	// GetByIDs retrieves multiple patients in a single query.
	GetByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error)
}

// MongoPatientRepo implements PatientRepository using MongoDB.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new instance of MongoPatientRepo.
func NewMongoPatientRepo() *MongoPatientRepo {
	db := database.MongoClient.Database("medibook")
	return &MongoPatientRepo{coll: db.Collection("patients")}
}

func opTimeout() time.Duration {
	if s := config.AppConfig.CollaboratorTimeout; s > 0 {
		return time.Duration(s) * time.Second
	}
	return 5 * time.Second
}

// GetByID retrieves a patient document by ID.
func (repo *MongoPatientRepo) GetByID(ctx context.Context, patientID string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	var patient models.Patient
	if err := repo.coll.FindOne(ctx, bson.M{"id": patientID}).Decode(&patient); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("error fetching patient with id %s: %w", patientID, err)
	}
	return &patient, nil
}

// GetByIDs retrieves all patients whose ID appears in patientIDs with one query.
func (repo *MongoPatientRepo) GetByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	if len(patientIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"id": bson.M{"$in": patientIDs}})
	if err != nil {
		return nil, fmt.Errorf("error fetching patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("error decoding patients: %w", err)
	}
	return patients, nil
}
