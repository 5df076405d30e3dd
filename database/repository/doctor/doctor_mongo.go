package doctorRepo

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

// ErrDoctorNotFound is returned when no doctor document matches the query.
var ErrDoctorNotFound = errors.New("doctor not found")

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new instance of MongoDoctorRepo.
func NewMongoDoctorRepo() *MongoDoctorRepo {
	db := database.MongoClient.Database("medibook")
	return &MongoDoctorRepo{coll: db.Collection("doctors")}
}

func opTimeout() time.Duration {
	if s := config.AppConfig.CollaboratorTimeout; s > 0 {
		return time.Duration(s) * time.Second
	}
	return 5 * time.Second
}

// GetByID retrieves a doctor document by ID.
func (repo *MongoDoctorRepo) GetByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	var doctor models.Doctor
	if err := repo.coll.FindOne(ctx, bson.M{"id": doctorID}).Decode(&doctor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("error fetching doctor with id %s: %w", doctorID, err)
	}
	return &doctor, nil
}

// GetByIDs retrieves all doctors whose ID appears in doctorIDs with one query.
func (repo *MongoDoctorRepo) GetByIDs(ctx context.Context, doctorIDs []string) ([]models.Doctor, error) {
	if len(doctorIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"id": bson.M{"$in": doctorIDs}})
	if err != nil {
		return nil, fmt.Errorf("error fetching doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("error decoding doctors: %w", err)
	}
	return doctors, nil
}

// UpdateClinicInfo applies a partial update to a doctor's clinic profile.
func (repo *MongoDoctorRepo) UpdateClinicInfo(ctx context.Context, doctorID string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout())
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": doctorID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating doctor %s: %w", doctorID, err)
	}
	if res.MatchedCount == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
