package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	cleanerserrors "cleanbook/internal/cleaners/errors"
	"cleanbook/pkg/config"
	mongotx "cleanbook/pkg/db/mongo"
	"cleanbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Cleaners"
)

type CleanerRepository interface {
	Create(ctx context.Context, cleaner *model.Cleaner) error
	FindByID(ctx context.Context, id string) (*model.Cleaner, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Cleaner, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, cleaner *model.Cleaner) error
	AddBooking(ctx context.Context, cleanerID, bookingID string) error
	RemoveBooking(ctx context.Context, cleanerID, bookingID string) error
	Delete(ctx context.Context, id string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoCleanerRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoCleanerRepository(cfg *config.Config) CleanerRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCleanerRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoCleanerRepository) Create(ctx context.Context, cleaner *model.Cleaner) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if cleaner.CurrentBookings == nil {
		cleaner.CurrentBookings = []string{}
	}
	result, err := r.collection.InsertOne(ctx, cleaner)
	if err != nil {
		return fmt.Errorf("failed to create cleaner: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		cleaner.ID = oid.Hex()
	}
	return nil
}

func (r *mongoCleanerRepository) FindByID(ctx context.Context, id string) (*model.Cleaner, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", cleanerserrors.ErrInvalidID, id)
	}

	var cleaner model.Cleaner
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&cleaner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cleanerserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cleaner: %w", err)
	}

	return &cleaner, nil
}

func (r *mongoCleanerRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Cleaner, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find cleaners: %w", err)
	}
	defer cursor.Close(ctx)

	var cleaners []*model.Cleaner
	if err = cursor.All(ctx, &cleaners); err != nil {
		return nil, fmt.Errorf("failed to decode cleaners: %w", err)
	}

	return cleaners, nil
}

func (r *mongoCleanerRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaners: %w", err)
	}

	return count, nil
}

func (r *mongoCleanerRepository) Update(ctx context.Context, id string, cleaner *model.Cleaner) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", cleanerserrors.ErrInvalidID, id)
	}

	// currentBookings is deliberately absent here: the booking set is
	// only mutated through AddBooking and RemoveBooking.
	update := bson.M{
		"$set": bson.M{
			"name":         cleaner.Name,
			"nationalId":   cleaner.NationalID,
			"address":      cleaner.Address,
			"contactInfo":  cleaner.ContactInfo,
			"availability": cleaner.Availability,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update cleaner: %w", err)
	}
	if result.MatchedCount == 0 {
		return cleanerserrors.ErrNotFound
	}

	return nil
}

func (r *mongoCleanerRepository) AddBooking(ctx context.Context, cleanerID, bookingID string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(cleanerID)
	if err != nil {
		return fmt.Errorf("%w: %s", cleanerserrors.ErrInvalidID, cleanerID)
	}

	update := bson.M{"$addToSet": bson.M{"currentBookings": bookingID}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to add booking to cleaner: %w", err)
	}
	if result.MatchedCount == 0 {
		return cleanerserrors.ErrNotFound
	}

	return nil
}

func (r *mongoCleanerRepository) RemoveBooking(ctx context.Context, cleanerID, bookingID string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(cleanerID)
	if err != nil {
		return fmt.Errorf("%w: %s", cleanerserrors.ErrInvalidID, cleanerID)
	}

	update := bson.M{"$pull": bson.M{"currentBookings": bookingID}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove booking from cleaner: %w", err)
	}
	if result.MatchedCount == 0 {
		return cleanerserrors.ErrNotFound
	}

	return nil
}

func (r *mongoCleanerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", cleanerserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete cleaner: %w", err)
	}
	if result.DeletedCount == 0 {
		return cleanerserrors.ErrNotFound
	}

	return nil
}

func (r *mongoCleanerRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
