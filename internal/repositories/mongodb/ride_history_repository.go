package mongodb

import (
	"context"
	"fmt"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"
	"campusride/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rideHistoryRepository struct {
	collection *mongo.Collection
}

func NewRideHistoryRepository(db *mongo.Database) interfaces.RideHistoryRepository {
	return &rideHistoryRepository{
		collection: db.Collection(utils.CollectionRideHistory),
	}
}

func (r *rideHistoryRepository) Create(ctx context.Context, history *models.RideHistory) error {
	history.ID = primitive.NewObjectID()
	history.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, history)
	if err != nil {
		// The unique index on booking_id rejects the losing side of
		// concurrent duplicate terminal updates.
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrHistoryExists
		}
		return fmt.Errorf("failed to create ride history: %w", err)
	}

	return nil
}

func (r *rideHistoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideHistory, error) {
	var history models.RideHistory
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&history)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrRideHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get ride history: %w", err)
	}

	return &history, nil
}

func (r *rideHistoryRepository) ExistsForBooking(ctx context.Context, bookingID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"booking_id": bookingID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check ride history existence: %w", err)
	}

	return count > 0, nil
}

func (r *rideHistoryRepository) ListByStudent(ctx context.Context, studentID string, filter interfaces.RideHistoryFilter) ([]*models.RideHistory, error) {
	query := bson.M{"student_id": studentID}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		createdAt := bson.M{}
		if filter.StartDate != nil {
			createdAt["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			createdAt["$lte"] = *filter.EndDate
		}
		query["created_at"] = createdAt
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find ride history by student: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*models.RideHistory{}
	for cursor.Next(ctx) {
		var history models.RideHistory
		if err := cursor.Decode(&history); err != nil {
			return nil, fmt.Errorf("failed to decode ride history: %w", err)
		}
		records = append(records, &history)
	}

	return records, cursor.Err()
}

func (r *rideHistoryRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.RideHistory, error) {
	var history models.RideHistory
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&history)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrRideHistoryNotFound
		}
		return nil, fmt.Errorf("failed to update ride history: %w", err)
	}

	return &history, nil
}
