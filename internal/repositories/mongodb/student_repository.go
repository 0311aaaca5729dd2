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

type studentRepository struct {
	collection *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) interfaces.StudentRepository {
	return &studentRepository{
		collection: db.Collection(utils.CollectionStudents),
	}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ID = primitive.NewObjectID()
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
	student.EnrolledAt = time.Now()

	_, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("Student with that email or studentId already exists")
		}
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &student, nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}

	return &student, nil
}

func (r *studentRepository) FindByEmailOrStudentID(ctx context.Context, email, studentID string) (*models.Student, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"student_id": studentID},
	}}

	var student models.Student
	err := r.collection.FindOne(ctx, filter).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	return &student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*models.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "enrolled_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []*models.Student{}
	for cursor.Next(ctx) {
		var student models.Student
		if err := cursor.Decode(&student); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, &student)
	}

	return students, cursor.Err()
}

func (r *studentRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrStudentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("Student with that email or studentId already exists")
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return &student, nil
}

func (r *studentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
