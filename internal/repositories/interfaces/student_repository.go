package interfaces

import (
	"context"

	"campusride/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)

	// FindByEmailOrStudentID is the duplicate check used by signup and the
	// directory: it matches either unique identity field.
	FindByEmailOrStudentID(ctx context.Context, email, studentID string) (*models.Student, error)

	// List returns all students, newest-enrolled first.
	List(ctx context.Context) ([]*models.Student, error)

	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
