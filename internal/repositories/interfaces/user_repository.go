package interfaces

import (
	"context"

	"campusride/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByValidResetToken resolves a reset token that has not yet expired.
	GetByValidResetToken(ctx context.Context, token string) (*models.User, error)

	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List returns the most recently created users, capped to limit.
	List(ctx context.Context, limit int) ([]*models.User, error)
}
