package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleAdmin   UserRole = "admin"
	RoleStudent UserRole = "student"
	RoleRider   UserRole = "rider"
)

// LoginRecord is one entry of a user's login telemetry.
type LoginRecord struct {
	LoggedInAt time.Time `json:"loggedInAt" bson:"logged_in_at"`
	IP         string    `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty" bson:"user_agent,omitempty"`
}

// User is a login credential plus role, optionally cross-referenced to a
// Student by StudentID. Password and reset-token fields never leave the
// server.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Role     UserRole           `json:"role" bson:"role"`

	StudentID string `json:"studentId,omitempty" bson:"student_id,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`

	ResetToken       string     `json:"-" bson:"reset_token,omitempty"`
	ResetTokenExpiry *time.Time `json:"-" bson:"reset_token_expiry,omitempty"`

	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
	LastLoginAt  *time.Time    `json:"lastLoginAt,omitempty" bson:"last_login_at,omitempty"`
	LoginCount   int           `json:"loginCount" bson:"login_count"`
	LoginHistory []LoginRecord `json:"-" bson:"login_history,omitempty"`
}
