package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
)

// Student is the identity record, independent of login credentials. Email and
// StudentID are both globally unique.
type Student struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	StudentID  string             `json:"studentId" bson:"student_id"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Major      string             `json:"major,omitempty" bson:"major,omitempty"`
	Status     StudentStatus      `json:"status" bson:"status"`
	EnrolledAt time.Time          `json:"enrolledAt" bson:"enrolled_at"`
	UpdatedAt  *time.Time         `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}
