package services

import (
	"context"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"
	"campusride/internal/validators"
	"campusride/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentService is plain CRUD over the student directory with uniqueness on
// email and studentId.
type StudentService struct {
	studentRepo interfaces.StudentRepository
}

func NewStudentService(studentRepo interfaces.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) Create(ctx context.Context, req *validators.StudentCreateRequest) (*models.Student, error) {
	if err := validators.ValidateStudentCreate(req); err != nil {
		return nil, err
	}

	email := utils.LowercaseEmail(req.Email)

	if _, err := s.studentRepo.FindByEmailOrStudentID(ctx, email, req.StudentID); err == nil {
		return nil, apperrors.Conflict("Student with that email or studentId already exists")
	} else if !apperrors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	student := &models.Student{
		Name:      req.Name,
		Email:     email,
		StudentID: req.StudentID,
		Phone:     req.Phone,
		Major:     req.Major,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx)
}

func (s *StudentService) Get(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *StudentService) Update(ctx context.Context, id primitive.ObjectID, req *validators.StudentUpdateRequest) (*models.Student, error) {
	return s.studentRepo.Update(ctx, id, req.ToUpdates(time.Now()))
}

func (s *StudentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.studentRepo.Delete(ctx, id)
}
