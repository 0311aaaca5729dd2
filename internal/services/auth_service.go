package services

import (
	"context"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"
	"campusride/internal/validators"
	"campusride/pkg/apperrors"
	"campusride/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService issues and validates credentials: signup, login with telemetry,
// and the password-reset token lifecycle. Token delivery is simulated by
// returning the token to the caller.
type AuthService struct {
	userRepo    interfaces.UserRepository
	studentRepo interfaces.StudentRepository
	jwtSecret   string
	tokenTTL    time.Duration
	resetTTL    time.Duration
	logger      *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, studentRepo interfaces.StudentRepository, jwtSecret string, tokenTTL, resetTTL time.Duration, log *logger.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		resetTTL:    resetTTL,
		logger:      log,
	}
}

type SignupResult struct {
	UserID    primitive.ObjectID `json:"userId"`
	Role      models.UserRole    `json:"role"`
	StudentID string             `json:"studentId"`
}

// Signup creates the paired Student and User records for an institutional
// email address.
func (s *AuthService) Signup(ctx context.Context, req *validators.SignupRequest) (*SignupResult, error) {
	if err := validators.ValidateSignup(req); err != nil {
		return nil, err
	}

	email := utils.LowercaseEmail(req.Email)
	if !utils.IsInstitutionalEmail(email) {
		return nil, apperrors.Validation("Use @pfw.edu or @purdue.edu email")
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("Email already registered")
	} else if !apperrors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = utils.EmailLocalPart(email)
	}
	studentID := req.StudentID
	if studentID == "" {
		studentID = utils.EmailLocalPart(email)
	}

	if _, err := s.studentRepo.FindByEmailOrStudentID(ctx, email, studentID); err == nil {
		return nil, apperrors.Conflict("Student already registered")
	} else if !apperrors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:      name,
		Email:     email,
		StudentID: studentID,
		Phone:     req.Phone,
		Major:     req.Major,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      models.RoleStudent,
		StudentID: student.StudentID,
		Phone:     req.Phone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("email", email).WithStudentID(studentID).Info("student account created")

	return &SignupResult{
		UserID:    user.ID,
		Role:      user.Role,
		StudentID: student.StudentID,
	}, nil
}

type LoginResult struct {
	User    *models.User    `json:"user"`
	Token   string          `json:"token"`
	Student *models.Student `json:"student"`
}

// Login verifies the credential and records the returning-user telemetry:
// last login time, login counter, and a login-history entry.
func (s *AuthService) Login(ctx context.Context, req *validators.LoginRequest, ip, userAgent string) (*LoginResult, error) {
	if err := validators.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, utils.LowercaseEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	history := append(user.LoginHistory, models.LoginRecord{
		LoggedInAt: now,
		IP:         ip,
		UserAgent:  userAgent,
	})

	user, err = s.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"last_login_at": now,
		"login_count":   user.LoginCount + 1,
		"login_history": history,
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{User: user, Token: token}

	if user.Role == models.RoleStudent {
		student, err := s.studentRepo.GetByEmail(ctx, user.Email)
		if err == nil {
			result.Student = student
		} else if !apperrors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.WithError(err).WithField("email", user.Email).Warn("failed to fetch student profile")
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"email":       user.Email,
		"login_count": user.LoginCount,
		"role":        user.Role,
	}).Info("login success")

	return result, nil
}

type ResetTokenResult struct {
	Token     string
	ExpiresAt time.Time
}

// ForgotPassword issues a reset token when the account exists. The caller
// must answer identically either way; a nil result means no account.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*ResetTokenResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.LowercaseEmail(email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(s.resetTTL)

	if _, err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}); err != nil {
		return nil, err
	}

	s.logger.WithField("email", user.Email).Info("password reset token generated")

	return &ResetTokenResult{Token: token, ExpiresAt: expiry}, nil
}

// ResetPassword consumes a valid, unexpired token and replaces the password.
func (s *AuthService) ResetPassword(ctx context.Context, req *validators.ResetPasswordRequest) error {
	if err := validators.ValidateResetPassword(req); err != nil {
		return err
	}

	user, err := s.userRepo.GetByValidResetToken(ctx, req.Token)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"password":           hashed,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}); err != nil {
		return err
	}

	s.logger.WithField("email", user.Email).Info("password reset")
	return nil
}
