package validators

import (
	"errors"
	"fmt"

	"campusride/internal/utils"
	"campusride/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

type SignupRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Phone     string `json:"phone"`
	Major     string `json:"major"`
}

// hasRequiredFailure reports whether any field failed the required tag, which
// takes precedence over length checks in the returned message.
func hasRequiredFailure(err error) bool {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return false
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}

func ValidateSignup(req *SignupRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		if hasRequiredFailure(err) {
			return apperrors.Validation("Email and password required")
		}
		return apperrors.Validation(fmt.Sprintf("Password must be %d+ characters", utils.PasswordMinLength))
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func ValidateLogin(req *LoginRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation("Email and password required")
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

func ValidateForgotPassword(req *ForgotPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation("Email is required.")
	}
	return nil
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

func ValidateResetPassword(req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		if hasRequiredFailure(err) {
			return apperrors.Validation("Token and new password are required.")
		}
		return apperrors.Validation(fmt.Sprintf("Password must be at least %d characters.", utils.PasswordMinLength))
	}
	return nil
}
