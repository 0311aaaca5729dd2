package validators

import (
	"time"

	"campusride/internal/utils"
	"campusride/pkg/apperrors"
)

type StudentCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Phone     string `json:"phone"`
	Major     string `json:"major"`
}

func ValidateStudentCreate(req *StudentCreateRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation("name, email and studentId required")
	}
	return nil
}

// StudentUpdateRequest merges only the fields present in the body.
type StudentUpdateRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Major  *string `json:"major"`
	Status *string `json:"status"`
}

func (req *StudentUpdateRequest) ToUpdates(now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": now}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Major != nil {
		updates["major"] = *req.Major
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	return updates
}
