package services

import (
	"context"
	"fmt"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"
	"campusride/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminService serves the dashboard: user administration and aggregate ride
// statistics over bookings.
type AdminService struct {
	userRepo    interfaces.UserRepository
	bookingRepo interfaces.BookingRepository
	logger      *logger.Logger
}

func NewAdminService(userRepo interfaces.UserRepository, bookingRepo interfaces.BookingRepository, log *logger.Logger) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		logger:      log,
	}
}

// AdminUserRow is a user formatted for the dashboard, with credential fields
// stripped.
type AdminUserRow struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Joined      string             `json:"joined"`
	Status      string             `json:"status"`
	Role        models.UserRole    `json:"role"`
	StudentID   string             `json:"studentId,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	LoginCount  int                `json:"loginCount"`
	LastLoginAt *time.Time         `json:"lastLoginAt,omitempty"`
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*AdminUserRow, error) {
	users, err := s.userRepo.List(ctx, utils.AdminUserListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]*AdminUserRow, 0, len(users))
	for _, user := range users {
		status := "Inactive"
		if user.LastLoginAt != nil {
			status = "Active"
		}
		rows = append(rows, &AdminUserRow{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Joined:      user.CreatedAt.Format("Jan 2, 2006"),
			Status:      status,
			Role:        user.Role,
			StudentID:   user.StudentID,
			Phone:       user.Phone,
			LoginCount:  user.LoginCount,
			LastLoginAt: user.LastLoginAt,
		})
	}

	return rows, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("email", user.Email).Info("user deleted")
	return nil
}

// activeStatuses are the booking states counted by the dashboard aggregates.
var activeStatuses = []models.BookingStatus{
	models.BookingStatusCompleted,
	models.BookingStatusConfirmed,
	models.BookingStatusInProgress,
}

// RideTypeDistribution is chart-ready: parallel label/count/color arrays,
// always carrying all four ride classes even at zero.
type RideTypeDistribution struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
	Colors []string `json:"colors"`
}

var rideTypeChart = []struct {
	key   string
	label string
	color string
}{
	{"economy", "Economy", "#3B82F6"},
	{"premium", "Premium", "#F59E0B"},
	{"xl", "XL", "#10B981"},
	{"shared", "Shared", "#EF4444"},
}

func (s *AdminService) RideTypeDistribution(ctx context.Context) (*RideTypeDistribution, error) {
	counts, err := s.bookingRepo.CountByVehicleType(ctx, activeStatuses)
	if err != nil {
		return nil, err
	}

	dist := &RideTypeDistribution{}
	for _, t := range rideTypeChart {
		dist.Labels = append(dist.Labels, t.label)
		dist.Data = append(dist.Data, counts[t.key])
		dist.Colors = append(dist.Colors, t.color)
	}

	return dist, nil
}

type MonthCount struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int64  `json:"count"`
}

type MonthlyRideStats struct {
	Data   []MonthCount `json:"data"`
	Labels []string     `json:"labels"`
	Counts []int64      `json:"counts"`
}

// MonthlyRides counts bookings per calendar month over the trailing twelve
// months, keyed by the ride-date string (lexical YYYY-MM-DD comparison).
func (s *AdminService) MonthlyRides(ctx context.Context, now time.Time) (*MonthlyRideStats, error) {
	stats := &MonthlyRideStats{}

	for i := utils.MonthlyRideWindow - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		startStr := monthStart.Format("2006-01-02")
		endStr := monthEnd.Format("2006-01-02")

		count, err := s.bookingRepo.CountByRideDateRange(ctx, startStr, endStr, activeStatuses)
		if err != nil {
			return nil, fmt.Errorf("failed to count rides for %s: %w", monthStart.Format("2006-01"), err)
		}

		mc := MonthCount{
			Month: monthStart.Format("Jan"),
			Year:  monthStart.Year(),
			Count: count,
		}
		stats.Data = append(stats.Data, mc)
		stats.Labels = append(stats.Labels, mc.Month)
		stats.Counts = append(stats.Counts, mc.Count)
	}

	return stats, nil
}
