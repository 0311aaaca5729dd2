package services

import (
	"context"
	"encoding/json"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/pkg/apperrors"
	"campusride/pkg/cache"
	"campusride/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the MongoDB implementations closely
// enough for service-level tests: sentinel errors, field merges, insertion
// ordering, and the unique booking_id constraint on ride history.

func testLogger() *logger.Logger {
	log, _ := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stderr"})
	return log
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case models.BookingStatus:
		return string(t)
	case models.PaymentStatus:
		return string(t)
	case models.VehicleType:
		return string(t)
	}
	return ""
}

func asTimePtr(v interface{}) *time.Time {
	switch t := v.(type) {
	case time.Time:
		return &t
	case *time.Time:
		return t
	}
	return nil
}

type fakeBookingRepo struct {
	bookings  []*models.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	if !booking.VehicleType.Valid() {
		return apperrors.Validation("invalid vehicle type")
	}
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) find(id primitive.ObjectID) *models.Booking {
	for _, b := range f.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if b := f.find(id); b != nil {
		copy := *b
		return &copy, nil
	}
	return nil, apperrors.ErrBookingNotFound
}

func (f *fakeBookingRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Booking, error) {
	b := f.find(id)
	if b == nil {
		return nil, apperrors.ErrBookingNotFound
	}

	for key, v := range updates {
		switch key {
		case "status":
			b.Status = models.BookingStatus(asString(v))
		case "payment_status":
			b.PaymentStatus = models.PaymentStatus(asString(v))
		case "payment_method":
			b.PaymentMethod = asString(v)
		case "pickup":
			b.Pickup = asString(v)
		case "dropoff":
			b.Dropoff = asString(v)
		case "ride_date":
			b.RideDate = asString(v)
		case "ride_time":
			b.RideTime = asString(v)
		case "vehicle_type":
			b.VehicleType = models.VehicleType(asString(v))
		case "driver_id":
			b.DriverID = asString(v)
		case "driver_name":
			b.DriverName = asString(v)
		case "vehicle_number":
			b.VehicleNumber = asString(v)
		case "pickup_notes":
			b.PickupNotes = asString(v)
		case "accessibility_needs":
			b.AccessibilityNeeds = asString(v)
		case "cancellation_reason":
			b.CancellationReason = asString(v)
		case "student_name":
			b.StudentName = asString(v)
		case "estimated_fare":
			fare := v.(float64)
			b.EstimatedFare = &fare
		case "actual_fare":
			fare := v.(float64)
			b.ActualFare = &fare
		case "passengers":
			b.Passengers = v.(int)
		case "updated_at":
			b.UpdatedAt = asTimePtr(v)
		case "completed_at":
			b.CompletedAt = asTimePtr(v)
		case "cancelled_at":
			b.CancelledAt = asTimePtr(v)
		}
	}

	copy := *b
	return &copy, nil
}

func (f *fakeBookingRepo) ListByStudent(ctx context.Context, studentID string, status models.BookingStatus) ([]*models.Booking, error) {
	result := []*models.Booking{}
	for i := len(f.bookings) - 1; i >= 0; i-- {
		b := f.bookings[i]
		if b.StudentID != studentID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Booking, error) {
	result := make(map[primitive.ObjectID]*models.Booking)
	for _, id := range ids {
		if b := f.find(id); b != nil {
			copy := *b
			result[id] = &copy
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) CountByVehicleType(ctx context.Context, statuses []models.BookingStatus) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, b := range f.bookings {
		if !statusIn(b.Status, statuses) {
			continue
		}
		counts[string(b.VehicleType)]++
	}
	return counts, nil
}

func (f *fakeBookingRepo) CountByRideDateRange(ctx context.Context, startDate, endDate string, statuses []models.BookingStatus) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if !statusIn(b.Status, statuses) {
			continue
		}
		if b.RideDate >= startDate && b.RideDate <= endDate {
			count++
		}
	}
	return count, nil
}

func statusIn(status models.BookingStatus, statuses []models.BookingStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type fakeHistoryRepo struct {
	records   []*models.RideHistory
	createErr error
}

func (f *fakeHistoryRepo) Create(ctx context.Context, history *models.RideHistory) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, h := range f.records {
		if h.BookingID == history.BookingID {
			return apperrors.ErrHistoryExists
		}
	}
	history.ID = primitive.NewObjectID()
	history.CreatedAt = time.Now()
	f.records = append(f.records, history)
	return nil
}

func (f *fakeHistoryRepo) find(id primitive.ObjectID) *models.RideHistory {
	for _, h := range f.records {
		if h.ID == id {
			return h
		}
	}
	return nil
}

func (f *fakeHistoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideHistory, error) {
	if h := f.find(id); h != nil {
		copy := *h
		return &copy, nil
	}
	return nil, apperrors.ErrRideHistoryNotFound
}

func (f *fakeHistoryRepo) ExistsForBooking(ctx context.Context, bookingID primitive.ObjectID) (bool, error) {
	for _, h := range f.records {
		if h.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHistoryRepo) ListByStudent(ctx context.Context, studentID string, filter interfaces.RideHistoryFilter) ([]*models.RideHistory, error) {
	result := []*models.RideHistory{}
	for i := len(f.records) - 1; i >= 0; i-- {
		h := f.records[i]
		if h.StudentID != studentID {
			continue
		}
		if filter.Status != "" && h.Status != filter.Status {
			continue
		}
		if filter.StartDate != nil && h.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && h.CreatedAt.After(*filter.EndDate) {
			continue
		}
		copy := *h
		result = append(result, &copy)
	}
	return result, nil
}

func (f *fakeHistoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.RideHistory, error) {
	h := f.find(id)
	if h == nil {
		return nil, apperrors.ErrRideHistoryNotFound
	}

	for key, v := range updates {
		switch key {
		case "rating":
			rating := v.(int)
			h.Rating = &rating
		case "feedback":
			h.Feedback = asString(v)
		case "rated_at":
			h.RatedAt = asTimePtr(v)
		}
	}

	copy := *h
	return &copy, nil
}

type fakeStudentRepo struct {
	students []*models.Student
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	student.ID = primitive.NewObjectID()
	student.EnrolledAt = time.Now()
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			copy := *s
			return &copy, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			copy := *s
			return &copy, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) FindByEmailOrStudentID(ctx context.Context, email, studentID string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email || s.StudentID == studentID {
			copy := *s
			return &copy, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]*models.Student, error) {
	result := []*models.Student{}
	for i := len(f.students) - 1; i >= 0; i-- {
		copy := *f.students[i]
		result = append(result, &copy)
	}
	return result, nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID != id {
			continue
		}
		for key, v := range updates {
			switch key {
			case "name":
				s.Name = asString(v)
			case "email":
				s.Email = asString(v)
			case "phone":
				s.Phone = asString(v)
			case "major":
				s.Major = asString(v)
			case "status":
				s.Status = models.StudentStatus(asString(v))
			case "updated_at":
				s.UpdatedAt = asTimePtr(v)
			}
		}
		copy := *s
		return &copy, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, s := range f.students {
		if s.ID == id {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copy := *u
			return &copy, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByValidResetToken(ctx context.Context, token string) (*models.User, error) {
	for _, u := range f.users {
		if u.ResetToken == token && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(time.Now()) {
			copy := *u
			return &copy, nil
		}
	}
	return nil, apperrors.ErrInvalidResetToken
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.User, error) {
	for _, u := range f.users {
		if u.ID != id {
			continue
		}
		for key, v := range updates {
			switch key {
			case "password":
				u.Password = asString(v)
			case "last_login_at":
				u.LastLoginAt = asTimePtr(v)
			case "login_count":
				u.LoginCount = v.(int)
			case "login_history":
				u.LoginHistory = v.([]models.LoginRecord)
			case "reset_token":
				if v == nil {
					u.ResetToken = ""
				} else {
					u.ResetToken = asString(v)
				}
			case "reset_token_expiry":
				if v == nil {
					u.ResetTokenExpiry = nil
				} else {
					u.ResetTokenExpiry = asTimePtr(v)
				}
			}
		}
		copy := *u
		return &copy, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, limit int) ([]*models.User, error) {
	result := []*models.User{}
	for i := len(f.users) - 1; i >= 0 && len(result) < limit; i-- {
		copy := *f.users[i]
		result = append(result, &copy)
	}
	return result, nil
}

// fakeCache records operations so tests can assert on invalidation.
type fakeCache struct {
	store   map[string][]byte
	deletes []string
	sets    []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.store[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	f.sets = append(f.sets, key)
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	f.deletes = append(f.deletes, key)
	return nil
}
