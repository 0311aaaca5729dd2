package utils

import "time"

const (
	AppName = "campusride"

	// Collection names are preserved from the original deployment.
	CollectionUsers       = "ga_users"
	CollectionStudents    = "ga_students"
	CollectionBookings    = "ga_bookings"
	CollectionRideHistory = "ga_ride_history"

	DefaultPassengers = 1

	MinRating = 1
	MaxRating = 5

	PasswordMinLength = 8
	BcryptCost        = 10

	ResetTokenBytes = 32
	ResetTokenTTL   = 15 * time.Minute

	AdminUserListLimit = 50

	MonthlyRideWindow = 12
)

// Institutional email domains accepted at signup.
var AllowedEmailDomains = []string{"@pfw.edu", "@purdue.edu"}

const (
	MsgBookingCreated   = "Booking created successfully"
	MsgBookingUpdated   = "Booking updated"
	MsgBookingCancelled = "Booking cancelled"
	MsgRatingSubmitted  = "Rating submitted"
	MsgStudentCreated   = "Student created"
	MsgStudentUpdated   = "Student updated"
	MsgStudentDeleted   = "Student deleted"
	MsgSignupSuccess    = "Student account created successfully"
	MsgLoginSuccess     = "Login successful"
	MsgUserDeleted      = "User deleted successfully"
	MsgPasswordReset    = "Password has been reset successfully."

	// Anti-enumeration: identical whether or not the account exists.
	MsgResetRequested = "If an account exists with that email, a reset link has been created."
)
