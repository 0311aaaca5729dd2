package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken returns a hex-encoded random token for the password
// reset flow.
func GenerateResetToken() (string, error) {
	b := make([]byte, ResetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
