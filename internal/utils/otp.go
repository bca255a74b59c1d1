package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpRange covers the 6-digit codes 100000..999999.
const (
	otpMin   = 100000
	otpRange = 900000
)

// GenerateOTP returns a uniformly random 6-digit numeric code as a string.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes for OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
