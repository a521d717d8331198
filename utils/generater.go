package utils

import (
	"crypto/rand"
	"fmt"
)

func GenerateOTP() string {
	// Generate a 4-digit OTP
	var number [2]byte
	rand.Read(number[:])
	return fmt.Sprintf("%04d", (int(number[0])<<8|int(number[1]))%10000)
}
