package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

// otpTTL is how long a reset code and its verified flag stay valid.
const otpTTL = 10 * time.Minute

var (
	ErrOTPNotFound = errors.New("OTP not found or expired")
	ErrOTPInvalid  = errors.New("invalid OTP")
)

// OTPStore keeps password-reset challenges in Redis so every service
// instance sees the same state. Keys expire on their own.
type OTPStore struct {
	rdb *redis.Client
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{rdb: rdb}
}

// GenerateOTP returns a random 6-digit code.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(900000)+100000)
}

// Issue creates and stores a fresh code for the contact, replacing any
// previous one.
func (s *OTPStore) Issue(ctx context.Context, contact string) (string, error) {
	code := GenerateOTP()
	if err := s.rdb.Set(ctx, codeKey(contact), code, otpTTL).Err(); err != nil {
		return "", err
	}
	// A new code invalidates an earlier verification.
	s.rdb.Del(ctx, verifiedKey(contact))
	return code, nil
}

// Verify checks the submitted code and, on success, marks the challenge
// verified for the remaining window.
func (s *OTPStore) Verify(ctx context.Context, contact, code string) error {
	stored, err := s.rdb.Get(ctx, codeKey(contact)).Result()
	if err == redis.Nil {
		return ErrOTPNotFound
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrOTPInvalid
	}
	return s.rdb.Set(ctx, verifiedKey(contact), "1", otpTTL).Err()
}

// IsVerified reports whether the contact passed verification and the window
// is still open.
func (s *OTPStore) IsVerified(ctx context.Context, contact string) (bool, error) {
	_, err := s.rdb.Get(ctx, verifiedKey(contact)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Clear drops the challenge after a successful reset.
func (s *OTPStore) Clear(ctx context.Context, contact string) error {
	return s.rdb.Del(ctx, codeKey(contact), verifiedKey(contact)).Err()
}

func codeKey(contact string) string {
	return "otp:code:" + contact
}

func verifiedKey(contact string) string {
	return "otp:verified:" + contact
}
