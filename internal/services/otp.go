package services

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/mebel/internal/models"
)

// OTP check failure kinds, ordered the way Check applies them:
// existence, then expiry, then equality.
var (
	ErrOTPUserNotFound = errors.New("no such user")
	ErrOTPNotIssued    = errors.New("no otp issued for user")
	ErrOTPExpired      = errors.New("otp code expired")
	ErrOTPCodeMismatch = errors.New("wrong otp code")
)

// ChallengeStore is the persistence surface the OTP service needs.
// Lookups return gorm.ErrRecordNotFound when nothing matches.
type ChallengeStore interface {
	FindUserByEmail(email string) (*models.User, error)
	FindUserByPublicID(publicID uuid.UUID, email string) (*models.User, error)
	CreateChallenge(challenge *models.OTPChallenge) error
	LatestChallenge(userID uint, purpose models.OTPPurpose) (*models.OTPChallenge, error)
	ActivateUser(userID uint) error
}

// OTPService issues and validates one-time codes.
type OTPService struct {
	store ChallengeStore
	ttl   time.Duration
	now   func() time.Time
}

// NewOTPService constructs an OTPService with the configured validity window.
func NewOTPService(store ChallengeStore, ttl time.Duration) *OTPService {
	return &OTPService{store: store, ttl: ttl, now: time.Now}
}

// Issue generates a random 4-digit code for the user and stores a new
// challenge. Outstanding challenges for the same user are left in place;
// only the newest one is authoritative at check time.
func (s *OTPService) Issue(userID uint, purpose models.OTPPurpose) (*models.OTPChallenge, error) {
	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	now := s.now()
	challenge := &models.OTPChallenge{
		Purpose:   purpose,
		Code:      code,
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.CreateChallenge(challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

// IssueForEmail issues a registration challenge for the user owning the
// email, or ErrOTPUserNotFound.
func (s *OTPService) IssueForEmail(email string) (*models.OTPChallenge, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPUserNotFound
		}
		return nil, err
	}

	return s.Issue(user.ID, models.PurposeUserRegister)
}

// Check validates a presented code against the most recently issued
// challenge for the user. The user is looked up by public UUID and email
// jointly. Checks short-circuit in order: user exists, a challenge
// exists, challenge unexpired, codes equal. On a successful
// registration check the user transitions to active.
func (s *OTPService) Check(publicID uuid.UUID, email string, purpose models.OTPPurpose, code int) error {
	user, err := s.store.FindUserByPublicID(publicID, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPUserNotFound
		}
		return err
	}

	challenge, err := s.store.LatestChallenge(user.ID, purpose)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPNotIssued
		}
		return err
	}

	if s.now().After(challenge.ExpiresAt) {
		return ErrOTPExpired
	}

	if challenge.Code != code {
		return ErrOTPCodeMismatch
	}

	if purpose == models.PurposeUserRegister {
		if err := s.store.ActivateUser(user.ID); err != nil {
			return err
		}
	}

	return nil
}

// generateCode draws a uniform random code in [1000, 9999].
func generateCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 1000, nil
}
