package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/mebel/internal/models"
)

// gormChallengeStore backs ChallengeStore with the application database.
type gormChallengeStore struct {
	db *gorm.DB
}

// NewChallengeStore returns the database-backed ChallengeStore.
func NewChallengeStore(db *gorm.DB) ChallengeStore {
	return &gormChallengeStore{db: db}
}

func (s *gormChallengeStore) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormChallengeStore) FindUserByPublicID(publicID uuid.UUID, email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("public_id = ? AND email = ?", publicID, email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormChallengeStore) CreateChallenge(challenge *models.OTPChallenge) error {
	return s.db.Create(challenge).Error
}

// LatestChallenge orders by the serial primary key, not the issued-at
// timestamp: two challenges can share a timestamp and only insertion
// order is authoritative.
func (s *gormChallengeStore) LatestChallenge(userID uint, purpose models.OTPPurpose) (*models.OTPChallenge, error) {
	var challenge models.OTPChallenge
	err := s.db.Where("user_id = ? AND purpose = ?", userID, purpose).
		Order("id desc").
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *gormChallengeStore) ActivateUser(userID uint) error {
	return s.db.Model(&models.User{}).
		Where("id = ? AND status = ?", userID, models.StatusContactVerification).
		Update("status", models.StatusActive).Error
}
