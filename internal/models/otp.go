package models

import "time"

// OTPPurpose identifies what a challenge proves.
type OTPPurpose string

const (
	PurposeUserRegister OTPPurpose = "user_register"
)

// OTPChallenge is a single-use numeric code bound to a user. Rows
// accumulate; the serial ID doubles as the insertion sequence, so the
// highest ID for a user/purpose pair is the authoritative challenge.
type OTPChallenge struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Purpose   OTPPurpose `gorm:"index:idx_otp_user_purpose,priority:2" json:"purpose"`
	Code      int        `json:"-"`
	UserID    uint       `gorm:"index:idx_otp_user_purpose,priority:1" json:"user_id"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func (OTPChallenge) TableName() string {
	return "otp_challenges"
}
