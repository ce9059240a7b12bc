package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountUUIDLength is the length of the dash-less hex UUID accounts are keyed by externally.
const AccountUUIDLength = 32

// Account is an authentication identity.
type Account struct {
	ID       int64   `json:"id"`
	UUID     string  `json:"uuid"`
	Email    string  `json:"email"`
	Username *string `json:"username,omitempty"`
	Password string  `json:"-"` // Password hash, never the plaintext.
	RoleID   int64   `json:"role_id"`

	// Two-factor columns. Nothing in this module generates or verifies codes.
	TOTPSecret   *string `json:"-"`
	BackupCodes  *string `json:"-"`
	Is2FAEnabled bool    `json:"is_2fa_enabled"`

	// Email OTP columns.
	EmailOTPCode      *string    `json:"-"`
	EmailOTPExpiresAt *time.Time `json:"-"`
	IsEmailVerified   bool       `json:"is_email_verified"`
	EmailOTPAttempts  int        `json:"-"`

	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
}

// NewAccountUUID returns a random UUID rendered as 32 lowercase hex characters.
func NewAccountUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
