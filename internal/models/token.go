package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the opaque bearer credential tied 1:1 to an account.
// Issuance is idempotent: the same account keeps the same key until the
// row is removed out of band.
type AuthToken struct {
	Key       string    `gorm:"primaryKey;size:40" json:"-"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Account   Account   `gorm:"foreignKey:AccountID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
