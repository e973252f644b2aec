package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusPastDue  SubscriptionStatus = "past_due"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusExpired  SubscriptionStatus = "expired"
)

// Subscription records which plan tier a user is on. Billing itself is an
// external collaborator; this table only carries what the limit checks need.
type Subscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`

	// Plan code: "free", "explorer" or "adventurer".
	PlanCode string             `gorm:"index"`
	Status   SubscriptionStatus `gorm:"index"`

	CurrentPeriodStart int64 `gorm:"not null"`
	CurrentPeriodEnd   int64 `gorm:"not null"`
	AutoRenew          bool  `gorm:"default:true"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
