package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order mirrors the network order document. The nested blocks arrive
// as-is from the buyer network and are stored opaquely.
type Order struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrganizationID string `gorm:"index" json:"organization"`
	OrderID        string `gorm:"index" json:"orderId"`
	TransactionID  string `json:"transactionId"`

	Billing      map[string]any `gorm:"serializer:json" json:"billing"`
	Items        map[string]any `gorm:"serializer:json" json:"items"`
	Quote        map[string]any `gorm:"serializer:json" json:"quote"`
	Fulfillments map[string]any `gorm:"serializer:json" json:"fulfillments"`
	Payment      map[string]any `gorm:"serializer:json" json:"payment"`
	State        map[string]any `gorm:"serializer:json" json:"state"`

	CreatedBy string `json:"createdBy"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
