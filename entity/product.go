package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product type discriminator.
const (
	ProductTypeItem          = "item"
	ProductTypeCustomization = "customization"
)

type Product struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrganizationID string `gorm:"index;not null" json:"organization"`

	ProductName     string `gorm:"not null" json:"productName"`
	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`
	Type            string `gorm:"not null;default:item" json:"type"`

	UOM      string  `json:"UOM"`
	UOMValue float64 `json:"UOMValue"`

	Quantity      int     `json:"quantity"`
	MaxAllowedQty int     `json:"maxAllowedQty"`
	MRP           float64 `json:"MRP"`
	PurchasePrice float64 `json:"purchasePrice"`

	IsReturnable   bool   `json:"isReturnable"`
	IsCancellable  bool   `json:"isCancellable"`
	AvailableOnCod bool   `json:"availableOnCod"`
	ReturnWindow   string `json:"returnWindow"`

	FulfillmentOption    string `json:"fulfillmentOption"`
	CustomizationGroupID string `json:"customizationGroupId"`
	ProductSubcategory1  string `json:"productSubcategory1"`

	Images    []string `gorm:"serializer:json" json:"images"`
	VegNonVeg string   `json:"vegNonVeg"`
	Published bool     `gorm:"default:true" json:"published"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
