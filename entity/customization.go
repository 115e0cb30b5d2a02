package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomizationGroup bundles selectable add-on products for a base item.
type CustomizationGroup struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrganizationID string `gorm:"index;not null" json:"organization"`

	Name        string `gorm:"not null" json:"name"`
	MinQuantity int    `json:"minQuantity"`
	MaxQuantity int    `json:"maxQuantity"`
	InputType   string `json:"inputType"`
	Seq         int    `json:"seq"`
}

func (g *CustomizationGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// CustomizationGroupMapping links a customization product to its parent
// group and, optionally, a child group. Many rows per customization.
type CustomizationGroupMapping struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	OrganizationID  string `gorm:"index;not null" json:"organization"`
	CustomizationID string `gorm:"index;not null" json:"customization"`
	Parent          string `json:"parent"`
	Child           string `json:"child"`
	Default         bool   `json:"default"`
}

func (m *CustomizationGroupMapping) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
