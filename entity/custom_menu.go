package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomMenu is a seller-curated grouping of items, used as an alternate
// category source alongside customization groups.
type CustomMenu struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrganizationID string `gorm:"index;not null" json:"organization"`

	Name             string   `gorm:"not null" json:"name"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Images           []string `gorm:"serializer:json" json:"images"`
	Seq              int      `json:"seq"`
}

func (m *CustomMenu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CustomMenuTiming attaches weekly timing windows to a custom menu.
type CustomMenuTiming struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	OrganizationID string        `gorm:"index;not null" json:"organization"`
	CustomMenuID   string        `gorm:"index;not null" json:"customMenu"`
	Timings        []TimingEntry `gorm:"serializer:json" json:"timings"`
}

func (t *CustomMenuTiming) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// CustomMenuProduct assigns a product to a custom menu with a display
// sequence. Catalog membership, many-to-many.
type CustomMenuProduct struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	OrganizationID string `gorm:"index;not null" json:"organization"`
	CustomMenuID   string `gorm:"index;not null" json:"customMenu"`
	ProductID      string `gorm:"index;not null" json:"product"`
	Seq            int    `json:"seq"`
}

func (p *CustomMenuProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
