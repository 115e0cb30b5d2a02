package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store timing status values. StoreStatusLabel maps them onto the ONDC
// location labels; the same mapping feeds both the catalog projection
// and the store-update notification so the two surfaces cannot drift.
const (
	StoreStatusEnabled  = "enabled"
	StoreStatusClosed   = "closed"
	StoreStatusDisabled = "disabled"
)

func StoreStatusLabel(status string) string {
	switch status {
	case StoreStatusDisabled:
		return "disable"
	case StoreStatusClosed:
		return "close"
	default:
		return "enable"
	}
}

type Organization struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name          string `gorm:"uniqueIndex;not null" json:"name"`
	FSSAI         string `json:"FSSAI"`
	ContactEmail  string `json:"contactEmail"`
	ContactMobile string `json:"contactMobile"`
	IsEnabled     bool   `gorm:"default:true" json:"isEnabled"`

	// Stored object paths, resolved to signed URLs on read.
	IDProof         string `json:"idProof"`
	AddressProof    string `json:"addressProof"`
	PANProof        string `json:"panProof"`
	GSTNProof       string `json:"gstnProof"`
	CancelledCheque string `json:"cancelledCheque"`

	// The store configuration is a document aggregate, written and read
	// as a unit by the store editor, so it stays a single JSON column.
	StoreDetails *StoreDetails `gorm:"serializer:json" json:"storeDetails"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type StoreDetails struct {
	Name           string              `json:"name"`
	Logo           string              `json:"logo"`
	Category       string              `json:"category"`
	Location       *StoreLocation      `json:"location,omitempty"`
	Address        StoreAddress        `json:"address"`
	SupportDetails SupportDetails      `json:"supportDetails"`
	Fulfillments   []FulfillmentOption `json:"fulfillments"`
	StoreTiming    *StoreTiming        `json:"storeTiming,omitempty"`
	Radius         ServiceRadius       `json:"radius"`
}

type StoreLocation struct {
	ID   string `json:"id"`
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

type StoreAddress struct {
	Building string `json:"building"`
	Locality string `json:"locality"`
	City     string `json:"city"`
	State    string `json:"state"`
	AreaCode string `json:"area_code"`
}

type SupportDetails struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// FulfillmentOption is a seller-defined delivery/pickup channel.
type FulfillmentOption struct {
	ID      string             `json:"id"`
	Type    string             `json:"type"`
	Contact FulfillmentContact `json:"contact"`
}

type FulfillmentContact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type StoreTiming struct {
	Status   string        `json:"status"`
	Enabled  []TimingEntry `json:"enabled"`
	Holidays []string      `json:"holidays"`
}

// TimingEntry is one weekly window: a day range plus the time-of-day
// windows that apply on those days.
type TimingEntry struct {
	DaysRange DayRange     `json:"daysRange"`
	Timings   []TimeWindow `json:"timings"`
}

type DayRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// TimeWindow holds "HH:MM" strings.
type TimeWindow struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ServiceRadius struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}
