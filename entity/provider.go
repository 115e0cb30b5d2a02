package entity

// Provider is the network-facing catalog document built per organization
// by the catalog projection. It is recomputed on demand and never
// persisted. Field names mirror the published ONDC catalog schema and
// must not change.
type Provider struct {
	ProviderID           string                         `json:"provider_id"`
	OnNetworkLogistics   bool                           `json:"on_network_logistics"`
	TTL                  string                         `json:"ttl"`
	Time                 ProviderTime                   `json:"time"`
	Details              ProviderDetails                `json:"details"`
	Locations            map[string]ProviderLocation    `json:"locations"`
	Fulfillments         map[string]ProviderFulfillment `json:"fulfillments"`
	Categories           map[string]*CatalogCategory    `json:"categories"`
	Items                map[string]*CatalogItem        `json:"items"`
	Offers               map[string]any                 `json:"offers"`
	Tags                 []Tag                          `json:"tags"`
	ItemNameCache        []string                       `json:"item_name_cache"`
	CategoryNameCache    []string                       `json:"category_name_cache"`
	FulfillmentTypeCache []string                       `json:"fulfillment_type_cache"`
}

type ProviderTime struct {
	Label string `json:"label"`
}

type ProviderDetails struct {
	Descriptor     Descriptor `json:"descriptor"`
	FSSAILicenseNo string     `json:"@ondc/org/fssai_license_no"`
}

// Descriptor is shared by providers, categories and items; only name is
// always present.
type Descriptor struct {
	Name      string   `json:"name"`
	Symbol    string   `json:"symbol,omitempty"`
	ShortDesc string   `json:"short_desc,omitempty"`
	LongDesc  string   `json:"long_desc,omitempty"`
	Images    []string `json:"images,omitempty"`
}

type ProviderLocation struct {
	ID      string          `json:"id"`
	GPS     string          `json:"gps"`
	Time    LocationTime    `json:"time"`
	Address LocationAddress `json:"address"`
	Contact PhoneContact    `json:"contact"`
}

type LocationTime struct {
	Label     string           `json:"label"`
	Timestamp string           `json:"timestamp"`
	Days      string           `json:"days"`
	Schedule  LocationSchedule `json:"schedule"`
	Range     TimeRange        `json:"range"`
}

type LocationSchedule struct {
	Holidays  []string `json:"holidays"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type LocationAddress struct {
	Locality string `json:"locality"`
	Street   string `json:"street"`
	City     string `json:"city"`
	AreaCode string `json:"area_code"`
	State    string `json:"state"`
}

type PhoneContact struct {
	Phone string `json:"phone"`
}

type ProviderFulfillment struct {
	ID      string             `json:"id"`
	Type    string             `json:"type"`
	Contact FulfillmentContact `json:"contact"`
}

// CatalogCategory is one entry of the merged category map. Menu-derived
// entries carry an empty parent_category_id; group-derived entries omit
// the field, matching the published shape.
type CatalogCategory struct {
	ID               string     `json:"id"`
	ParentCategoryID *string    `json:"parent_category_id,omitempty"`
	Descriptor       Descriptor `json:"descriptor"`
	Tags             []Tag      `json:"tags"`
}

// CatalogItem is one entry of the item map. The commerce block is only
// carried by item-type products; customization entries leave it nil and
// the embedded pointer marshals to nothing.
type CatalogItem struct {
	ID         string       `json:"id"`
	Descriptor Descriptor   `json:"descriptor"`
	Quantity   ItemQuantity `json:"quantity"`
	Price      ItemPrice    `json:"price"`
	CategoryID string       `json:"category_id"`
	LocationID string       `json:"location_id"`
	Related    bool         `json:"related"`
	*ItemCommerce
	Tags []Tag `json:"tags"`
}

// ItemCommerce holds the fields that only apply to sellable items:
// fulfillment binding, custom-menu memberships and the ONDC commerce
// extension flags.
type ItemCommerce struct {
	CategoryIDs        []string `json:"category_ids"`
	FulfillmentID      string   `json:"fulfillment_id"`
	Recommended        bool     `json:"recommended"`
	Returnable         string   `json:"@ondc/org/returnable"`
	Cancellable        string   `json:"@ondc/org/cancellable"`
	ReturnWindow       string   `json:"@ondc/org/return_window"`
	SellerPickupReturn bool     `json:"@ondc/org/seller_pickup_return"`
	TimeToShip         string   `json:"@ondc/org/time_to_ship"`
	AvailableOnCod     string   `json:"@ondc/org/available_on_cod"`
	ConsumerCare       string   `json:"@ondc/org/contact_details_consumer_care"`
}

type ItemQuantity struct {
	Unitized  Unitized    `json:"unitized"`
	Available CountHolder `json:"available"`
	Maximum   CountHolder `json:"maximum"`
}

type Unitized struct {
	Measure UnitizedMeasure `json:"measure"`
}

type UnitizedMeasure struct {
	Unit  string `json:"unit"`
	Value string `json:"value"`
}

type CountHolder struct {
	Count string `json:"count"`
}

type ItemPrice struct {
	Currency     string `json:"currency"`
	Value        string `json:"value"`
	MaximumValue string `json:"maximum_value"`
}

// Tag is the {code, list} metadata structure used throughout the
// catalog schema.
type Tag struct {
	Code string     `json:"code"`
	List []TagEntry `json:"list"`
}

type TagEntry struct {
	Code  string `json:"code"`
	Value string `json:"value"`
}
