package services

import (
	"context"
	"testing"
	"time"

	"github.com/SciSaif/seller-app/entity"
)

func itemProduct(id, orgID string) entity.Product {
	return entity.Product{
		ID:                  id,
		OrganizationID:      orgID,
		ProductName:         "Paneer Tikka",
		Description:         "Chargrilled paneer",
		LongDescription:     "Chargrilled paneer with mint chutney",
		Type:                entity.ProductTypeItem,
		UOM:                 "unit",
		UOMValue:            1,
		Quantity:            20,
		MaxAllowedQty:       5,
		MRP:                 249,
		IsReturnable:        false,
		IsCancellable:       true,
		AvailableOnCod:      true,
		ReturnWindow:        "PT1H",
		FulfillmentOption:   "delivery",
		ProductSubcategory1: "Starters",
		Images:              []string{"products/p1-a.png", "products/p1-b.png"},
		VegNonVeg:           "veg",
		Published:           true,
	}
}

func TestBuildItemBlock_ItemVariant(t *testing.T) {
	org := testOrg("org-1")
	svc, fx := newCatalogFixture(org)
	fx.products.byOrg["org-1"] = []entity.Product{itemProduct("p1", "org-1")}

	block, err := svc.buildItemBlock(context.Background(), &org, "loc-org-1")
	if err != nil {
		t.Fatalf("buildItemBlock: %v", err)
	}

	item, ok := block.byID["p1"]
	if !ok {
		t.Fatal("item p1 missing")
	}
	if item.Related {
		t.Error("item products must not be related")
	}
	if item.ItemCommerce == nil {
		t.Fatal("item products must carry the commerce block")
	}
	if item.FulfillmentID != "F1" {
		t.Errorf("fulfillment_id = %q, want F1", item.FulfillmentID)
	}
	if item.CategoryID != "Starters" {
		t.Errorf("category_id = %q, want subcategory override", item.CategoryID)
	}
	if item.LocationID != "loc-org-1" {
		t.Errorf("location_id = %q, want loc-org-1", item.LocationID)
	}
	if item.Descriptor.Symbol != "https://assets.example.com/products/p1-a.png" {
		t.Errorf("symbol = %q, want first image URL", item.Descriptor.Symbol)
	}
	if len(item.Descriptor.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(item.Descriptor.Images))
	}
	if item.Descriptor.Images[1] != "https://assets.example.com/products/p1-b.png" {
		t.Errorf("image order not preserved: %v", item.Descriptor.Images)
	}
	if item.Price.Currency != "INR" || item.Price.Value != "249" || item.Price.MaximumValue != "249" {
		t.Errorf("unexpected price block: %+v", item.Price)
	}
	if item.Returnable != "false" || item.Cancellable != "true" || item.AvailableOnCod != "true" {
		t.Errorf("unexpected commerce flags: %+v", item.ItemCommerce)
	}
	if item.TimeToShip != "PT45M" {
		t.Errorf("time_to_ship = %q, want PT45M", item.TimeToShip)
	}
	if item.SellerPickupReturn {
		t.Error("seller_pickup_return must be false")
	}
	if want := "Spice Villa,owner@spicevilla.in,9999999999"; item.ConsumerCare != want {
		t.Errorf("consumer care = %q, want %q", item.ConsumerCare, want)
	}
	if len(item.CategoryIDs) != 0 {
		t.Errorf("category_ids should start empty, got %v", item.CategoryIDs)
	}

	if item.Tags[0].Code != "type" || item.Tags[0].List[0].Value != "item" {
		t.Errorf("first tag must echo the product type: %+v", item.Tags[0])
	}
	if item.Tags[1].Code != "veg_nonveg" || item.Tags[1].List[0].Value != "yes" {
		t.Errorf("veg tag = %+v, want yes", item.Tags[1])
	}
}

func TestBuildItemBlock_FulfillmentFirstMatchWins(t *testing.T) {
	org := testOrg("org-1")
	// Two delivery options; the first one must win.
	org.StoreDetails.Fulfillments = []entity.FulfillmentOption{
		{ID: "F1", Type: "delivery"},
		{ID: "F9", Type: "delivery"},
	}
	svc, fx := newCatalogFixture(org)
	fx.products.byOrg["org-1"] = []entity.Product{itemProduct("p1", "org-1")}

	block, err := svc.buildItemBlock(context.Background(), &org, "loc-org-1")
	if err != nil {
		t.Fatalf("buildItemBlock: %v", err)
	}
	if got := block.byID["p1"].FulfillmentID; got != "F1" {
		t.Errorf("fulfillment_id = %q, want first match F1", got)
	}
}

func TestBuildItemBlock_NoFulfillmentMatch(t *testing.T) {
	org := testOrg("org-1")
	product := itemProduct("p1", "org-1")
	product.FulfillmentOption = "drone"
	svc, fx := newCatalogFixture(org)
	fx.products.byOrg["org-1"] = []entity.Product{product}

	block, err := svc.buildItemBlock(context.Background(), &org, "loc-org-1")
	if err != nil {
		t.Fatalf("buildItemBlock: %v", err)
	}
	if got := block.byID["p1"].FulfillmentID; got != "" {
		t.Errorf("fulfillment_id = %q, want empty string for no match", got)
	}
}

func TestBuildItemBlock_CustomizationVariant(t *testing.T) {
	org := testOrg("org-1")
	product := entity.Product{
		ID:             "p2",
		OrganizationID: "org-1",
		ProductName:    "Extra Cheese",
		Type:           entity.ProductTypeCustomization,
		UOM:            "unit",
		UOMValue:       1,
		Quantity:       100,
		MaxAllowedQty:  3,
		MRP:            49,
		VegNonVeg:      "VEG",
		Published:      true,
	}

	tests := []struct {
		name         string
		mappings     []entity.CustomizationGroupMapping
		wantParent   string
		wantDefault  string
		wantChildren []string
	}{
		{
			name: "parent with children",
			mappings: []entity.CustomizationGroupMapping{
				{CustomizationID: "p2", Parent: "G1", Default: true, Child: "G2"},
				{CustomizationID: "p2", Parent: "G1", Default: false, Child: ""},
				{CustomizationID: "p2", Parent: "G1", Default: false, Child: "G3"},
			},
			wantParent:   "G1",
			wantDefault:  "yes",
			wantChildren: []string{"G2", "G3"},
		},
		{
			name: "parent without children",
			mappings: []entity.CustomizationGroupMapping{
				{CustomizationID: "p2", Parent: "G1", Default: false, Child: ""},
			},
			wantParent:  "G1",
			wantDefault: "no",
		},
		{
			name: "no mappings",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, fx := newCatalogFixture(org)
			fx.products.byOrg["org-1"] = []entity.Product{product}
			fx.customizations.mappings["p2"] = tc.mappings

			block, err := svc.buildItemBlock(context.Background(), &org, "loc-org-1")
			if err != nil {
				t.Fatalf("buildItemBlock: %v", err)
			}
			item := block.byID["p2"]
			if !item.Related {
				t.Error("customization products must be related")
			}
			if item.ItemCommerce != nil {
				t.Error("customization products must not carry the commerce block")
			}

			var parentTag, childTag *entity.Tag
			for i := range item.Tags {
				switch item.Tags[i].Code {
				case "parent":
					parentTag = &item.Tags[i]
				case "child":
					childTag = &item.Tags[i]
				}
			}

			if tc.wantParent == "" {
				if parentTag != nil {
					t.Error("expected no parent tag")
				}
				return
			}
			if parentTag == nil {
				t.Fatal("parent tag missing")
			}
			if parentTag.List[0].Value != tc.wantParent || parentTag.List[1].Value != tc.wantDefault {
				t.Errorf("parent tag = %+v, want id=%s default=%s", parentTag.List, tc.wantParent, tc.wantDefault)
			}

			if len(tc.wantChildren) == 0 {
				if childTag != nil {
					t.Errorf("child tag must be absent when every child id is empty, got %+v", childTag)
				}
				return
			}
			if childTag == nil {
				t.Fatal("child tag missing")
			}
			if len(childTag.List) != len(tc.wantChildren) {
				t.Fatalf("child tag has %d entries, want %d", len(childTag.List), len(tc.wantChildren))
			}
			for i, want := range tc.wantChildren {
				if childTag.List[i].Value != want {
					t.Errorf("child %d = %q, want %q", i, childTag.List[i].Value, want)
				}
			}
		})
	}
}

func TestBuildItemBlock_MembershipBackfill(t *testing.T) {
	org := testOrg("org-1")
	svc, fx := newCatalogFixture(org)
	fx.products.byOrg["org-1"] = []entity.Product{itemProduct("p1", "org-1")}
	fx.menus.memberships["org-1"] = []entity.CustomMenuProduct{
		{CustomMenuID: "menu-1", ProductID: "p1", Seq: 3},
		{CustomMenuID: "menu-2", ProductID: "p1", Seq: 1},
		// Unknown product: processing continues, nothing appended.
		{CustomMenuID: "menu-1", ProductID: "ghost", Seq: 9},
	}

	block, err := svc.buildItemBlock(context.Background(), &org, "loc-org-1")
	if err != nil {
		t.Fatalf("buildItemBlock: %v", err)
	}

	got := block.byID["p1"].CategoryIDs
	want := []string{"menu-1:3", "menu-2:1"}
	if len(got) != len(want) {
		t.Fatalf("category_ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category_ids[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildItemBlock_ProcessingOrder(t *testing.T) {
	org := testOrg("org-1")
	first := itemProduct("p1", "org-1")
	first.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := itemProduct("p2", "org-1")
	second.ProductName = "Masala Dosa"
	second.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	svc, fx := newCatalogFixture(org)
	fx.products.byOrg["org-1"] = []entity.Product{first, second}

	block, err := svc.buildItemBlock(context.Background(), &org, "loc-org-1")
	if err != nil {
		t.Fatalf("buildItemBlock: %v", err)
	}
	if len(block.order) != 2 || block.order[0] != "p1" || block.order[1] != "p2" {
		t.Errorf("processing order = %v, want [p1 p2]", block.order)
	}
}
