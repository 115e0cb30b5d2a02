package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
)

// Hand-rolled fakes for the catalog source interfaces.

type fakeOrgSource struct {
	orgs []entity.Organization
}

func (f *fakeOrgSource) FindAll(ctx context.Context) ([]entity.Organization, error) {
	return f.orgs, nil
}

func (f *fakeOrgSource) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	for i := range f.orgs {
		if f.orgs[i].ID == id {
			org := f.orgs[i]
			return &org, nil
		}
	}
	return nil, fmt.Errorf("organization %s: %w", id, apperr.ErrNoRecordFound)
}

type fakeProductSource struct {
	byOrg map[string][]entity.Product
	err   error
}

func (f *fakeProductSource) FindPublishedByOrg(ctx context.Context, orgID string) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byOrg[orgID], nil
}

type fakeCustomizationSource struct {
	groups   map[string][]entity.CustomizationGroup
	mappings map[string][]entity.CustomizationGroupMapping
}

func (f *fakeCustomizationSource) GroupsByOrg(ctx context.Context, orgID string) ([]entity.CustomizationGroup, error) {
	return f.groups[orgID], nil
}

func (f *fakeCustomizationSource) MappingsByCustomization(ctx context.Context, productID string) ([]entity.CustomizationGroupMapping, error) {
	return f.mappings[productID], nil
}

type fakeMenuSource struct {
	menus       map[string][]entity.CustomMenu
	timings     map[string][]entity.CustomMenuTiming
	memberships map[string][]entity.CustomMenuProduct
}

func (f *fakeMenuSource) MenusByOrg(ctx context.Context, orgID string) ([]entity.CustomMenu, error) {
	return f.menus[orgID], nil
}

func (f *fakeMenuSource) TimingsByOrg(ctx context.Context, orgID string) ([]entity.CustomMenuTiming, error) {
	return f.timings[orgID], nil
}

func (f *fakeMenuSource) ProductsByOrg(ctx context.Context, orgID string) ([]entity.CustomMenuProduct, error) {
	return f.memberships[orgID], nil
}

// fakeResolver prefixes paths with a test host; empty paths fail like
// the real resolver, failOn simulates a transport error.
type fakeResolver struct {
	failOn string
}

func (f *fakeResolver) Resolve(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("resolve asset: empty path: %w", apperr.ErrNoRecordFound)
	}
	if f.failOn != "" && path == f.failOn {
		return "", errors.New("storage unavailable")
	}
	return "https://assets.example.com/" + path, nil
}

type catalogFixture struct {
	orgs           *fakeOrgSource
	products       *fakeProductSource
	customizations *fakeCustomizationSource
	menus          *fakeMenuSource
	resolver       *fakeResolver
}

func newCatalogFixture(orgs ...entity.Organization) (*CatalogService, *catalogFixture) {
	fx := &catalogFixture{
		orgs:     &fakeOrgSource{orgs: orgs},
		products: &fakeProductSource{byOrg: map[string][]entity.Product{}},
		customizations: &fakeCustomizationSource{
			groups:   map[string][]entity.CustomizationGroup{},
			mappings: map[string][]entity.CustomizationGroupMapping{},
		},
		menus: &fakeMenuSource{
			menus:       map[string][]entity.CustomMenu{},
			timings:     map[string][]entity.CustomMenuTiming{},
			memberships: map[string][]entity.CustomMenuProduct{},
		},
		resolver: &fakeResolver{},
	}
	svc := NewCatalogService(fx.orgs, fx.products, fx.customizations, fx.menus, fx.resolver)
	return svc, fx
}

func testOrg(id string) entity.Organization {
	return entity.Organization{
		ID:            id,
		Name:          "Spice Villa",
		FSSAI:         "12345678901234",
		ContactEmail:  "owner@spicevilla.in",
		ContactMobile: "9999999999",
		IsEnabled:     true,
		StoreDetails: &entity.StoreDetails{
			Name: "Spice Villa Koramangala",
			Logo: "logos/spice-villa.png",
			Location: &entity.StoreLocation{
				ID:   "loc-" + id,
				Lat:  "12.9352",
				Long: "77.6245",
			},
			Address: entity.StoreAddress{
				Building: "80 Feet Road",
				Locality: "Koramangala",
				City:     "Bengaluru",
				State:    "Karnataka",
				AreaCode: "560034",
			},
			SupportDetails: entity.SupportDetails{
				Email:  "support@spicevilla.in",
				Mobile: "8888888888",
			},
			Fulfillments: []entity.FulfillmentOption{
				{ID: "F1", Type: "delivery", Contact: entity.FulfillmentContact{Phone: "7777777777", Email: "f1@spicevilla.in"}},
				{ID: "F2", Type: "pickup", Contact: entity.FulfillmentContact{Phone: "6666666666", Email: "f2@spicevilla.in"}},
			},
			StoreTiming: &entity.StoreTiming{
				Status: entity.StoreStatusEnabled,
				Enabled: []entity.TimingEntry{
					{
						DaysRange: entity.DayRange{From: 1, To: 7},
						Timings:   []entity.TimeWindow{{From: "09:30", To: "22:00"}},
					},
				},
				Holidays: []string{"2026-10-02"},
			},
			Radius: entity.ServiceRadius{Value: "5", Unit: "km"},
		},
	}
}
