package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/storage"
)

// DefaultLocationID is the legacy synthetic location id. Organizations
// whose store location record carries no id of its own still project
// under this key so existing catalog consumers keep a stable reference.
const DefaultLocationID = "65e887ed749479b3aea2e7c2"

// Fixed values required by the catalog schema.
const (
	catalogCategory  = "F&B"
	providerTTL      = "P1D"
	timeToShip       = "PT45M"
	scheduleFreq     = "PT4H"
	scheduleStart    = "0001"
	scheduleEnd      = "2359"
	weekAllDays      = "1,2,3,4,5,6,7"
	priceCurrencyINR = "INR"
)

// The catalog projection reads each aggregate through a narrow source
// interface; the gorm repositories satisfy them.
type OrganizationSource interface {
	FindAll(ctx context.Context) ([]entity.Organization, error)
	FindByID(ctx context.Context, id string) (*entity.Organization, error)
}

type ProductSource interface {
	FindPublishedByOrg(ctx context.Context, orgID string) ([]entity.Product, error)
}

type CustomizationSource interface {
	GroupsByOrg(ctx context.Context, orgID string) ([]entity.CustomizationGroup, error)
	MappingsByCustomization(ctx context.Context, productID string) ([]entity.CustomizationGroupMapping, error)
}

type CustomMenuSource interface {
	MenusByOrg(ctx context.Context, orgID string) ([]entity.CustomMenu, error)
	TimingsByOrg(ctx context.Context, orgID string) ([]entity.CustomMenuTiming, error)
	ProductsByOrg(ctx context.Context, orgID string) ([]entity.CustomMenuProduct, error)
}

// CatalogService assembles ONDC Provider documents from the seller
// aggregates. The output is rebuilt from scratch on every call.
type CatalogService struct {
	orgs           OrganizationSource
	products       ProductSource
	customizations CustomizationSource
	menus          CustomMenuSource
	assets         storage.AssetResolver
}

func NewCatalogService(
	orgs OrganizationSource,
	products ProductSource,
	customizations CustomizationSource,
	menus CustomMenuSource,
	assets storage.AssetResolver,
) *CatalogService {
	return &CatalogService{
		orgs:           orgs,
		products:       products,
		customizations: customizations,
		menus:          menus,
		assets:         assets,
	}
}

// BuildProviders projects one organization (orgID set) or every
// organization (orgID empty) into Provider documents. Organizations
// without a resolved store location are skipped; any lookup or
// resolution failure aborts the whole batch.
func (s *CatalogService) BuildProviders(ctx context.Context, orgID string) ([]entity.Provider, error) {
	var orgs []entity.Organization
	if orgID != "" {
		org, err := s.orgs.FindByID(ctx, orgID)
		if err != nil {
			return nil, err
		}
		orgs = []entity.Organization{*org}
	} else {
		all, err := s.orgs.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		orgs = all
	}

	providers := []entity.Provider{}
	for i := range orgs {
		org := &orgs[i]
		store := org.StoreDetails
		if store == nil || store.Location == nil {
			continue
		}

		provider, err := s.buildProvider(ctx, org)
		if err != nil {
			return nil, fmt.Errorf("project organization %s: %w", org.ID, err)
		}
		providers = append(providers, *provider)
	}
	return providers, nil
}

func (s *CatalogService) buildProvider(ctx context.Context, org *entity.Organization) (*entity.Provider, error) {
	details, err := s.buildProviderDetails(ctx, org)
	if err != nil {
		return nil, err
	}

	locationID := resolveLocationID(org)

	categories, err := s.buildCategoryBlock(ctx, org)
	if err != nil {
		return nil, err
	}
	items, err := s.buildItemBlock(ctx, org, locationID)
	if err != nil {
		return nil, err
	}

	label := "enable"
	if !org.IsEnabled {
		label = "disable"
	}

	provider := &entity.Provider{
		ProviderID:         org.ID,
		OnNetworkLogistics: true,
		TTL:                providerTTL,
		Time:               entity.ProviderTime{Label: label},
		Details:            *details,
		Locations: map[string]entity.ProviderLocation{
			locationID: buildLocationBlock(org, locationID),
		},
		Fulfillments: buildFulfillmentBlock(org),
		Categories:   categories.byID,
		Items:        items.byID,
		Offers:       map[string]any{},
		Tags:         buildProviderTags(org, locationID),
	}

	provider.ItemNameCache = []string{}
	for _, id := range items.order {
		if item := items.byID[id]; !item.Related {
			provider.ItemNameCache = append(provider.ItemNameCache, item.Descriptor.Name)
		}
	}

	provider.CategoryNameCache = []string{}
	for _, id := range categories.order {
		if category := categories.byID[id]; isMenuCategory(category) {
			provider.CategoryNameCache = append(provider.CategoryNameCache, category.Descriptor.Name)
		}
	}

	provider.FulfillmentTypeCache = []string{}
	for _, option := range org.StoreDetails.Fulfillments {
		provider.FulfillmentTypeCache = append(provider.FulfillmentTypeCache, option.Type)
	}

	return provider, nil
}

func (s *CatalogService) buildProviderDetails(ctx context.Context, org *entity.Organization) (*entity.ProviderDetails, error) {
	logo, err := s.resolveOptional(ctx, org.StoreDetails.Logo)
	if err != nil {
		return nil, err
	}
	return &entity.ProviderDetails{
		Descriptor: entity.Descriptor{
			Name:      org.Name,
			Symbol:    logo,
			ShortDesc: org.Name,
			LongDesc:  org.Name,
			Images:    []string{logo},
		},
		FSSAILicenseNo: org.FSSAI,
	}, nil
}

func buildLocationBlock(org *entity.Organization, locationID string) entity.ProviderLocation {
	store := org.StoreDetails
	yesterday := time.Now().AddDate(0, 0, -1).UTC()

	status := ""
	var holidays []string
	if store.StoreTiming != nil {
		status = store.StoreTiming.Status
		holidays = store.StoreTiming.Holidays
	}

	return entity.ProviderLocation{
		ID:  locationID,
		GPS: fmt.Sprintf("%s,%s", store.Location.Lat, store.Location.Long),
		Time: entity.LocationTime{
			Label:     entity.StoreStatusLabel(status),
			Timestamp: yesterday.Format(time.RFC3339),
			Days:      weekAllDays,
			Schedule: entity.LocationSchedule{
				Holidays:  holidays,
				Frequency: scheduleFreq,
				Times:     []string{scheduleStart, scheduleEnd},
			},
			Range: entity.TimeRange{Start: scheduleStart, End: scheduleEnd},
		},
		Address: entity.LocationAddress{
			Locality: store.Address.Locality,
			Street:   store.Address.Building,
			City:     store.Address.City,
			AreaCode: store.Address.AreaCode,
			State:    store.Address.State,
		},
		Contact: entity.PhoneContact{Phone: store.SupportDetails.Mobile},
	}
}

func buildFulfillmentBlock(org *entity.Organization) map[string]entity.ProviderFulfillment {
	block := map[string]entity.ProviderFulfillment{}
	for _, option := range org.StoreDetails.Fulfillments {
		block[option.ID] = entity.ProviderFulfillment{
			ID:      option.ID,
			Type:    option.Type,
			Contact: option.Contact,
		}
	}
	return block
}

func buildProviderTags(org *entity.Organization, locationID string) []entity.Tag {
	store := org.StoreDetails

	var tags []entity.Tag
	if store.StoreTiming != nil {
		tags = BuildTimingTags(store.StoreTiming.Enabled)
	}

	tags = append(tags, entity.Tag{
		Code: "serviceability",
		List: []entity.TagEntry{
			{Code: "location", Value: locationID},
			{Code: "category", Value: catalogCategory},
			{Code: "type", Value: "10"},
			{Code: "val", Value: store.Radius.Value},
			{Code: "unit", Value: store.Radius.Unit},
		},
	})
	return tags
}

// resolveLocationID prefers the organization's own store location id and
// falls back to the legacy synthetic id for rows that predate per-store
// location records.
func resolveLocationID(org *entity.Organization) string {
	if org.StoreDetails != nil && org.StoreDetails.Location != nil && org.StoreDetails.Location.ID != "" {
		return org.StoreDetails.Location.ID
	}
	return DefaultLocationID
}

func isMenuCategory(category *entity.CatalogCategory) bool {
	if len(category.Tags) == 0 || len(category.Tags[0].List) == 0 {
		return false
	}
	return category.Tags[0].List[0].Value == "custom_menu"
}

// resolveOptional resolves an asset path, degrading a missing path to an
// empty URL. Transport failures still propagate.
func (s *CatalogService) resolveOptional(ctx context.Context, path string) (string, error) {
	url, err := s.assets.Resolve(ctx, path)
	if apperr.IsNotFound(err) {
		log.Printf("[CatalogService] no asset at %q, leaving URL empty", path)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

// resolveImages resolves a whole image list concurrently, preserving
// input order so the first image stays the entity's primary symbol.
func (s *CatalogService) resolveImages(ctx context.Context, paths []string) ([]string, error) {
	urls := make([]string, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			url, err := s.assets.Resolve(gctx, path)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
