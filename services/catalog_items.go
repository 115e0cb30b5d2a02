package services

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/SciSaif/seller-app/entity"
)

// itemBlock keeps the item map together with its processing order
// (products sorted by creation time) for cache derivation.
type itemBlock struct {
	byID  map[string]*entity.CatalogItem
	order []string
}

// buildItemBlock projects the org's published products into catalog
// items, then back-fills custom-menu memberships.
func (s *CatalogService) buildItemBlock(ctx context.Context, org *entity.Organization, locationID string) (*itemBlock, error) {
	products, err := s.products.FindPublishedByOrg(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	block := &itemBlock{byID: map[string]*entity.CatalogItem{}}
	for i := range products {
		product := &products[i]
		item := baseItem(product, locationID)

		switch product.Type {
		case entity.ProductTypeItem:
			if err := s.applyItemDetails(ctx, item, product, org); err != nil {
				return nil, err
			}
		case entity.ProductTypeCustomization:
			if err := s.applyCustomizationDetails(ctx, item, product); err != nil {
				return nil, err
			}
		}

		block.byID[item.ID] = item
		block.order = append(block.order, item.ID)
	}

	memberships, err := s.menus.ProductsByOrg(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	for _, row := range memberships {
		// Membership rows pointing at unknown products are ignored.
		item, ok := block.byID[row.ProductID]
		if !ok || item.ItemCommerce == nil {
			continue
		}
		item.CategoryIDs = append(item.CategoryIDs, fmt.Sprintf("%s:%d", row.CustomMenuID, row.Seq))
	}

	return block, nil
}

// baseItem builds the fields shared by every product type. Products
// that are not directly sellable (customizations) are marked related.
func baseItem(product *entity.Product, locationID string) *entity.CatalogItem {
	vegValue := "no"
	if product.VegNonVeg == "veg" || product.VegNonVeg == "VEG" {
		vegValue = "yes"
	}

	return &entity.CatalogItem{
		ID:         product.ID,
		Descriptor: entity.Descriptor{Name: product.ProductName},
		Quantity: entity.ItemQuantity{
			Unitized: entity.Unitized{
				Measure: entity.UnitizedMeasure{
					Unit:  product.UOM,
					Value: formatDecimal(product.UOMValue),
				},
			},
			Available: entity.CountHolder{Count: strconv.Itoa(product.Quantity)},
			Maximum:   entity.CountHolder{Count: strconv.Itoa(product.MaxAllowedQty)},
		},
		Price: entity.ItemPrice{
			Currency:     priceCurrencyINR,
			Value:        formatDecimal(product.MRP),
			MaximumValue: formatDecimal(product.MRP),
		},
		CategoryID: catalogCategory,
		LocationID: locationID,
		Related:    product.Type != entity.ProductTypeItem,
		Tags: []entity.Tag{
			{
				Code: "type",
				List: []entity.TagEntry{{Code: "type", Value: product.Type}},
			},
			{
				Code: "veg_nonveg",
				List: []entity.TagEntry{{Code: "veg", Value: vegValue}},
			},
		},
	}
}

// applyItemDetails fills the commerce block of a sellable item:
// fulfillment binding, images, descriptor text and the ONDC extension
// flags.
func (s *CatalogService) applyItemDetails(ctx context.Context, item *entity.CatalogItem, product *entity.Product, org *entity.Organization) error {
	// First store fulfillment option with a matching type wins; no
	// match resolves to an empty id, not an error.
	fulfillmentID := ""
	for _, option := range org.StoreDetails.Fulfillments {
		if option.Type == product.FulfillmentOption {
			fulfillmentID = option.ID
			break
		}
	}

	images, err := s.resolveImages(ctx, product.Images)
	if err != nil {
		return err
	}

	if len(images) > 0 {
		item.Descriptor.Symbol = images[0]
	}
	item.Descriptor.ShortDesc = product.Description
	item.Descriptor.LongDesc = product.LongDescription
	item.Descriptor.Images = images

	if product.ProductSubcategory1 != "" {
		item.CategoryID = product.ProductSubcategory1
	}

	item.ItemCommerce = &entity.ItemCommerce{
		CategoryIDs:        []string{},
		FulfillmentID:      fulfillmentID,
		Recommended:        false,
		Returnable:         strconv.FormatBool(product.IsReturnable),
		Cancellable:        strconv.FormatBool(product.IsCancellable),
		ReturnWindow:       product.ReturnWindow,
		SellerPickupReturn: false,
		TimeToShip:         timeToShip,
		AvailableOnCod:     strconv.FormatBool(product.AvailableOnCod),
		ConsumerCare:       fmt.Sprintf("%s,%s,%s", org.Name, org.ContactEmail, org.ContactMobile),
	}

	if product.CustomizationGroupID != "" {
		item.Tags = append(item.Tags, entity.Tag{
			Code: "custom_group",
			List: []entity.TagEntry{{Code: "id", Value: product.CustomizationGroupID}},
		})
	}
	return nil
}

// applyCustomizationDetails attaches the parent/child relation tags of a
// customization product from its group mapping rows.
func (s *CatalogService) applyCustomizationDetails(ctx context.Context, item *entity.CatalogItem, product *entity.Product) error {
	mappings, err := s.customizations.MappingsByCustomization(ctx, product.ID)
	if err != nil {
		return err
	}
	if len(mappings) == 0 {
		return nil
	}

	// Mapping rows are expected to agree on the parent group; the first
	// row wins and disagreement is surfaced in the logs.
	parent := mappings[0]
	for _, mapping := range mappings[1:] {
		if mapping.Parent != parent.Parent {
			log.Printf("[CatalogService] customization %s has mapping rows with differing parents (%s vs %s), using first",
				product.ID, parent.Parent, mapping.Parent)
			break
		}
	}

	defaultValue := "no"
	if parent.Default {
		defaultValue = "yes"
	}
	item.Tags = append(item.Tags, entity.Tag{
		Code: "parent",
		List: []entity.TagEntry{
			{Code: "id", Value: parent.Parent},
			{Code: "default", Value: defaultValue},
		},
	})

	var children []entity.TagEntry
	for _, mapping := range mappings {
		if mapping.Child != "" {
			children = append(children, entity.TagEntry{Code: "id", Value: mapping.Child})
		}
	}
	if len(children) > 0 {
		item.Tags = append(item.Tags, entity.Tag{Code: "child", List: children})
	}
	return nil
}

// formatDecimal renders a numeric field the way the catalog schema
// carries it, without a trailing fraction for whole values.
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
