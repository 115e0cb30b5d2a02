package services

import (
	"context"
	"log"
	"strconv"

	"github.com/SciSaif/seller-app/entity"
)

// categoryBlock keeps the category map together with its build order so
// cache derivation stays deterministic.
type categoryBlock struct {
	byID  map[string]*entity.CatalogCategory
	order []string
}

// buildCategoryBlock merges the menu-derived and group-derived category
// families. Menu and group ids are expected to come from disjoint id
// spaces; on a collision the menu entry is kept and the conflict logged.
func (s *CatalogService) buildCategoryBlock(ctx context.Context, org *entity.Organization) (*categoryBlock, error) {
	block, err := s.categoriesFromCustomMenus(ctx, org)
	if err != nil {
		return nil, err
	}

	groups, err := s.customizations.GroupsByOrg(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if _, exists := block.byID[group.ID]; exists {
			log.Printf("[CatalogService] category id %s collides between custom menu and customization group, keeping menu entry", group.ID)
			continue
		}
		block.byID[group.ID] = categoryFromGroup(group)
		block.order = append(block.order, group.ID)
	}
	return block, nil
}

func (s *CatalogService) categoriesFromCustomMenus(ctx context.Context, org *entity.Organization) (*categoryBlock, error) {
	menus, err := s.menus.MenusByOrg(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	block := &categoryBlock{byID: map[string]*entity.CatalogCategory{}}
	for _, menu := range menus {
		images, err := s.resolveImages(ctx, menu.Images)
		if err != nil {
			return nil, err
		}

		noParent := ""
		block.byID[menu.ID] = &entity.CatalogCategory{
			ID:               menu.ID,
			ParentCategoryID: &noParent,
			Descriptor: entity.Descriptor{
				Name:      menu.Name,
				ShortDesc: menu.ShortDescription,
				LongDesc:  menu.LongDescription,
				Images:    images,
			},
			Tags: []entity.Tag{
				{
					Code: "type",
					List: []entity.TagEntry{{Code: "type", Value: "custom_menu"}},
				},
				{
					Code: "display",
					List: []entity.TagEntry{{Code: "rank", Value: strconv.Itoa(menu.Seq)}},
				},
			},
		}
		block.order = append(block.order, menu.ID)
	}

	timings, err := s.menus.TimingsByOrg(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	for _, timing := range timings {
		// A timing row pointing at a menu we did not build is benign.
		category, ok := block.byID[timing.CustomMenuID]
		if !ok {
			continue
		}
		category.Tags = append(category.Tags, BuildTimingTags(timing.Timings)...)
	}

	return block, nil
}

func categoryFromGroup(group entity.CustomizationGroup) *entity.CatalogCategory {
	return &entity.CatalogCategory{
		ID:         group.ID,
		Descriptor: entity.Descriptor{Name: group.Name},
		Tags: []entity.Tag{
			{
				Code: "type",
				List: []entity.TagEntry{{Code: "type", Value: "custom_group"}},
			},
			{
				Code: "config",
				List: []entity.TagEntry{
					{Code: "min", Value: strconv.Itoa(group.MinQuantity)},
					{Code: "max", Value: strconv.Itoa(group.MaxQuantity)},
					{Code: "input", Value: group.InputType},
					{Code: "seq", Value: strconv.Itoa(group.Seq)},
				},
			},
		},
	}
}
