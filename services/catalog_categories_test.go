package services

import (
	"context"
	"testing"

	"github.com/SciSaif/seller-app/entity"
)

func TestBuildCategoryBlock_MergesMenusAndGroups(t *testing.T) {
	org := testOrg("org-1")
	svc, fx := newCatalogFixture(org)
	fx.menus.menus["org-1"] = []entity.CustomMenu{
		{
			ID:               "menu-1",
			OrganizationID:   "org-1",
			Name:             "Breakfast",
			ShortDescription: "Morning specials",
			LongDescription:  "Served until noon",
			Images:           []string{"menus/breakfast.png"},
			Seq:              2,
		},
	}
	fx.customizations.groups["org-1"] = []entity.CustomizationGroup{
		{ID: "grp-1", OrganizationID: "org-1", Name: "Toppings", MinQuantity: 0, MaxQuantity: 3, InputType: "select", Seq: 1},
	}

	block, err := svc.buildCategoryBlock(context.Background(), &org)
	if err != nil {
		t.Fatalf("buildCategoryBlock: %v", err)
	}
	if len(block.byID) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(block.byID))
	}

	menu := block.byID["menu-1"]
	if menu == nil {
		t.Fatal("menu category missing")
	}
	if menu.ParentCategoryID == nil || *menu.ParentCategoryID != "" {
		t.Error("menu categories must carry an empty parent_category_id")
	}
	if menu.Tags[0].List[0].Value != "custom_menu" {
		t.Errorf("menu type tag = %+v", menu.Tags[0])
	}
	if menu.Tags[1].Code != "display" || menu.Tags[1].List[0].Value != "2" {
		t.Errorf("display rank tag = %+v, want rank 2", menu.Tags[1])
	}
	if len(menu.Descriptor.Images) != 1 || menu.Descriptor.Images[0] != "https://assets.example.com/menus/breakfast.png" {
		t.Errorf("menu images = %v", menu.Descriptor.Images)
	}

	group := block.byID["grp-1"]
	if group == nil {
		t.Fatal("group category missing")
	}
	if group.ParentCategoryID != nil {
		t.Error("group categories must omit parent_category_id")
	}
	if group.Tags[0].List[0].Value != "custom_group" {
		t.Errorf("group type tag = %+v", group.Tags[0])
	}
	config := group.Tags[1]
	if config.Code != "config" || len(config.List) != 4 {
		t.Fatalf("config tag = %+v", config)
	}
	wantConfig := []entity.TagEntry{
		{Code: "min", Value: "0"},
		{Code: "max", Value: "3"},
		{Code: "input", Value: "select"},
		{Code: "seq", Value: "1"},
	}
	for i, want := range wantConfig {
		if config.List[i] != want {
			t.Errorf("config[%d] = %+v, want %+v", i, config.List[i], want)
		}
	}

	if len(block.order) != 2 || block.order[0] != "menu-1" || block.order[1] != "grp-1" {
		t.Errorf("category order = %v", block.order)
	}
}

func TestBuildCategoryBlock_AppendsMenuTimings(t *testing.T) {
	org := testOrg("org-1")
	svc, fx := newCatalogFixture(org)
	fx.menus.menus["org-1"] = []entity.CustomMenu{
		{ID: "menu-1", OrganizationID: "org-1", Name: "Breakfast", Seq: 1},
	}
	fx.menus.timings["org-1"] = []entity.CustomMenuTiming{
		{
			CustomMenuID: "menu-1",
			Timings: []entity.TimingEntry{
				{DaysRange: entity.DayRange{From: 1, To: 5}, Timings: []entity.TimeWindow{{From: "08:00", To: "11:30"}}},
			},
		},
		// Timing for a menu that was never built: benign no-op.
		{
			CustomMenuID: "ghost-menu",
			Timings: []entity.TimingEntry{
				{DaysRange: entity.DayRange{From: 1, To: 7}, Timings: []entity.TimeWindow{{From: "00:00", To: "23:59"}}},
			},
		},
	}

	block, err := svc.buildCategoryBlock(context.Background(), &org)
	if err != nil {
		t.Fatalf("buildCategoryBlock: %v", err)
	}
	if len(block.byID) != 1 {
		t.Fatalf("expected 1 category, got %d", len(block.byID))
	}

	tags := block.byID["menu-1"].Tags
	// type + display + one timing tag
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d: %+v", len(tags), tags)
	}
	timing := tags[2]
	if timing.Code != "timing" {
		t.Fatalf("third tag code = %q, want timing", timing.Code)
	}
	if timing.List[2].Value != "0800" || timing.List[3].Value != "1130" {
		t.Errorf("timing values = %+v", timing.List)
	}
}

func TestBuildCategoryBlock_CollisionKeepsMenuEntry(t *testing.T) {
	org := testOrg("org-1")
	svc, fx := newCatalogFixture(org)
	fx.menus.menus["org-1"] = []entity.CustomMenu{
		{ID: "shared-id", OrganizationID: "org-1", Name: "Breakfast", Seq: 1},
	}
	fx.customizations.groups["org-1"] = []entity.CustomizationGroup{
		{ID: "shared-id", OrganizationID: "org-1", Name: "Toppings"},
	}

	block, err := svc.buildCategoryBlock(context.Background(), &org)
	if err != nil {
		t.Fatalf("buildCategoryBlock: %v", err)
	}
	if len(block.byID) != 1 || len(block.order) != 1 {
		t.Fatalf("expected a single category after collision, got %d", len(block.byID))
	}
	if got := block.byID["shared-id"].Descriptor.Name; got != "Breakfast" {
		t.Errorf("collision winner = %q, want the menu entry", got)
	}
}
