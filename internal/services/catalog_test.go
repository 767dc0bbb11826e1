package services

import (
	"testing"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

func filterFixture() []*models.Item {
	return []*models.Item{
		{ID: "ITM00001", Name: "Lekki 3 Bedroom Duplex", Price: 45_000_000},
		{ID: "ITM00002", Name: "Yaba Studio", Description: "Cosy 1 bedroom starter flat", Price: 8_000_000},
		{ID: "ITM00003", Name: "Ikoyi Penthouse", Description: "5 bedrooms with a sea view", Price: 120_000_000},
		{ID: "ITM00004", Name: "Ajah Bungalow", Description: "3 bedroom family home", Price: 25_000_000},
	}
}

func TestApplyCatalogFiltersMaxPrice(t *testing.T) {
	items := filterFixture()

	shown := ApplyCatalogFilters(items, models.IntentFilters{MaxPrice: 30_000_000})
	if len(shown) != 2 {
		t.Fatalf("expected 2 items under 30m, got %d", len(shown))
	}
	if shown[0].ID != "ITM00002" || shown[1].ID != "ITM00004" {
		t.Errorf("wrong items matched: %s, %s", shown[0].ID, shown[1].ID)
	}

	// Boundary price is included
	shown = ApplyCatalogFilters(items, models.IntentFilters{MaxPrice: 8_000_000})
	if len(shown) != 1 || shown[0].ID != "ITM00002" {
		t.Errorf("expected the 8m flat at the boundary, got %d items", len(shown))
	}
}

func TestApplyCatalogFiltersBedrooms(t *testing.T) {
	items := filterFixture()

	shown := ApplyCatalogFilters(items, models.IntentFilters{Bedrooms: 3})
	if len(shown) != 2 {
		t.Fatalf("expected 2 three-bedroom matches, got %d", len(shown))
	}

	// Bedroom count matches name or description, case-insensitively
	shown = ApplyCatalogFilters(items, models.IntentFilters{Bedrooms: 5})
	if len(shown) != 1 || shown[0].ID != "ITM00003" {
		t.Errorf("expected the penthouse via its description, got %d items", len(shown))
	}

	shown = ApplyCatalogFilters(items, models.IntentFilters{Bedrooms: 7})
	if len(shown) != 0 {
		t.Errorf("expected no 7-bedroom matches, got %d", len(shown))
	}
}

func TestApplyCatalogFiltersCombined(t *testing.T) {
	items := filterFixture()

	shown := ApplyCatalogFilters(items, models.IntentFilters{MaxPrice: 30_000_000, Bedrooms: 3})
	if len(shown) != 1 || shown[0].ID != "ITM00004" {
		t.Fatalf("expected only the Ajah bungalow, got %d items", len(shown))
	}
}

func TestApplyCatalogFiltersNoFiltersKeepsAll(t *testing.T) {
	items := filterFixture()

	shown := ApplyCatalogFilters(items, models.IntentFilters{})
	if len(shown) != len(items) {
		t.Fatalf("expected all %d items untouched, got %d", len(items), len(shown))
	}
}
