package services

import (
	"testing"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

func displayedItems() []models.Item {
	return []models.Item{
		{ID: "ITM00001", Name: "Lekki Duplex"},
		{ID: "ITM00002", Name: "Ikoyi Apartment"},
		{ID: "ITM00003", Name: "Ajah Bungalow"},
	}
}

func TestResolveSelectionOrdinal(t *testing.T) {
	item, ok := ResolveSelection(displayedItems(), "2")
	if !ok {
		t.Fatal("expected a match for ordinal 2")
	}
	if item.ID != "ITM00002" {
		t.Errorf("expected second item, got %s", item.ID)
	}
}

func TestResolveSelectionOrdinalOutOfRange(t *testing.T) {
	if _, ok := ResolveSelection(displayedItems(), "5"); ok {
		t.Fatal("expected no match for ordinal 5 in a list of 3")
	}
	if _, ok := ResolveSelection(displayedItems(), "0"); ok {
		t.Fatal("expected no match for ordinal 0")
	}
}

func TestResolveSelectionNameContainsReference(t *testing.T) {
	item, ok := ResolveSelection(displayedItems(), "ikoyi")
	if !ok {
		t.Fatal("expected a match for 'ikoyi'")
	}
	if item.ID != "ITM00002" {
		t.Errorf("expected Ikoyi Apartment, got %s", item.Name)
	}
}

func TestResolveSelectionReferenceContainsName(t *testing.T) {
	item, ok := ResolveSelection(displayedItems(), "I want the Ajah Bungalow please")
	if !ok {
		t.Fatal("expected a match for a sentence containing the name")
	}
	if item.ID != "ITM00003" {
		t.Errorf("expected Ajah Bungalow, got %s", item.Name)
	}
}

func TestResolveSelectionFirstMatchWins(t *testing.T) {
	items := []models.Item{
		{ID: "A", Name: "Garden Apartment"},
		{ID: "B", Name: "Garden Duplex"},
	}
	item, ok := ResolveSelection(items, "garden")
	if !ok {
		t.Fatal("expected a match for 'garden'")
	}
	if item.ID != "A" {
		t.Errorf("expected first item in display order to win, got %s", item.ID)
	}
}

func TestResolveSelectionNoMatch(t *testing.T) {
	if _, ok := ResolveSelection(displayedItems(), "penthouse"); ok {
		t.Fatal("expected no match for 'penthouse'")
	}
	if _, ok := ResolveSelection(displayedItems(), ""); ok {
		t.Fatal("expected no match for empty reference")
	}
	if _, ok := ResolveSelection(nil, "1"); ok {
		t.Fatal("expected no match against an empty list")
	}
}
