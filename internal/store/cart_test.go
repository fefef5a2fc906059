package store

import (
	"testing"

	"github.com/storefront-next/internal/models"

	"github.com/shopspring/decimal"
)

func testProduct(id uint, name, price string) *models.Product {
	amount, _ := models.NewMoneyFromString(price)
	return &models.Product{
		ID:    id,
		Name:  name,
		Slug:  name,
		Price: amount,
		Stock: 10,
		Category: models.Category{
			ID:   1,
			Name: "Electronics",
			Slug: "electronics",
		},
	}
}

func TestCartStoreAddItemMergesByProduct(t *testing.T) {
	cart := NewCartStore()

	cart.AddItem(testProduct(1, "p1", "25.00"), 1)
	cart.AddItem(testProduct(1, "p1", "25.00"), 1)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
	if got := cart.Total().String(); got != "50.00" {
		t.Fatalf("unexpected total: %s", got)
	}
}

func TestCartStoreAddItemQuantitySums(t *testing.T) {
	cart := NewCartStore()

	cart.AddItem(testProduct(1, "p1", "10.00"), 2)
	cart.AddItem(testProduct(2, "p2", "5.50"), 1)
	cart.AddItem(testProduct(1, "p1", "10.00"), 3)

	lines := cart.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != 1 || lines[0].Quantity != 5 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if got := cart.Total().String(); got != "55.50" {
		t.Fatalf("unexpected total: %s", got)
	}
}

func TestCartStoreAddItemNormalizesQuantity(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(testProduct(1, "p1", "10.00"), 0)
	lines := cart.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected single line with quantity 1, got %+v", lines)
	}
}

func TestCartStoreRemoveItemIdempotent(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(testProduct(1, "p1", "10.00"), 1)

	cart.RemoveItem(99)
	if cart.Len() != 1 {
		t.Fatalf("remove of unknown id must not change cart")
	}

	cart.RemoveItem(1)
	cart.RemoveItem(1)
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", cart.Len())
	}
}

func TestCartStoreEmptyTotal(t *testing.T) {
	cart := NewCartStore()
	if got := cart.Total().String(); got != "0.00" {
		t.Fatalf("unexpected empty total: %s", got)
	}
	if lines := cart.Lines(); len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}

func TestCartStoreTotalRecomputed(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(testProduct(1, "p1", "19.99"), 1)
	if got := cart.Total().String(); got != "19.99" {
		t.Fatalf("unexpected total: %s", got)
	}

	cart.AddItem(testProduct(1, "p1", "19.99"), 1)
	if !cart.Total().Decimal.Equal(decimal.NewFromFloat(39.98)) {
		t.Fatalf("total not recomputed, got %s", cart.Total().String())
	}

	cart.Clear()
	if got := cart.Total().String(); got != "0.00" {
		t.Fatalf("expected zero total after clear, got %s", got)
	}
}
