package db

import (
	"strings"
	"testing"
	"time"
)

func TestCartSubtotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "p1", UnitPrice: 10.50, Quantity: 2},
		{ProductID: "p2", UnitPrice: 4.25, Quantity: 1},
	}}
	if got := cart.Subtotal(); got != 25.25 {
		t.Errorf("Subtotal() = %v, want 25.25", got)
	}
	if got := (Cart{}).Subtotal(); got != 0 {
		t.Errorf("empty cart Subtotal() = %v, want 0", got)
	}
}

func TestOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	got := orderNumber("3f2504e0-4f89-41d3-9a0c-0305e82c3301", now)
	if !strings.HasPrefix(got, "SO-20260829-") {
		t.Errorf("orderNumber = %q, want SO-20260829- prefix", got)
	}
	suffix := strings.TrimPrefix(got, "SO-20260829-")
	if len(suffix) != 8 || suffix != strings.ToUpper(suffix) {
		t.Errorf("orderNumber suffix = %q, want 8 uppercase chars", suffix)
	}
}
