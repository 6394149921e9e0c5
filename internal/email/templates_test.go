package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int
		want  string
	}{
		{"typical price", 12999, "$129.99"},
		{"whole dollars", 5000, "$50.00"},
		{"under a dollar", 99, "$0.99"},
		{"zero", 0, "$0.00"},
		{"single cent", 1, "$0.01"},
		{"negative", -2499, "-$24.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCents(tt.cents))
		})
	}
}

func TestBuildOrderConfirmationBody(t *testing.T) {
	items := []OrderItem{
		{ProductID: "1", Title: "Modern Slim Fit Blazer", Quantity: 2, Price: 12999},
		{ProductID: "2", Title: "Silk Scarf", Quantity: 1, Price: 5999},
	}

	body := BuildOrderConfirmationBody("order-123", 2*12999+5999, items)

	assert.Contains(t, body, "order-123")
	assert.Contains(t, body, "Modern Slim Fit Blazer")
	assert.Contains(t, body, "Silk Scarf")
	assert.Contains(t, body, "$129.99")
	assert.Contains(t, body, "$259.98")
	assert.Contains(t, body, "Total: $319.97")
}

func TestBuildOrderConfirmationBody_FallsBackToProductID(t *testing.T) {
	items := []OrderItem{{ProductID: "p-42", Quantity: 1, Price: 1000}}

	body := BuildOrderConfirmationBody("order-1", 1000, items)

	assert.Contains(t, body, "p-42")
}
