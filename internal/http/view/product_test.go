package view_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvmai/merchant-admin/internal/http/view"
	"github.com/tvmai/merchant-admin/internal/model"
)

func TestFormatPrice(t *testing.T) {
	t.Run("Should prefix known currencies with their symbol", func(t *testing.T) {
		assert.Equal(t, "$19.50", view.FormatPrice("USD", decimal.RequireFromString("19.5")))
		assert.Equal(t, "€5.00", view.FormatPrice("EUR", decimal.RequireFromString("5")))
		assert.Equal(t, "£120.99", view.FormatPrice("GBP", decimal.RequireFromString("120.99")))
	})

	t.Run("Should fall back to amount plus code for other currencies", func(t *testing.T) {
		assert.Equal(t, "19.50 CAD", view.FormatPrice("CAD", decimal.RequireFromString("19.5")))
	})
}

func TestSummarizeDescription(t *testing.T) {
	t.Run("Should truncate long descriptions to a fixed prefix", func(t *testing.T) {
		long := strings.Repeat("leather boot ", 5)
		assert.Equal(t, long[:20], view.SummarizeDescription(long))
	})

	t.Run("Should keep short descriptions intact", func(t *testing.T) {
		assert.Equal(t, "Sturdy boot", view.SummarizeDescription("Sturdy boot"))
	})

	t.Run("Should substitute a placeholder for an empty description", func(t *testing.T) {
		assert.Equal(t, "No description avail", view.SummarizeDescription(""))
	})

	t.Run("Should truncate on rune boundaries", func(t *testing.T) {
		description := strings.Repeat("ü", 30)
		assert.Equal(t, strings.Repeat("ü", 20), view.SummarizeDescription(description))
	})
}

func TestNewProductRows(t *testing.T) {
	t.Run("Should shape listing items into table rows", func(t *testing.T) {
		rows := view.NewProductRows([]model.ProductListItem{
			{
				Title:          "Boot",
				Description:    "Sturdy leather boot for all seasons",
				PriceAmount:    decimal.RequireFromString("19.5"),
				CurrencyCode:   "USD",
				ImageURL:       "https://cdn/boot.png",
				ImageAltText:   "A boot",
				Status:         model.ProductStatusActive,
				TotalInventory: 12,
			},
			{
				Title:  "Sandal",
				Status: model.ProductStatusDraft,
			},
		})
		require.Len(t, rows, 2)

		boot := rows[0]
		assert.Equal(t, "$19.50", boot.Price)
		assert.Equal(t, "Sturdy leather boot ", boot.DescriptionSummary)
		assert.Equal(t, "ACTIVE", boot.Status)
		assert.Equal(t, "success", boot.StatusBadge)
		assert.Equal(t, "A boot", boot.ImageAlt)
		assert.Equal(t, 12, boot.Inventory)

		sandal := rows[1]
		assert.Equal(t, "attention", sandal.StatusBadge)
		assert.Equal(t, "Sandal", sandal.ImageAlt, "alt text falls back to the title")
	})
}

func TestNewProductFormPage(t *testing.T) {
	t.Run("Should default the empty form to draft status", func(t *testing.T) {
		page := view.NewProductFormPage(nil, nil)

		assert.Equal(t, "Add New Product", page.Title)
		assert.Empty(t, page.Errors)
		assert.Equal(t, "DRAFT", page.Values["status"])
		assert.Equal(t, "", page.Values["title"])
	})

	t.Run("Should echo the submitted values next to the errors", func(t *testing.T) {
		submitted := url.Values{}
		submitted.Set("title", "Boot")
		submitted.Set("price", "-1")
		submitted.Set("status", "ACTIVE")

		page := view.NewProductFormPage(submitted, []string{"price: must not be negative"})

		assert.Equal(t, []string{"price: must not be negative"}, page.Errors)
		assert.Equal(t, "Boot", page.Values["title"])
		assert.Equal(t, "-1", page.Values["price"])
		assert.Equal(t, "ACTIVE", page.Values["status"])
	})
}
