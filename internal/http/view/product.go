package view

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tvmai/merchant-admin/internal/model"
	"github.com/tvmai/merchant-admin/internal/review"
)

// descriptionSummaryLen is the prefix length of the description column on
// the listing screen.
const descriptionSummaryLen = 20

// ProductRow is one rendered row of the products table.
type ProductRow struct {
	Title              string
	DescriptionSummary string
	Price              string
	Status             string
	StatusBadge        string
	Inventory          int
	ImageURL           string
	ImageAlt           string
}

// ProductsPage is the render data of the listing screen.
type ProductsPage struct {
	Title string
	Error string
	Rows  []ProductRow
}

// ProductFormPage is the render data of the creation form. Values holds
// the last-submitted raw field values so a failed submission redraws with
// the user's input intact.
type ProductFormPage struct {
	Title  string
	Errors []string
	Values map[string]string
}

// ReviewRow is one rendered entry of the review screen.
type ReviewRow struct {
	Title     string
	ProductID string
	VariantID string
	Reason    string
	At        string
}

// ReviewPage is the render data of the review screen.
type ReviewPage struct {
	Title   string
	Entries []ReviewRow
}

// ErrorPage is the render data of the generic error screen.
type ErrorPage struct {
	Title   string
	Message string
}

// NewProductRows shapes gateway listing items into table rows.
func NewProductRows(items []model.ProductListItem) []ProductRow {
	rows := make([]ProductRow, 0, len(items))
	for _, item := range items {
		badge := "attention"
		if item.Status == model.ProductStatusActive {
			badge = "success"
		}

		alt := item.ImageAltText
		if alt == "" {
			alt = item.Title
		}

		rows = append(rows, ProductRow{
			Title:              item.Title,
			DescriptionSummary: SummarizeDescription(item.Description),
			Price:              FormatPrice(item.CurrencyCode, item.PriceAmount),
			Status:             string(item.Status),
			StatusBadge:        badge,
			Inventory:          item.TotalInventory,
			ImageURL:           item.ImageURL,
			ImageAlt:           alt,
		})
	}
	return rows
}

// FormatPrice formats an amount using the item's own currency code, e.g.
// "$19.50" for 19.5 USD.
func FormatPrice(currencyCode string, amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	switch currencyCode {
	case "USD":
		return "$" + fixed
	case "EUR":
		return "€" + fixed
	case "GBP":
		return "£" + fixed
	default:
		return fmt.Sprintf("%s %s", fixed, currencyCode)
	}
}

// SummarizeDescription truncates a description to a fixed prefix for the
// table's summary column.
func SummarizeDescription(description string) string {
	if description == "" {
		description = "No description available"
	}
	runes := []rune(description)
	if len(runes) <= descriptionSummaryLen {
		return description
	}
	return string(runes[:descriptionSummaryLen])
}

// NewProductFormPage builds the form page, echoing the given submission.
// A nil submission yields the empty form with status defaulted to DRAFT.
func NewProductFormPage(submitted url.Values, errors []string) ProductFormPage {
	values := map[string]string{
		"title":       "",
		"description": "",
		"vendor":      "",
		"productType": "",
		"price":       "",
		"inventory":   "",
		"status":      string(model.ProductStatusDraft),
	}
	if submitted != nil {
		for field := range values {
			if v := submitted.Get(field); v != "" {
				values[field] = v
			}
		}
	}

	return ProductFormPage{
		Title:  "Add New Product",
		Errors: errors,
		Values: values,
	}
}

// NewReviewPage shapes review journal entries for display.
func NewReviewPage(entries []review.Entry) ReviewPage {
	rows := make([]ReviewRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ReviewRow{
			Title:     e.Title,
			ProductID: e.ProductID,
			VariantID: e.VariantID,
			Reason:    e.Reason,
			At:        e.At.Format(time.RFC3339),
		})
	}
	return ReviewPage{
		Title:   "Needs Review",
		Entries: rows,
	}
}
