package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductStatus is the gateway-side publication status of a product.
type ProductStatus string

const (
	ProductStatusActive ProductStatus = "ACTIVE"
	ProductStatusDraft  ProductStatus = "DRAFT"
)

// Validate implements the enum contract used by the validator.
func (s ProductStatus) Validate() error {
	switch s {
	case ProductStatusActive, ProductStatusDraft:
		return nil
	default:
		return fmt.Errorf("invalid product status: %s", s)
	}
}

// ProductOption declares a product option and its allowed values,
// e.g. {Name: "Size", Values: ["S", "M", "L"]}.
type ProductOption struct {
	Name   string
	Values []string
}

// ProductDraft is the validated, in-memory representation of a product
// that has not been created on the gateway yet. Immutable once built;
// consumed once per request.
type ProductDraft struct {
	Title             string
	DescriptionHTML   string
	Vendor            string
	ProductType       string
	Price             decimal.Decimal
	InventoryQuantity int
	Status            ProductStatus
	Tags              []string
	Options           []ProductOption
}

// UserError is a business-rule violation reported by the gateway
// (e.g. a duplicate handle). Not a fault: it is surfaced to the user
// verbatim together with the echoed form values.
type UserError struct {
	Field   string
	Message string
}

func (e UserError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// JoinFieldPath flattens the gateway's field path (e.g. ["input","title"])
// into the dotted form shown to the user.
func JoinFieldPath(path []string) string {
	return strings.Join(path, ".")
}

// ProductCreateResult is the parsed outcome of the create mutation.
// When UserErrors is non-empty the identifiers must not be trusted.
type ProductCreateResult struct {
	ProductID  string
	VariantIDs []string
	UserErrors []UserError
}

// FirstVariantID returns the id of the product's first variant. The create
// mutation always yields at least one variant; the gateway layer rejects
// responses that violate that.
func (r ProductCreateResult) FirstVariantID() string {
	if len(r.VariantIDs) == 0 {
		return ""
	}
	return r.VariantIDs[0]
}

// PriceUpdate is the input of the follow-up variant price mutation.
// Only constructed from a successful ProductCreateResult.
type PriceUpdate struct {
	ProductID      string
	VariantID      string
	Price          decimal.Decimal
	CompareAtPrice decimal.Decimal
}

// ProductListItem is one row of the listing screen. Read-only, rebuilt on
// every page load from the gateway response.
type ProductListItem struct {
	ID             string
	Title          string
	Handle         string
	Description    string
	PriceAmount    decimal.Decimal
	CurrencyCode   string
	ImageURL       string
	ImageAltText   string
	Status         ProductStatus
	TotalInventory int
}
