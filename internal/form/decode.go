package form

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tvmai/merchant-admin/internal/apperr"
	"github.com/tvmai/merchant-admin/internal/model"
	"github.com/tvmai/merchant-admin/pkg/validator"
)

// FieldError names a single rejected form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every rejected field of one submission.
// It unwraps to apperr.ValidationErr.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("invalid form submission: %s", strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return apperr.ValidationErr
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// productForm mirrors the fields of the product creation form. Field names
// follow the form's input names so validation errors point at the right
// widget.
type productForm struct {
	Title       string              `validate:"required"`
	Description string              ``
	Vendor      string              ``
	ProductType string              ``
	Price       string              `validate:"required"`
	Inventory   string              ``
	Status      model.ProductStatus `validate:"enum"`
}

// formFieldNames maps struct fields back to form input names.
var formFieldNames = map[string]string{
	"Title":       "title",
	"Description": "description",
	"Vendor":      "vendor",
	"ProductType": "productType",
	"Price":       "price",
	"Inventory":   "inventory",
	"Status":      "status",
}

// Decoder turns a submitted key/value form payload into a ProductDraft.
type Decoder struct {
	validator validator.Validator
}

func NewDecoder(v validator.Validator) *Decoder {
	return &Decoder{validator: v}
}

// DecodeProductForm extracts the product creation fields from the given
// form values and returns a validated ProductDraft. Required: title
// (non-empty) and price (non-negative decimal). Optional fields default to
// their zero value; status defaults to DRAFT. No side effects.
func (d *Decoder) DecodeProductForm(values url.Values) (model.ProductDraft, error) {
	f := productForm{
		Title:       strings.TrimSpace(values.Get("title")),
		Description: values.Get("description"),
		Vendor:      values.Get("vendor"),
		ProductType: values.Get("productType"),
		Price:       strings.TrimSpace(values.Get("price")),
		Inventory:   strings.TrimSpace(values.Get("inventory")),
		Status:      model.ProductStatus(values.Get("status")),
	}
	if f.Status == "" {
		f.Status = model.ProductStatusDraft
	}

	var fieldErrs []FieldError
	if err := d.validator.Validate(f); err != nil {
		var ves govalidator.ValidationErrors
		if !errors.As(err, &ves) {
			return model.ProductDraft{}, fmt.Errorf("validate product form: %w", err)
		}
		for _, fe := range ves {
			fieldErrs = append(fieldErrs, FieldError{
				Field:   formFieldName(fe.StructField()),
				Message: validator.ValidationErrorMessage(fe),
			})
		}
	}

	price := decimal.Zero
	if f.Price != "" {
		parsed, err := decimal.NewFromString(f.Price)
		switch {
		case err != nil:
			fieldErrs = append(fieldErrs, FieldError{Field: "price", Message: "must be a number"})
		case parsed.IsNegative():
			fieldErrs = append(fieldErrs, FieldError{Field: "price", Message: "must not be negative"})
		default:
			price = parsed
		}
	}

	inventory := 0
	if f.Inventory != "" {
		parsed, err := strconv.Atoi(f.Inventory)
		switch {
		case err != nil:
			fieldErrs = append(fieldErrs, FieldError{Field: "inventory", Message: "must be a whole number"})
		case parsed < 0:
			fieldErrs = append(fieldErrs, FieldError{Field: "inventory", Message: "must not be negative"})
		default:
			inventory = parsed
		}
	}

	if len(fieldErrs) > 0 {
		return model.ProductDraft{}, &ValidationError{Fields: fieldErrs}
	}

	return model.ProductDraft{
		Title:             f.Title,
		DescriptionHTML:   f.Description,
		Vendor:            f.Vendor,
		ProductType:       f.ProductType,
		Price:             price,
		InventoryQuantity: inventory,
		Status:            f.Status,
	}, nil
}

func formFieldName(structField string) string {
	if name, ok := formFieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}
