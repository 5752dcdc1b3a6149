package gateway_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tvmai/merchant-admin/internal/config"
	"github.com/tvmai/merchant-admin/internal/gateway"
	"github.com/tvmai/merchant-admin/internal/model"
)

func sampleCatalogConfig() config.Catalog {
	return config.Catalog{
		DefaultTags:        []string{"admin-created", "sample"},
		MetafieldNamespace: "my_field",
		MetafieldKey:       "liner_material",
		MetafieldType:      "single_line_text_field",
		MetafieldValue:     "Synthetic Leather",
		CompareAtPrice:     "99.99",
	}
}

func sampleDraft() model.ProductDraft {
	return model.ProductDraft{
		Title:           "Boot",
		DescriptionHTML: "<p>Sturdy</p>",
		Vendor:          "Acme",
		ProductType:     "Footwear",
		Price:           decimal.RequireFromString("49.99"),
		Status:          model.ProductStatusActive,
		Tags:            []string{"boots"},
	}
}

func TestBuildProductCreateInput(t *testing.T) {
	t.Run("Should map every draft field", func(t *testing.T) {
		input := gateway.BuildProductCreateInput(sampleDraft(), sampleCatalogConfig())

		assert.Equal(t, "Boot", input.Title)
		assert.Equal(t, "<p>Sturdy</p>", input.DescriptionHTML)
		assert.Equal(t, "Acme", input.Vendor)
		assert.Equal(t, "Footwear", input.ProductType)
		assert.Equal(t, "ACTIVE", input.Status)
		assert.Equal(t, []string{"boots", "admin-created", "sample"}, input.Tags)
	})

	t.Run("Should derive the SEO fields from the title", func(t *testing.T) {
		input := gateway.BuildProductCreateInput(sampleDraft(), sampleCatalogConfig())

		assert.Equal(t, "SEO: Boot", input.SEO.Title)
		assert.Equal(t, "SEO Description for Boot", input.SEO.Description)
	})

	t.Run("Should stamp the configured sample metafield", func(t *testing.T) {
		input := gateway.BuildProductCreateInput(sampleDraft(), sampleCatalogConfig())

		assert.Equal(t, []gateway.MetafieldInput{{
			Namespace: "my_field",
			Key:       "liner_material",
			Type:      "single_line_text_field",
			Value:     "Synthetic Leather",
		}}, input.Metafields)
	})

	t.Run("Should omit the metafield when not configured", func(t *testing.T) {
		cfg := sampleCatalogConfig()
		cfg.MetafieldNamespace = ""

		input := gateway.BuildProductCreateInput(sampleDraft(), cfg)

		assert.Empty(t, input.Metafields)
	})

	t.Run("Should declare options only when the draft carries them", func(t *testing.T) {
		input := gateway.BuildProductCreateInput(sampleDraft(), sampleCatalogConfig())
		assert.Empty(t, input.ProductOptions)

		draft := sampleDraft()
		draft.Options = []model.ProductOption{
			{Name: "Size", Values: []string{"S", "M", "L"}},
		}
		input = gateway.BuildProductCreateInput(draft, sampleCatalogConfig())

		assert.Equal(t, []gateway.OptionCreateInput{{
			Name: "Size",
			Values: []gateway.OptionValueInput{
				{Name: "S"}, {Name: "M"}, {Name: "L"},
			},
		}}, input.ProductOptions)
	})

	t.Run("Should be deterministic for a given draft", func(t *testing.T) {
		a := gateway.BuildProductCreateInput(sampleDraft(), sampleCatalogConfig())
		b := gateway.BuildProductCreateInput(sampleDraft(), sampleCatalogConfig())

		assert.Equal(t, a, b)
	})

	t.Run("Should not mutate the draft's tags", func(t *testing.T) {
		draft := sampleDraft()
		gateway.BuildProductCreateInput(draft, sampleCatalogConfig())

		assert.Equal(t, []string{"boots"}, draft.Tags)
	})
}
