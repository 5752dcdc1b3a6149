package gateway

import (
	"fmt"

	"github.com/tvmai/merchant-admin/internal/config"
	"github.com/tvmai/merchant-admin/internal/model"
)

// ProductCreateInput is the wire shape of the create mutation's input.
type ProductCreateInput struct {
	Title           string              `json:"title"`
	DescriptionHTML string              `json:"descriptionHtml"`
	Vendor          string              `json:"vendor"`
	ProductType     string              `json:"productType"`
	Status          string              `json:"status"`
	Tags            []string            `json:"tags,omitempty"`
	Metafields      []MetafieldInput    `json:"metafields,omitempty"`
	SEO             SEOInput            `json:"seo"`
	ProductOptions  []OptionCreateInput `json:"productOptions,omitempty"`
}

type SEOInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type MetafieldInput struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

type OptionCreateInput struct {
	Name   string             `json:"name"`
	Values []OptionValueInput `json:"values"`
}

type OptionValueInput struct {
	Name string `json:"name"`
}

// BuildProductCreateInput maps a draft onto the gateway's input structure.
// Pure and deterministic for a given draft and catalog configuration: the
// SEO fields are derived from the title, the sample tags and metafield
// come from configuration, and option declarations are included only when
// the draft carries them.
func BuildProductCreateInput(draft model.ProductDraft, cfg config.Catalog) ProductCreateInput {
	input := ProductCreateInput{
		Title:           draft.Title,
		DescriptionHTML: draft.DescriptionHTML,
		Vendor:          draft.Vendor,
		ProductType:     draft.ProductType,
		Status:          string(draft.Status),
		Tags:            append(append([]string{}, draft.Tags...), cfg.DefaultTags...),
		SEO: SEOInput{
			Title:       fmt.Sprintf("SEO: %s", draft.Title),
			Description: fmt.Sprintf("SEO Description for %s", draft.Title),
		},
	}

	if cfg.MetafieldNamespace != "" && cfg.MetafieldKey != "" {
		input.Metafields = []MetafieldInput{{
			Namespace: cfg.MetafieldNamespace,
			Key:       cfg.MetafieldKey,
			Type:      cfg.MetafieldType,
			Value:     cfg.MetafieldValue,
		}}
	}

	for _, opt := range draft.Options {
		values := make([]OptionValueInput, 0, len(opt.Values))
		for _, v := range opt.Values {
			values = append(values, OptionValueInput{Name: v})
		}
		input.ProductOptions = append(input.ProductOptions, OptionCreateInput{
			Name:   opt.Name,
			Values: values,
		})
	}

	return input
}
