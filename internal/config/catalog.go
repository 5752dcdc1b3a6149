package config

// Catalog carries the operator-configured sample values stamped onto every
// created product. These used to be literals inside the request builder;
// keeping them here lets the workflow run with varied inputs.
type Catalog struct {
	DefaultTags []string `env:"CATALOG_DEFAULT_TAGS" envDefault:"admin-created,sample" envSeparator:","`

	MetafieldNamespace string `env:"CATALOG_METAFIELD_NAMESPACE" envDefault:"my_field"`
	MetafieldKey       string `env:"CATALOG_METAFIELD_KEY" envDefault:"liner_material"`
	MetafieldType      string `env:"CATALOG_METAFIELD_TYPE" envDefault:"single_line_text_field"`
	MetafieldValue     string `env:"CATALOG_METAFIELD_VALUE" envDefault:"Synthetic Leather"`

	// CompareAtPrice is the fixed compare-at price sent with the follow-up
	// variant price update. Empty disables it.
	CompareAtPrice string `env:"CATALOG_COMPARE_AT_PRICE" envDefault:"99.99"`
}
