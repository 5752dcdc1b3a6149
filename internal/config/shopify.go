package config

import "time"

type Shopify struct {
	ShopDomain  string `env:"SHOPIFY_SHOP_DOMAIN,required"`
	AccessToken string `env:"SHOPIFY_ACCESS_TOKEN,required"`
	APIVersion  string `env:"SHOPIFY_API_VERSION" envDefault:"2024-10"`

	// CallTimeout bounds every single gateway call. The create workflow
	// issues two dependent calls, each bounded separately.
	CallTimeout time.Duration `env:"SHOPIFY_CALL_TIMEOUT" envDefault:"10s"`

	ListPageSize int `env:"SHOPIFY_LIST_PAGE_SIZE" envDefault:"50"`
}
