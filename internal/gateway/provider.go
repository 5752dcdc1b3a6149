package gateway

import (
	"context"
	"fmt"

	"github.com/tvmai/merchant-admin/internal/apperr"
	"github.com/tvmai/merchant-admin/internal/config"
)

// Provider yields an authenticated gateway API per request. The session
// layer behind it is a black box to the rest of the panel: it either
// produces a usable client or the request fails with apperr.AuthErr.
type Provider interface {
	Authenticate(ctx context.Context) (API, error)
}

// StaticTokenProvider authorizes every request with the shop's configured
// admin access token.
type StaticTokenProvider struct {
	cfg    config.Shopify
	client *Client
}

var _ Provider = (*StaticTokenProvider)(nil)

func NewStaticTokenProvider(cfg config.Shopify) *StaticTokenProvider {
	return &StaticTokenProvider{
		cfg:    cfg,
		client: NewClient(cfg),
	}
}

func (p *StaticTokenProvider) Authenticate(_ context.Context) (API, error) {
	if p.cfg.ShopDomain == "" || p.cfg.AccessToken == "" {
		return nil, apperr.AuthErr.WrapParent(fmt.Errorf("shop domain or access token not configured"))
	}
	return p.client, nil
}
