package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tvmai/merchant-admin/internal/apperr"
	"github.com/tvmai/merchant-admin/internal/config"
	"github.com/tvmai/merchant-admin/internal/gateway"
	"github.com/tvmai/merchant-admin/internal/model"
	"github.com/tvmai/merchant-admin/internal/review"
)

// ListingPath is where the panel redirects after a successful create.
const ListingPath = "/products"

// CreateOutcome is the terminal state of one pass through the create
// workflow. Exactly one of RedirectTo and UserErrors is set; faults are
// reported through the error return instead.
type CreateOutcome struct {
	RedirectTo string
	UserErrors []model.UserError
}

type CatalogService interface {
	// CreateProduct runs the two-step create workflow: create the product,
	// then set the first variant's price. The two calls are strictly
	// sequential; the second is never issued when the first fails, returns
	// user errors, or the request context is cancelled in between.
	CreateProduct(ctx context.Context, draft model.ProductDraft) (CreateOutcome, error)
	// ListProducts loads one page of products for the listing screen.
	ListProducts(ctx context.Context) ([]model.ProductListItem, error)
}

type catalogService struct {
	provider gateway.Provider
	journal  *review.Journal
	logger   *slog.Logger

	catalog        config.Catalog
	pageSize       int
	compareAtPrice decimal.Decimal
}

func NewCatalogService(
	provider gateway.Provider,
	journal *review.Journal,
	logger *slog.Logger,
	catalogCfg config.Catalog,
	shopifyCfg config.Shopify,
) (CatalogService, error) {
	compareAt := decimal.Zero
	if catalogCfg.CompareAtPrice != "" {
		parsed, err := decimal.NewFromString(catalogCfg.CompareAtPrice)
		if err != nil {
			return nil, fmt.Errorf("parse compare-at price %q: %w", catalogCfg.CompareAtPrice, err)
		}
		compareAt = parsed
	}

	return &catalogService{
		provider:       provider,
		journal:        journal,
		logger:         logger.With(slog.String("service", "catalog")),
		catalog:        catalogCfg,
		pageSize:       shopifyCfg.ListPageSize,
		compareAtPrice: compareAt,
	}, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, draft model.ProductDraft) (CreateOutcome, error) {
	gw, err := s.provider.Authenticate(ctx)
	if err != nil {
		return CreateOutcome{}, fmt.Errorf("authenticate gateway client: %w", err)
	}

	input := gateway.BuildProductCreateInput(draft, s.catalog)

	result, err := gw.CreateProduct(ctx, input)
	if err != nil {
		return CreateOutcome{}, fmt.Errorf("gateway create product: %w", err)
	}

	if len(result.UserErrors) > 0 {
		s.logger.InfoContext(ctx, "product creation rejected by gateway",
			slog.String("title", draft.Title),
			slog.Int("user_errors", len(result.UserErrors)),
		)
		return CreateOutcome{UserErrors: result.UserErrors}, nil
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", result.ProductID),
		slog.String("variant_id", result.FirstVariantID()),
	)

	// The price update depends on the create call's output. A cancelled
	// request at this point still created the product, so it goes to the
	// review queue rather than issuing the second call on a dead context.
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.recordPartialSuccess(ctx, result, draft, fmt.Sprintf("request cancelled before price update: %v", ctxErr))
		return CreateOutcome{}, apperr.PriceUpdateFailedErr.WrapParent(ctxErr)
	}

	update := model.PriceUpdate{
		ProductID:      result.ProductID,
		VariantID:      result.FirstVariantID(),
		Price:          draft.Price,
		CompareAtPrice: s.compareAtPrice,
	}

	userErrs, err := gw.UpdateVariantPrice(ctx, update)
	if err != nil {
		s.recordPartialSuccess(ctx, result, draft, fmt.Sprintf("price update failed: %v", err))
		return CreateOutcome{}, apperr.PriceUpdateFailedErr.WrapParent(err)
	}
	if len(userErrs) > 0 {
		s.recordPartialSuccess(ctx, result, draft, fmt.Sprintf("price update rejected: %s", userErrs[0]))
		return CreateOutcome{}, apperr.PriceUpdateFailedErr.
			WrapParent(fmt.Errorf("price update user error: %s", userErrs[0]))
	}

	return CreateOutcome{RedirectTo: ListingPath}, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.ProductListItem, error) {
	gw, err := s.provider.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate gateway client: %w", err)
	}

	items, err := gw.ListProducts(ctx, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("gateway list products: %w", err)
	}

	return items, nil
}

func (s *catalogService) recordPartialSuccess(ctx context.Context, result model.ProductCreateResult, draft model.ProductDraft, reason string) {
	// Record on a detached context so a cancelled request cannot suppress
	// the review entry's log line.
	s.journal.Record(context.WithoutCancel(ctx), review.Entry{
		ProductID: result.ProductID,
		VariantID: result.FirstVariantID(),
		Title:     draft.Title,
		Reason:    reason,
	})
}
