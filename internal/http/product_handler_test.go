package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvmai/merchant-admin/internal/apperr"
	"github.com/tvmai/merchant-admin/internal/config"
	"github.com/tvmai/merchant-admin/internal/gateway"
	adminhttp "github.com/tvmai/merchant-admin/internal/http"
	"github.com/tvmai/merchant-admin/internal/model"
	"github.com/tvmai/merchant-admin/internal/review"
	"github.com/tvmai/merchant-admin/internal/service"
)

// fakeAPI scripts the gateway behind a real catalog service so requests
// exercise the full decode, workflow and render path.
type fakeAPI struct {
	createResult model.ProductCreateResult
	createErr    error

	priceUserErrs []model.UserError
	priceErr      error

	listItems []model.ProductListItem
	listErr   error

	createCalls int
	priceCalls  int
}

func (f *fakeAPI) CreateProduct(_ context.Context, _ gateway.ProductCreateInput) (model.ProductCreateResult, error) {
	f.createCalls++
	return f.createResult, f.createErr
}

func (f *fakeAPI) UpdateVariantPrice(_ context.Context, _ model.PriceUpdate) ([]model.UserError, error) {
	f.priceCalls++
	return f.priceUserErrs, f.priceErr
}

func (f *fakeAPI) ListProducts(_ context.Context, _ int) ([]model.ProductListItem, error) {
	return f.listItems, f.listErr
}

type fakeProvider struct {
	api gateway.API
	err error
}

func (p fakeProvider) Authenticate(_ context.Context) (gateway.API, error) {
	return p.api, p.err
}

func newRouter(t *testing.T, provider gateway.Provider) (chi.Router, *review.Journal) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	journal := review.NewJournal(logger)
	catalogSvc, err := service.NewCatalogService(
		provider,
		journal,
		logger,
		config.Catalog{DefaultTags: []string{"admin-created", "sample"}, CompareAtPrice: "99.99"},
		config.Shopify{ListPageSize: 50},
	)
	require.NoError(t, err)

	svc, err := adminhttp.New(config.HTTP{Port: 0}, logger, catalogSvc, journal)
	require.NoError(t, err)

	r := chi.NewRouter()
	svc.RegisterHandlers(r)
	return r, journal
}

func postForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validSubmission() url.Values {
	values := url.Values{}
	values.Set("title", "Boot")
	values.Set("description", "Sturdy leather boot")
	values.Set("price", "49.99")
	values.Set("status", "ACTIVE")
	return values
}

func TestCreateProductHandler(t *testing.T) {
	t.Run("Should run the full workflow and redirect to the listing", func(t *testing.T) {
		api := &fakeAPI{createResult: model.ProductCreateResult{
			ProductID:  "gid://1",
			VariantIDs: []string{"gid://1/v1"},
		}}
		router, journal := newRouter(t, fakeProvider{api: api})

		rec := postForm(router, "/products/new", validSubmission())

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/products", rec.Header().Get("Location"))
		assert.Equal(t, 1, api.createCalls)
		assert.Equal(t, 1, api.priceCalls)
		assert.Empty(t, journal.List())
	})

	t.Run("Should redraw the form with errors and echoed values on invalid input", func(t *testing.T) {
		api := &fakeAPI{}
		router, _ := newRouter(t, fakeProvider{api: api})

		values := url.Values{}
		values.Set("price", "49.99")
		values.Set("vendor", "Acme")
		rec := postForm(router, "/products/new", values)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "title: field is required")
		assert.Contains(t, body, `value="49.99"`)
		assert.Contains(t, body, `value="Acme"`)
		assert.Equal(t, 0, api.createCalls, "rejected submissions never reach the gateway")
	})

	t.Run("Should show the gateway's user errors on the redrawn form", func(t *testing.T) {
		api := &fakeAPI{createResult: model.ProductCreateResult{
			UserErrors: []model.UserError{{Field: "input.title", Message: "Title has already been taken"}},
		}}
		router, _ := newRouter(t, fakeProvider{api: api})

		rec := postForm(router, "/products/new", validSubmission())

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "input.title: Title has already been taken")
		assert.Contains(t, body, `value="Boot"`)
		assert.Equal(t, 0, api.priceCalls)
	})

	t.Run("Should show a generic message when the create call faults", func(t *testing.T) {
		api := &fakeAPI{createErr: apperr.GatewayUnavailableErr}
		router, _ := newRouter(t, fakeProvider{api: api})

		rec := postForm(router, "/products/new", validSubmission())

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Failed to create product")
		assert.Contains(t, body, `value="Boot"`)
	})

	t.Run("Should answer with a gateway timeout status when the create call times out", func(t *testing.T) {
		api := &fakeAPI{createErr: apperr.GatewayTimeoutErr}
		router, _ := newRouter(t, fakeProvider{api: api})

		rec := postForm(router, "/products/new", validSubmission())

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Failed to create product")
		assert.Contains(t, body, `value="Boot"`)
	})

	t.Run("Should surface a partial success on the review screen", func(t *testing.T) {
		api := &fakeAPI{
			createResult: model.ProductCreateResult{
				ProductID:  "gid://1",
				VariantIDs: []string{"gid://1/v1"},
			},
			priceErr: apperr.GatewayUnavailableErr,
		}
		router, journal := newRouter(t, fakeProvider{api: api})

		rec := postForm(router, "/products/new", validSubmission())
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		require.Len(t, journal.List(), 1)

		rec = get(router, "/products/review")
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Boot")
		assert.Contains(t, body, "gid://1")
		assert.Contains(t, body, "price update failed")
	})

	t.Run("Should deny access when the gateway session is not authorized", func(t *testing.T) {
		router, _ := newRouter(t, fakeProvider{err: apperr.AuthErr})

		rec := postForm(router, "/products/new", validSubmission())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access denied")
	})
}

func TestListProductsHandler(t *testing.T) {
	t.Run("Should render the products table", func(t *testing.T) {
		api := &fakeAPI{listItems: []model.ProductListItem{
			{
				Title:          "Boot",
				Description:    "Sturdy leather boot for all seasons",
				PriceAmount:    decimal.RequireFromString("19.5"),
				CurrencyCode:   "USD",
				Status:         model.ProductStatusActive,
				TotalInventory: 12,
			},
		}}
		router, _ := newRouter(t, fakeProvider{api: api})

		rec := get(router, "/products")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Boot")
		assert.Contains(t, body, "$19.50")
		assert.Contains(t, body, "badge-success")
	})

	t.Run("Should keep the screen up with a banner when listing faults", func(t *testing.T) {
		api := &fakeAPI{listErr: apperr.GatewayUnavailableErr}
		router, _ := newRouter(t, fakeProvider{api: api})

		rec := get(router, "/products")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to fetch products")
	})

	t.Run("Should redirect the root path to the listing", func(t *testing.T) {
		router, _ := newRouter(t, fakeProvider{api: &fakeAPI{}})

		rec := get(router, "/")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/products", rec.Header().Get("Location"))
	})
}

func TestNewProductHandler(t *testing.T) {
	t.Run("Should render the empty form with draft preselected", func(t *testing.T) {
		router, _ := newRouter(t, fakeProvider{api: &fakeAPI{}})

		rec := get(router, "/products/new")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Add New Product")
		assert.Contains(t, body, `name="title"`)
	})
}
