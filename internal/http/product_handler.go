package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tvmai/merchant-admin/internal/form"
	"github.com/tvmai/merchant-admin/internal/http/render"
	"github.com/tvmai/merchant-admin/internal/http/view"
	"github.com/tvmai/merchant-admin/internal/review"
	"github.com/tvmai/merchant-admin/internal/service"
	"github.com/tvmai/merchant-admin/pkg/zerror"
)

func isAuthError(err error) bool {
	var zErr zerror.ZError
	return errors.As(err, &zErr) && zErr.Status() == zerror.StatusUnauthorized
}

// genericCreateError is the only message shown for faults on the create
// path. Field-level detail is reserved for validation and gateway user
// errors; everything else stays in the logs.
const genericCreateError = "Failed to create product"

type productHandler struct {
	catalogSvc service.CatalogService
	journal    *review.Journal
	decoder    *form.Decoder
	renderer   *render.Renderer
	logger     *slog.Logger
}

func newProductHandler(
	catalogSvc service.CatalogService,
	journal *review.Journal,
	decoder *form.Decoder,
	renderer *render.Renderer,
	logger *slog.Logger,
) *productHandler {
	return &productHandler{
		catalogSvc: catalogSvc,
		journal:    journal,
		decoder:    decoder,
		renderer:   renderer,
		logger:     logger,
	}
}

// ListProducts renders the products table.
func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := view.ProductsPage{Title: "Products"}

	items, err := h.catalogSvc.ListProducts(r.Context())
	if err != nil {
		if isAuthError(err) {
			h.renderAccessDenied(w, r, err)
			return
		}

		h.logger.ErrorContext(r.Context(), "error fetching products", slog.Any("error", err))
		page.Error = "Failed to fetch products"
		h.renderer.Page(w, r, http.StatusOK, "products.tmpl", page)
		return
	}

	page.Rows = view.NewProductRows(items)
	h.renderer.Page(w, r, http.StatusOK, "products.tmpl", page)
}

// NewProduct renders the empty creation form.
func (h *productHandler) NewProduct(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, "product_new.tmpl", view.NewProductFormPage(nil, nil))
}

// CreateProduct runs the create workflow and maps its terminal state onto
// a response: a redirect on success, the redrawn form with the submitted
// values echoed on every failure.
func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "error parsing form", slog.Any("error", err))
		page := view.NewProductFormPage(nil, []string{"Invalid form submission"})
		h.renderer.Page(w, r, http.StatusBadRequest, "product_new.tmpl", page)
		return
	}
	submitted := r.PostForm

	draft, err := h.decoder.DecodeProductForm(submitted)
	if err != nil {
		if ve, ok := form.AsValidationError(err); ok {
			msgs := make([]string, 0, len(ve.Fields))
			for _, fe := range ve.Fields {
				msgs = append(msgs, fe.Field+": "+fe.Message)
			}
			page := view.NewProductFormPage(submitted, msgs)
			h.renderer.Page(w, r, http.StatusUnprocessableEntity, "product_new.tmpl", page)
			return
		}

		h.logger.ErrorContext(r.Context(), "error decoding product form", slog.Any("error", err))
		page := view.NewProductFormPage(submitted, []string{genericCreateError})
		h.renderer.Page(w, r, http.StatusInternalServerError, "product_new.tmpl", page)
		return
	}

	outcome, err := h.catalogSvc.CreateProduct(r.Context(), draft)
	if err != nil {
		if isAuthError(err) {
			h.renderAccessDenied(w, r, err)
			return
		}

		h.logger.ErrorContext(r.Context(), "error creating product",
			slog.String("title", draft.Title), slog.Any("error", err))
		page := view.NewProductFormPage(submitted, []string{genericCreateError})
		h.renderer.Page(w, r, render.StatusFromError(err), "product_new.tmpl", page)
		return
	}

	if len(outcome.UserErrors) > 0 {
		msgs := make([]string, 0, len(outcome.UserErrors))
		for _, ue := range outcome.UserErrors {
			msgs = append(msgs, ue.String())
		}
		page := view.NewProductFormPage(submitted, msgs)
		h.renderer.Page(w, r, http.StatusOK, "product_new.tmpl", page)
		return
	}

	http.Redirect(w, r, outcome.RedirectTo, http.StatusSeeOther)
}

// ReviewProducts renders the partial-success review queue.
func (h *productHandler) ReviewProducts(w http.ResponseWriter, r *http.Request) {
	page := view.NewReviewPage(h.journal.List())
	h.renderer.Page(w, r, http.StatusOK, "review.tmpl", page)
}

func (h *productHandler) renderAccessDenied(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WarnContext(r.Context(), "gateway session not authorized", slog.Any("error", err))
	h.renderer.Page(w, r, http.StatusUnauthorized, "error.tmpl", view.ErrorPage{
		Title:   "Access denied",
		Message: "This session is not authorized for the commerce gateway.",
	})
}
