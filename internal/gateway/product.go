package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tvmai/merchant-admin/internal/apperr"
	"github.com/tvmai/merchant-admin/internal/model"
	"github.com/tvmai/merchant-admin/pkg/ptr"
)

// API is the set of gateway operations the admin panel uses.
type API interface {
	// CreateProduct issues the create mutation. Gateway-reported user
	// errors are returned inside the result, not as an error.
	CreateProduct(ctx context.Context, input ProductCreateInput) (model.ProductCreateResult, error)
	// UpdateVariantPrice issues the follow-up variant price mutation.
	UpdateVariantPrice(ctx context.Context, update model.PriceUpdate) ([]model.UserError, error)
	// ListProducts fetches one page of products for the listing screen.
	ListProducts(ctx context.Context, first int) ([]model.ProductListItem, error)
}

var _ API = (*Client)(nil)

const productCreateMutation = `
mutation ProductCreate($input: ProductInput!) {
  productCreate(input: $input) {
    product {
      id
      variants(first: 10) {
        nodes {
          id
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

const variantPriceMutation = `
mutation ProductVariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    userErrors {
      field
      message
    }
  }
}`

const productsQuery = `
query Products($first: Int!) {
  products(first: $first) {
    edges {
      node {
        id
        title
        handle
        description
        priceRangeV2 {
          minVariantPrice {
            amount
            currencyCode
          }
        }
        images(first: 1) {
          edges {
            node {
              url
              altText
            }
          }
        }
        status
        totalInventory
      }
    }
  }
}`

type wireUserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func mapUserErrors(wire []wireUserError) []model.UserError {
	errs := make([]model.UserError, 0, len(wire))
	for _, ue := range wire {
		errs = append(errs, model.UserError{
			Field:   model.JoinFieldPath(ue.Field),
			Message: ue.Message,
		})
	}
	return errs
}

// CreateProduct issues the create mutation and parses its outcome. When the
// gateway reports user errors they are surfaced verbatim in the result and
// the identifiers are left empty. A success response without variants is a
// fault: the workflow depends on the first variant's id.
func (c *Client) CreateProduct(ctx context.Context, input ProductCreateInput) (model.ProductCreateResult, error) {
	var data struct {
		ProductCreate struct {
			Product *struct {
				ID       string `json:"id"`
				Variants struct {
					Nodes []struct {
						ID string `json:"id"`
					} `json:"nodes"`
				} `json:"variants"`
			} `json:"product"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"productCreate"`
	}

	if err := c.do(ctx, "ProductCreate", productCreateMutation, map[string]any{"input": input}, &data); err != nil {
		return model.ProductCreateResult{}, err
	}

	pc := data.ProductCreate
	if len(pc.UserErrors) > 0 {
		return model.ProductCreateResult{UserErrors: mapUserErrors(pc.UserErrors)}, nil
	}

	if pc.Product == nil {
		return model.ProductCreateResult{}, apperr.ProductIntegrityErr.
			WrapParent(fmt.Errorf("productCreate returned neither product nor user errors"))
	}
	if len(pc.Product.Variants.Nodes) == 0 {
		return model.ProductCreateResult{}, apperr.ProductIntegrityErr.
			WrapParent(fmt.Errorf("expected at least one variant on product %s", pc.Product.ID))
	}

	variantIDs := make([]string, 0, len(pc.Product.Variants.Nodes))
	for _, v := range pc.Product.Variants.Nodes {
		variantIDs = append(variantIDs, v.ID)
	}

	return model.ProductCreateResult{
		ProductID:  pc.Product.ID,
		VariantIDs: variantIDs,
	}, nil
}

// UpdateVariantPrice sets the price and compare-at price of one variant.
func (c *Client) UpdateVariantPrice(ctx context.Context, update model.PriceUpdate) ([]model.UserError, error) {
	type variantInput struct {
		ID             string           `json:"id"`
		Price          decimal.Decimal  `json:"price"`
		CompareAtPrice *decimal.Decimal `json:"compareAtPrice,omitempty"`
	}

	variant := variantInput{
		ID:    update.VariantID,
		Price: update.Price,
	}
	if !update.CompareAtPrice.IsZero() {
		variant.CompareAtPrice = ptr.New(update.CompareAtPrice)
	}

	var data struct {
		ProductVariantsBulkUpdate struct {
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"productVariantsBulkUpdate"`
	}

	vars := map[string]any{
		"productId": update.ProductID,
		"variants":  []variantInput{variant},
	}
	if err := c.do(ctx, "ProductVariantsBulkUpdate", variantPriceMutation, vars, &data); err != nil {
		return nil, err
	}

	return mapUserErrors(data.ProductVariantsBulkUpdate.UserErrors), nil
}

// ListProducts fetches up to first products and reshapes the connection
// into flat listing items.
func (c *Client) ListProducts(ctx context.Context, first int) ([]model.ProductListItem, error) {
	var data struct {
		Products struct {
			Edges []struct {
				Node struct {
					ID            string `json:"id"`
					Title         string `json:"title"`
					Handle        string `json:"handle"`
					Description   string `json:"description"`
					PriceRangeV2  struct {
						MinVariantPrice struct {
							Amount       decimal.Decimal `json:"amount"`
							CurrencyCode string          `json:"currencyCode"`
						} `json:"minVariantPrice"`
					} `json:"priceRangeV2"`
					Images struct {
						Edges []struct {
							Node struct {
								URL     string `json:"url"`
								AltText string `json:"altText"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"images"`
					Status         string `json:"status"`
					TotalInventory int    `json:"totalInventory"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}

	if err := c.do(ctx, "Products", productsQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}

	items := make([]model.ProductListItem, 0, len(data.Products.Edges))
	for _, edge := range data.Products.Edges {
		node := edge.Node
		item := model.ProductListItem{
			ID:             node.ID,
			Title:          node.Title,
			Handle:         node.Handle,
			Description:    node.Description,
			PriceAmount:    node.PriceRangeV2.MinVariantPrice.Amount,
			CurrencyCode:   node.PriceRangeV2.MinVariantPrice.CurrencyCode,
			Status:         model.ProductStatus(node.Status),
			TotalInventory: node.TotalInventory,
		}
		if len(node.Images.Edges) > 0 {
			item.ImageURL = node.Images.Edges[0].Node.URL
			item.ImageAltText = node.Images.Edges[0].Node.AltText
		}
		items = append(items, item)
	}

	return items, nil
}
