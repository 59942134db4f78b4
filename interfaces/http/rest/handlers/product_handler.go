package handlers

import (
	"net/http"
	"strconv"

	"storefront-backend/application/ports"
	"storefront-backend/application/services"
	"storefront-backend/domain"
	"storefront-backend/pkg/common"
	pkgerrors "storefront-backend/pkg/errors"
	"storefront-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler handles catalog-related HTTP requests
type ProductHandler struct {
	products *services.ProductService
	pageSize int
	errs     *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	products *services.ProductService,
	pageSize int,
	errs *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *ProductHandler {
	return &ProductHandler{
		products: products,
		pageSize: pageSize,
		errs:     errs,
		logger:   logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Photo    string  `json:"photo" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Stock    int64   `json:"stock" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
}

// UpdateProductRequest represents the request body for a partial update
type UpdateProductRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Photo    *string  `json:"photo,omitempty" validate:"omitempty,min=1"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock    *int64   `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Category *string  `json:"category,omitempty" validate:"omitempty,min=1"`
}

// SearchProductsResponse carries one page of matches plus the page count
type SearchProductsResponse struct {
	Products   []domain.Product `json:"products"`
	TotalPages int              `json:"totalPage"`
}

// LatestProducts handles GET /product/latest
func (h *ProductHandler) LatestProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Latest(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, products)
}

// Categories handles GET /product/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.Categories(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, categories)
}

// AdminProducts handles GET /product/admin-products
func (h *ProductHandler) AdminProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.All(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, products)
}

// SearchProducts handles GET /product/all with filter query parameters
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var maxPrice float64
	if raw := q.Get("price"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			h.errs.Handle(w, r, pkgerrors.NewValidationError("price must be a non-negative number"))
			return
		}
		maxPrice = parsed
	}

	page := common.PageFromRequest(r, h.pageSize)
	query := ports.ProductQuery{
		Search:   q.Get("search"),
		MaxPrice: maxPrice,
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		Skip:     page.Skip(),
		Limit:    int64(page.Size),
	}

	products, totalPages, err := h.products.Search(r.Context(), query, h.pageSize)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, SearchProductsResponse{
		Products:   products,
		TotalPages: totalPages,
	})
}

// GetProduct handles GET /product/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.products.ByID(r.Context(), productID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /product/new
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	product, err := h.products.Create(r.Context(), services.NewProduct{
		Name:     req.Name,
		Photo:    req.Photo,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /product/{productID}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req UpdateProductRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	product, err := h.products.Update(r.Context(), productID, services.ProductUpdate{
		Name:     req.Name,
		Photo:    req.Photo,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /product/{productID}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.products.Delete(r.Context(), productID); err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "product deleted successfully")
}
