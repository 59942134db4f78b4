package handlers

import (
	"net/http"

	"storefront-backend/application/services"
	"storefront-backend/pkg/common"
	pkgerrors "storefront-backend/pkg/errors"
	"storefront-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CouponHandler handles discount coupon HTTP requests
type CouponHandler struct {
	coupons *services.CouponService
	errs    *pkgerrors.ErrorHandler
	logger  *zap.Logger
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(coupons *services.CouponService, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *CouponHandler {
	return &CouponHandler{
		coupons: coupons,
		errs:    errs,
		logger:  logger,
	}
}

// CreateCouponRequest represents the request body for creating a coupon
type CreateCouponRequest struct {
	Code   string  `json:"coupon" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreateCoupon handles POST /payment/coupon/new
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req CreateCouponRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	coupon, err := h.coupons.Create(r.Context(), req.Code, req.Amount)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, coupon)
}

// ApplyDiscountResponse carries the discount granted by a coupon code
type ApplyDiscountResponse struct {
	Discount float64 `json:"discount"`
}

// ApplyDiscount handles GET /payment/discount
func (h *CouponHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("coupon")
	if code == "" {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("coupon query parameter is required"))
		return
	}

	discount, err := h.coupons.Apply(r.Context(), code)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, ApplyDiscountResponse{Discount: discount})
}

// ListCoupons handles GET /payment/coupon/all
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.All(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, coupons)
}

// DeleteCoupon handles DELETE /payment/coupon/{couponID}
func (h *CouponHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	couponID := chi.URLParam(r, "couponID")

	coupon, err := h.coupons.Delete(r.Context(), couponID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "coupon "+coupon.Code+" deleted successfully")
}
