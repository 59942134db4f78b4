package handlers

import (
	"net/http"

	"storefront-backend/application/services"
	"storefront-backend/domain"
	"storefront-backend/pkg/common"
	pkgerrors "storefront-backend/pkg/errors"
	"storefront-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orders *services.OrderService
	errs   *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *services.OrderService, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		errs:   errs,
		logger: logger,
	}
}

// ShippingInfoRequest mirrors the checkout address form
type ShippingInfoRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	PinCode int    `json:"pinCode" validate:"required"`
}

// OrderItemRequest is one checkout line item
type OrderItemRequest struct {
	Name      string  `json:"name" validate:"required"`
	Photo     string  `json:"photo"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
	ProductID string  `json:"productId" validate:"required"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ShippingInfo    ShippingInfoRequest `json:"shippingInfo" validate:"required"`
	UserID          string              `json:"user" validate:"required"`
	SubTotal        float64             `json:"subTotal" validate:"gte=0"`
	Tax             float64             `json:"tax" validate:"gte=0"`
	ShippingCharges float64             `json:"shippingCharges" validate:"gte=0"`
	Discount        float64             `json:"discount" validate:"gte=0"`
	Total           float64             `json:"total" validate:"required,gt=0"`
	Items           []OrderItemRequest  `json:"orderItems" validate:"required,min=1,dive"`
}

// CreateOrder handles POST /order/new
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			Name:      item.Name,
			Photo:     item.Photo,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ProductID: item.ProductID,
		})
	}

	order, err := h.orders.Place(r.Context(), services.NewOrder{
		ShippingInfo: domain.ShippingInfo{
			Address: req.ShippingInfo.Address,
			City:    req.ShippingInfo.City,
			State:   req.ShippingInfo.State,
			Country: req.ShippingInfo.Country,
			PinCode: req.ShippingInfo.PinCode,
		},
		UserID:          req.UserID,
		SubTotal:        req.SubTotal,
		Tax:             req.Tax,
		ShippingCharges: req.ShippingCharges,
		Discount:        req.Discount,
		Total:           req.Total,
		Items:           items,
	})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, order)
}

// MyOrders handles GET /order/my
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("id")
	if userID == "" {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("id query parameter is required"))
		return
	}

	orders, err := h.orders.ByUser(r.Context(), userID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, orders)
}

// ListOrders handles GET /order/all
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.All(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /order/{orderID}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orders.ByID(r.Context(), orderID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, order)
}

// ProcessOrder handles PUT /order/{orderID}, advancing the fulfilment status
func (h *OrderHandler) ProcessOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orders.Process(r.Context(), orderID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /order/{orderID}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	if err := h.orders.Delete(r.Context(), orderID); err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "order deleted successfully")
}
