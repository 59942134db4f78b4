package domain

import "time"

// OrderStatus tracks fulfillment of an order.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// ShippingInfo is the delivery address captured at checkout.
type ShippingInfo struct {
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
	PinCode int    `bson:"pinCode" json:"pinCode"`
}

// OrderItem is a line item snapshot; name, photo and price are copied from
// the product at order time so later product edits don't rewrite history.
type OrderItem struct {
	Name      string  `bson:"name" json:"name"`
	Photo     string  `bson:"photo" json:"photo"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int64   `bson:"quantity" json:"quantity"`
	ProductID string  `bson:"productId" json:"productId"`
}

// Order is a placed order.
type Order struct {
	ID              string       `bson:"_id" json:"_id"`
	ShippingInfo    ShippingInfo `bson:"shippingInfo" json:"shippingInfo"`
	UserID          string       `bson:"user" json:"user"`
	SubTotal        float64      `bson:"subTotal" json:"subTotal"`
	Tax             float64      `bson:"tax" json:"tax"`
	ShippingCharges float64      `bson:"shippingCharges" json:"shippingCharges"`
	Discount        float64      `bson:"discount" json:"discount"`
	Total           float64      `bson:"total" json:"total"`
	Status          OrderStatus  `bson:"status" json:"status"`
	Items           []OrderItem  `bson:"orderItems" json:"orderItems"`
	CreatedAt       time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Advance moves the order to the next fulfillment stage. Delivered orders
// stay delivered.
func (o *Order) Advance() {
	switch o.Status {
	case StatusProcessing:
		o.Status = StatusShipped
	case StatusShipped:
		o.Status = StatusDelivered
	default:
		o.Status = StatusDelivered
	}
}

// ProductIDs returns the distinct product ids referenced by the order's
// line items, in item order.
func (o *Order) ProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
