package domain

// Coupon is a discount code redeemable at checkout.
type Coupon struct {
	ID     string  `bson:"_id" json:"_id"`
	Code   string  `bson:"code" json:"code"`
	Amount float64 `bson:"amount" json:"amount"`
}
