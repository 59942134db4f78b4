package domain

import "time"

// Product is a catalog item. Photo holds the stored image path; upload and
// storage of the file itself are handled outside this service.
type Product struct {
	ID        string    `bson:"_id" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Photo     string    `bson:"photo" json:"photo"`
	Price     float64   `bson:"price" json:"price"`
	Stock     int64     `bson:"stock" json:"stock"`
	Category  string    `bson:"category" json:"category"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InStock reports whether the product can still be ordered.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
