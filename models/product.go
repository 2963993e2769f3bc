package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product statuses
const (
	ProductActive     = "ACTIVE"
	ProductInactive   = "INACTIVE"
	ProductDraft      = "DRAFT"
	ProductOutOfStock = "OUT_OF_STOCK"
	ProductArchived   = "ARCHIVED"
)

// Delivery describes how a product ships.
type Delivery struct {
	FreeShipping          bool     `json:"freeShipping" bson:"freeShipping"`
	EstimatedDeliveryTime int      `json:"estimatedDeliveryTime" bson:"estimatedDeliveryTime"`
	Locations             []string `json:"locations,omitempty" bson:"locations,omitempty"`
}

// Discount is an optional price reduction. Coupon is omitted from the
// document when empty so the coupon-presence filter can use an existence test.
type Discount struct {
	Type   string  `json:"type" bson:"type"`
	Value  float64 `json:"value" bson:"value"`
	Coupon string  `json:"coupon,omitempty" bson:"coupon,omitempty"`
}

// Variants holds the free-form per-product attribute map (color, size, ...).
// Values are strings or numbers depending on what the seller supplied.
type Variants struct {
	Attributes map[string]any `json:"attributes,omitempty" bson:"attributes,omitempty"`
}

type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Details       string             `json:"details,omitempty" bson:"details,omitempty"`
	ImageLinks    []string           `json:"imageLinks" bson:"imageLinks"`
	Status        string             `json:"status" bson:"status"`
	Stars         float64            `json:"stars" bson:"stars"`
	Price         float64            `json:"price" bson:"price"`
	Tags          []string           `json:"tags" bson:"tags"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	ShopID        primitive.ObjectID `json:"shopId,omitempty" bson:"shopId,omitempty"`
	CategoryID    primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	NumberInStock int                `json:"numberInStock" bson:"numberInStock"`
	ShopLocation  []string           `json:"shopLocation,omitempty" bson:"shopLocation,omitempty"`
	Delivery      Delivery           `json:"delivery" bson:"delivery"`
	Discount      *Discount          `json:"discount,omitempty" bson:"discount,omitempty"`
	Variants      Variants           `json:"variants,omitempty" bson:"variants,omitempty"`
	ReviewCount   int                `json:"reviewCount" bson:"reviewCount"`
	Views         int                `json:"views" bson:"views"`
	Promoted      bool               `json:"promoted" bson:"promoted"`
	NewArrivals   bool               `json:"newArrivals" bson:"newArrivals"`
	HotDeals      bool               `json:"hotDeals" bson:"hotDeals"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
