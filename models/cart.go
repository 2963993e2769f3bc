package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is an embedded line in a user's cart. Price is captured at the
// time the item was added so later price changes are visible.
type CartItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	VariantID primitive.ObjectID `json:"variantId,omitempty" bson:"variantId,omitempty"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Price     float64            `json:"price" bson:"price"`
	AddedAt   time.Time          `json:"addedAt" bson:"addedAt"`
}

// Cart is the single cart a user owns.
type Cart struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID            primitive.ObjectID `json:"userId" bson:"userId"`
	Items             []CartItem         `json:"items" bson:"items"`
	AppliedCouponCode string             `json:"appliedCouponCode,omitempty" bson:"appliedCouponCode,omitempty"`
	DiscountAmount    float64            `json:"discountAmount,omitempty" bson:"discountAmount,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}
