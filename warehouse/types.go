// Package warehouse declares document types with shapes the hydrator
// cannot fully default: a self-referential customer and an untyped
// order payload. The static checker and its tests load it.
package warehouse

import (
	"time"

	"github.com/google/uuid"
)

// Status is stored as its string value.
type Status string

const (
	StatusPending Status = "pending"
	StatusShipped Status = "shipped"
)

type Address struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

// Customer refers to the customer who referred them, so a default
// Customer cannot be built without recursing into itself.
type Customer struct {
	ID        *uuid.UUID `json:"id"`
	Name      *string    `json:"name"`
	Default   *Address   `json:"default_address,omitempty"`
	Addresses []Address  `json:"addresses,omitempty"`
	Referrer  *Customer  `json:"referrer,omitempty"`
}

type Order struct {
	Number   *string      `json:"number"`
	Status   *Status      `json:"status"`
	Customer *Customer    `json:"customer"`
	Items    []*OrderItem `json:"items"`
	Placed   *time.Time   `json:"placed_at"`
	Updates  <-chan Event `json:"-"`
	Meta     any          `json:"meta,omitempty"`
	Notes    *string      `hydrate:"-" json:"notes,omitempty"`
}

type OrderItem struct {
	SKU      *string  `json:"sku"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

type Event struct {
	At   time.Time `json:"at"`
	Kind *string   `json:"kind"`
}

// Page is generic and therefore never checked statically.
type Page[T any] struct {
	Items []T
	Next  *string
}
