package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a catalogue entry. The remote API owns the record; the client
// holds read-only transient copies.
type Product struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	Image       string  `json:"image" bson:"image"`
}
