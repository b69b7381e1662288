package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// AddLineRequest carries the quantity exactly as typed; it is parsed by the cart.
type AddLineRequest struct {
	Category string `json:"category" example:"Gold 1"`
	Quantity string `json:"quantity" example:"2"`
}

func (req *AddLineRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Category, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Quantity, validation.Required, validation.Length(1, 12)),
	)
}
