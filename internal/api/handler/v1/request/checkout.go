package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/ticket-desk/internal/domain"
)

type BuyerRequest struct {
	Name    string `json:"name" example:"Ada Lovelace"`
	Email   string `json:"email" example:"ada@example.com"`
	Phone   string `json:"phone,omitempty" example:"+36 1 234 5678"`
	Address string `json:"address,omitempty"`
}

type ConfirmCheckoutRequest struct {
	Buyer BuyerRequest `json:"buyer"`
}

func (req *ConfirmCheckoutRequest) Validate() error {
	return validation.ValidateStruct(
		&req.Buyer,
		validation.Field(&req.Buyer.Name, validation.Required),
		validation.Field(&req.Buyer.Email, validation.Required, is.Email),
	)
}

func (req *ConfirmCheckoutRequest) ToBuyer() domain.Buyer {
	return domain.Buyer{
		Name:    req.Buyer.Name,
		Email:   req.Buyer.Email,
		Phone:   req.Buyer.Phone,
		Address: req.Buyer.Address,
	}
}
