package domain

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var errInvalidPhone = errors.New("must be a phone number such as +36301234567")

// Digits with optional leading plus and single separators, at least 6 digits in total.
var phoneExp = regexp2.MustCompile(`^\+?(?=(?:\D*\d){6,15}\D*$)\d+(?:[ -]\d+)*$`, regexp2.None)

type Buyer struct {
	ID      uint   `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (b Buyer) Validate() error {
	return validation.ValidateStruct(
		&b,
		validation.Field(&b.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&b.Email, validation.Required, is.Email),
		validation.Field(&b.Phone, validation.By(validPhone)),
		validation.Field(&b.Address, validation.Length(0, 200)),
	)
}

func validPhone(value interface{}) error {
	phone, _ := value.(string)
	if phone == "" {
		return nil
	}

	ok, err := phoneExp.MatchString(phone)
	if err != nil || !ok {
		return errInvalidPhone
	}

	return nil
}

type Order struct {
	ID        uint       `json:"id"`
	Reference string     `json:"reference"`
	Buyer     Buyer      `json:"buyer"`
	Lines     []CartLine `json:"lines"`
	Total     int        `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

// Receipt acknowledges a committed order.
type Receipt struct {
	Reference string     `json:"reference"`
	BuyerName string     `json:"buyer_name"`
	Email     string     `json:"email"`
	Lines     []CartLine `json:"lines"`
	Total     int        `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

func (o Order) Receipt() Receipt {
	return Receipt{
		Reference: o.Reference,
		BuyerName: o.Buyer.Name,
		Email:     o.Buyer.Email,
		Lines:     o.Lines,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

type CheckoutState string

const (
	CheckoutReview          CheckoutState = "Review"
	CheckoutCollectIdentity CheckoutState = "CollectIdentity"
	CheckoutAcknowledged    CheckoutState = "Acknowledged"
	CheckoutCancelled       CheckoutState = "Cancelled"
)

// Checkout is a single order attempt. Only an attempt in CollectIdentity can be
// confirmed or cancelled.
type Checkout struct {
	SessionID string        `json:"session_id"`
	State     CheckoutState `json:"state"`
	Lines     []CartLine    `json:"lines"`
	Total     int           `json:"total"`
	StartedAt time.Time     `json:"started_at"`
}

func (c *Checkout) IsOpen() bool {
	return c.State == CheckoutCollectIdentity
}

func (c *Checkout) Acknowledge() {
	if c.State == CheckoutCollectIdentity {
		c.State = CheckoutAcknowledged
	}
}

func (c *Checkout) Cancel() {
	if c.State == CheckoutCollectIdentity {
		c.State = CheckoutCancelled
	}
}
