package dto

// PaymentRequest carries the production card rules.
type PaymentRequest struct {
	CardNumber string `json:"cardNumber" validate:"required,len=16,digits"`
	CardHolder string `json:"cardHolder" validate:"required,min=2"`
	ExpiryDate string `json:"expiryDate" validate:"required,cardexpiry"`
	CVV        string `json:"cvv"        validate:"required,min=3,max=4,digits"`
}

// String masks the card so a request never shows up in logs.
func (p PaymentRequest) String() string {
	return "PaymentRequest{****}"
}

// RelaxedPaymentRequest only asks for every field to be present. Test mode
// validates with it.
type RelaxedPaymentRequest struct {
	CardNumber string `json:"cardNumber" validate:"required"`
	CardHolder string `json:"cardHolder" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv"        validate:"required"`
}

func NewRelaxed(p PaymentRequest) RelaxedPaymentRequest {
	return RelaxedPaymentRequest(p)
}
