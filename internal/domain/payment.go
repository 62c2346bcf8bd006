package domain

// PaymentType is the instrument used to pay.
type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
	PaymentTypeDebitCard  PaymentType = "DEBIT_CARD"
	PaymentTypeCash       PaymentType = "CASH"
)

// PaymentTypes lists every payment type.
func PaymentTypes() []PaymentType {
	return []PaymentType{PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypeCash}
}

// PaymentMethod is a stored card.
type PaymentMethod struct {
	ID       string      `json:"id"`
	Type     PaymentType `json:"type"`
	CC       string      `json:"cc"`
	CVC      string      `json:"cvc"`
	Holder   string      `json:"holder"`
	ExpireAt string      `json:"expireAt"`
}

// CreatePaymentMethod stores a new card. ExpireAt is an ISO date (YYYY-MM-DD).
type CreatePaymentMethod struct {
	Type     PaymentType `json:"type"`
	CC       string      `json:"cc"`
	CVC      string      `json:"cvc"`
	Holder   string      `json:"holder"`
	ExpireAt string      `json:"expireAt"`
}

// UpdatePaymentMethod replaces a stored card's fields.
type UpdatePaymentMethod = CreatePaymentMethod
