package dto

// BookForm books a bicycle.
type BookForm struct {
	BicycleID string `form:"bicycleId"`
}

// RentalActionForm targets the current rental.
type RentalActionForm struct {
	RentalID    string `form:"rentalId"`
	ParkingLot  string `form:"returnParkingLotName"`
	PaymentType string `form:"paymentType"`
}

// PaymentMethodForm adds or edits a stored payment method. ExpireAt is MM/YY.
type PaymentMethodForm struct {
	Type     string `form:"type"`
	CC       string `form:"cc"`
	CVC      string `form:"cvc"`
	Holder   string `form:"holder"`
	ExpireAt string `form:"expireAt"`
}
