package domain

// RentalStatus is the lifecycle of a rental.
type RentalStatus string

const (
	RentalStatusCreated    RentalStatus = "CREATED"
	RentalStatusInProgress RentalStatus = "IN_PROGRESS"
	RentalStatusFinished   RentalStatus = "FINISHED"
	RentalStatusPayed      RentalStatus = "PAYED"
)

// OpenRentalStatuses are the statuses of a rental the customer still has to act on.
func OpenRentalStatuses() []RentalStatus {
	return []RentalStatus{RentalStatusCreated, RentalStatusInProgress, RentalStatusFinished}
}

// Rental is a booking of one bicycle by one customer.
type Rental struct {
	ID                   string       `json:"id"`
	BicycleID            string       `json:"bicycleId"`
	CustomerUsername     string       `json:"customerUsername,omitempty"`
	Status               RentalStatus `json:"status"`
	ReturnParkingLotName *string      `json:"returnParkingLotName,omitempty"`
	TotalPrice           *float64     `json:"totalPrice,omitempty"`
}

// CreateRental books a bicycle.
type CreateRental struct {
	BicycleID string `json:"bicycleId"`
}

// ReturnRentalDetails optionally names where the bicycle was left.
type ReturnRentalDetails struct {
	ReturnParkingLotName *string `json:"returnParkingLotName"`
}

// PayRental selects how a finished rental is paid.
type PayRental struct {
	PaymentType PaymentType `json:"paymentType"`
}
