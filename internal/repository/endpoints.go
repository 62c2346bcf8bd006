package repository

import "net/http"

// Endpoint is one operation of the remote API the facade depends on.
type Endpoint struct {
	Method string
	Path   string
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

// Path templates of the remote API.
const (
	pathLogin          = "/auth/login"
	pathSignup         = "/auth/signup"
	pathBicycles       = "/bicycles"
	pathBicycle        = "/bicycle"
	pathBicycleByID    = "/bicycle/{id}"
	pathEquipments     = "/equipments"
	pathEquipment      = "/equipment"
	pathBicycleStats   = "/stats/bicycle/{id}"
	pathCategoryStats  = "/stats/category/{category}"
	pathRental         = "/rental"
	pathRentalPickup   = "/rental/{id}/pickup"
	pathRentalReturn   = "/rental/{id}/return"
	pathRentalPay      = "/rental/{id}/pay"
	pathRentals        = "/rentals"
	pathPaymentMethods = "/payment-methods"
	pathPaymentMethod  = "/payment-method"
	pathPaymentByID    = "/payment-method/{id}"
)

// Endpoints lists every call the repositories make.
func Endpoints() []Endpoint {
	return []Endpoint{
		{http.MethodPost, pathLogin},
		{http.MethodPost, pathSignup},
		{http.MethodGet, pathBicycles},
		{http.MethodPost, pathBicycle},
		{http.MethodGet, pathBicycleByID},
		{http.MethodPatch, pathBicycleByID},
		{http.MethodGet, pathEquipments},
		{http.MethodPost, pathEquipment},
		{http.MethodGet, pathBicycleStats},
		{http.MethodGet, pathCategoryStats},
		{http.MethodPost, pathRental},
		{http.MethodPost, pathRentalPickup},
		{http.MethodPost, pathRentalReturn},
		{http.MethodPost, pathRentalPay},
		{http.MethodGet, pathRentals},
		{http.MethodGet, pathPaymentMethods},
		{http.MethodPost, pathPaymentMethod},
		{http.MethodPut, pathPaymentByID},
		{http.MethodDelete, pathPaymentByID},
	}
}
