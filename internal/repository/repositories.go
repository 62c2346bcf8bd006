package repository

// Repositories bundles the API facade.
type Repositories struct {
	Auth           AuthRepository
	Bicycles       BicycleRepository
	Equipment      EquipmentRepository
	Stats          StatsRepository
	Rentals        RentalRepository
	PaymentMethods PaymentMethodRepository
}

// NewRepositories wires every repository to client.
func NewRepositories(client *Client) Repositories {
	return Repositories{
		Auth:           NewAuthRepository(client),
		Bicycles:       NewBicycleRepository(client),
		Equipment:      NewEquipmentRepository(client),
		Stats:          NewStatsRepository(client),
		Rentals:        NewRentalRepository(client),
		PaymentMethods: NewPaymentMethodRepository(client),
	}
}
