package dto

// BicycleForm is the add-bicycle form. HourlyPrice is parsed by the handler.
type BicycleForm struct {
	CurrentParkingLotName string   `form:"currentParkingLotName"`
	Categories            []string `form:"categories"`
	ChassisID             string   `form:"chassisId"`
	Brand                 string   `form:"brand"`
	Model                 string   `form:"model"`
	HourlyPrice           string   `form:"hourlyPrice"`
}

// PriceForm updates one bicycle's hourly price.
type PriceForm struct {
	BicycleID   string `form:"bicycleId"`
	HourlyPrice string `form:"hourlyPrice"`
}

// EquipmentForm is the add-equipment form.
type EquipmentForm struct {
	BicycleID   string `form:"bicycleId"`
	Type        string `form:"type"`
	Name        string `form:"name"`
	Description string `form:"description"`
}

// StatsQuery selects what the statistics view shows.
type StatsQuery struct {
	BicycleID string `query:"bicycleId"`
	Category  string `query:"category"`
}
