package domain

// BicycleStatus tracks whether a bicycle can be rented.
type BicycleStatus string

const (
	BicycleStatusAvailable   BicycleStatus = "AVAILABLE"
	BicycleStatusRented      BicycleStatus = "RENTED"
	BicycleStatusMaintenance BicycleStatus = "MAINTENANCE"
)

// BicycleCategory classifies a bicycle.
type BicycleCategory string

const (
	BicycleCategoryCity     BicycleCategory = "CITY"
	BicycleCategoryMountain BicycleCategory = "MOUNTAIN"
	BicycleCategoryRoad     BicycleCategory = "ROAD"
	BicycleCategoryElectric BicycleCategory = "ELECTRIC"
	BicycleCategoryKids     BicycleCategory = "KIDS"
)

// BicycleCategories lists every category in display order.
func BicycleCategories() []BicycleCategory {
	return []BicycleCategory{
		BicycleCategoryCity,
		BicycleCategoryMountain,
		BicycleCategoryRoad,
		BicycleCategoryElectric,
		BicycleCategoryKids,
	}
}

// IsValidBicycleCategory checks c against the known categories.
func IsValidBicycleCategory(c string) bool {
	for _, known := range BicycleCategories() {
		if string(known) == c {
			return true
		}
	}
	return false
}

// Bicycle is a rentable bicycle as returned by the API.
type Bicycle struct {
	ID                    string            `json:"id"`
	CurrentParkingLotName string            `json:"currentParkingLotName"`
	Categories            []BicycleCategory `json:"categories"`
	ChassisID             string            `json:"chassisId"`
	Brand                 string            `json:"brand"`
	Model                 string            `json:"model"`
	HourlyPrice           float64           `json:"hourlyPrice"`
	Status                BicycleStatus     `json:"status"`
}

// CreateBicycle is the payload for registering a bicycle.
type CreateBicycle struct {
	CurrentParkingLotName string            `json:"currentParkingLotName"`
	Categories            []BicycleCategory `json:"categories"`
	ChassisID             string            `json:"chassisId"`
	Brand                 string            `json:"brand"`
	Model                 string            `json:"model"`
	HourlyPrice           float64           `json:"hourlyPrice"`
}

// UpdateBicycle carries the mutable bicycle fields.
type UpdateBicycle struct {
	HourlyPrice float64 `json:"hourlyPrice"`
}

// Page is a page of API results.
type Page[T any] struct {
	Results []T `json:"results"`
}
