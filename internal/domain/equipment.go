package domain

// EquipmentType classifies an accessory.
type EquipmentType string

const (
	EquipmentTypeHelmet    EquipmentType = "HELMET"
	EquipmentTypeLock      EquipmentType = "LOCK"
	EquipmentTypeBasket    EquipmentType = "BASKET"
	EquipmentTypeLight     EquipmentType = "LIGHT"
	EquipmentTypeChildSeat EquipmentType = "CHILD_SEAT"
)

// EquipmentTypes lists every equipment type in display order.
func EquipmentTypes() []EquipmentType {
	return []EquipmentType{
		EquipmentTypeHelmet,
		EquipmentTypeLock,
		EquipmentTypeBasket,
		EquipmentTypeLight,
		EquipmentTypeChildSeat,
	}
}

// Equipment is an accessory attached to a bicycle.
type Equipment struct {
	ID          string        `json:"id"`
	BicycleID   string        `json:"bicycleId"`
	Type        EquipmentType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
}

// CreateEquipment is the payload for registering equipment.
type CreateEquipment struct {
	BicycleID   string        `json:"bicycleId"`
	Type        EquipmentType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
}
