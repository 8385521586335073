package models

const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTriple = "triple"
)

type Room struct {
	ID         string   `json:"id"`
	RoomNumber int      `json:"roomNumber"`
	Type       string   `json:"type"` // single, double, triple
	IsAC       bool     `json:"isAC"`
	Rent       float64  `json:"rent"`
	IsOccupied bool     `json:"isOccupied"`
	Tenants    []Tenant `json:"tenants"`
}

// Capacity returns the maximum tenant count for the room type.
func (r *Room) Capacity() int {
	switch r.Type {
	case RoomTypeDouble:
		return 2
	case RoomTypeTriple:
		return 3
	default:
		return 1
	}
}
