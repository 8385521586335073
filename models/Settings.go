package models

type RentRates struct {
	SingleNonAC float64 `json:"singleNonAC"`
	SingleAC    float64 `json:"singleAC"`
	DoubleNonAC float64 `json:"doubleNonAC"`
	DoubleAC    float64 `json:"doubleAC"`
	TripleNonAC float64 `json:"tripleNonAC"`
	TripleAC    float64 `json:"tripleAC"`
}

// RateFor is a total lookup; unknown types fall through to the triple rates.
func (r RentRates) RateFor(roomType string, isAC bool) float64 {
	switch roomType {
	case RoomTypeSingle:
		if isAC {
			return r.SingleAC
		}
		return r.SingleNonAC
	case RoomTypeDouble:
		if isAC {
			return r.DoubleAC
		}
		return r.DoubleNonAC
	default:
		if isAC {
			return r.TripleAC
		}
		return r.TripleNonAC
	}
}

type Settings struct {
	TotalRooms      int       `json:"totalRooms"`
	ElectricityRate float64   `json:"electricityRate"`
	RentRates       RentRates `json:"rentRates"`
}

func DefaultSettings() Settings {
	return Settings{
		TotalRooms:      20,
		ElectricityRate: 8,
		RentRates: RentRates{
			SingleNonAC: 3000,
			SingleAC:    4000,
			DoubleNonAC: 6000,
			DoubleAC:    10000,
			TripleNonAC: 9000,
			TripleAC:    14000,
		},
	}
}
