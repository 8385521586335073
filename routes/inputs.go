package routes

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type InitializeRoomsInput struct {
	Count int `json:"count" validate:"required"`
}

type CreateRoomInput struct {
	RoomNumber int     `json:"roomNumber" validate:"required"`
	Type       string  `json:"type" validate:"required,oneof=single double triple"`
	IsAC       bool    `json:"isAC"`
	Rent       float64 `json:"rent"`
}

// TenantSlotInput is one occupant slot of the room save flow. A slot counts
// as populated when both first name and email are present.
type TenantSlotInput struct {
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Landmark         string  `json:"landmark"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Pincode          string  `json:"pincode"`
	AadhaarNumber    string  `json:"aadhaarNumber"`
	TokenMoney       float64 `json:"tokenMoney"`
	AddressProofName string  `json:"addressProofName"`
	IDProofName      string  `json:"idProofName"`
}

// SaveRoomInput carries the whole room wizard: room fields plus up to three
// occupant slots. An empty RoomID creates a new room.
type SaveRoomInput struct {
	RoomID     string            `json:"roomId"`
	RoomNumber int               `json:"roomNumber" validate:"required"`
	Type       string            `json:"type" validate:"required,oneof=single double triple"`
	IsAC       bool              `json:"isAC"`
	Rent       float64           `json:"rent"`
	Tenants    []TenantSlotInput `json:"tenants" validate:"max=3"`
}

type CreateTenantInput struct {
	FirstName        string  `json:"firstName" validate:"required"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone"`
	Landmark         string  `json:"landmark"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Pincode          string  `json:"pincode"`
	AadhaarNumber    string  `json:"aadhaarNumber"`
	TokenMoney       float64 `json:"tokenMoney"`
	RoomNumber       int     `json:"roomNumber" validate:"required"`
	AddressProofName string  `json:"addressProofName"`
	IDProofName      string  `json:"idProofName"`
}

type CreatePaymentInput struct {
	TenantID        string `json:"tenantId"`
	Month           string `json:"month"`
	Year            int    `json:"year"`
	PreviousReading int    `json:"previousReading"`
	CurrentReading  int    `json:"currentReading"`
}
