package routes

import (
	"time"

	"rentease-server/models"
	"rentease-server/services"
	"rentease-server/utils"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

// GET /api/admin/rooms
func GetRooms(ctx iris.Context) {
	rooms := data.Rooms()
	ctx.JSON(iris.Map{"data": rooms, "meta": iris.Map{}, "links": iris.Map{}})
}

// POST /api/admin/rooms/initialize
// Replaces every room with freshly numbered vacant singles. Tenants and
// payments keep their old room numbers, which may now point nowhere.
func InitializeRooms(ctx iris.Context) {
	var input InitializeRoomsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Count < 1 || input.Count > 500 {
		utils.CreateError(iris.StatusBadRequest, "Invalid room count", "Please enter a number between 1 and 500.", ctx)
		return
	}

	data.InitializeRooms(input.Count)
	utils.Audit(ctx, "rooms.initialize", "room", "", iris.Map{"count": input.Count})
	ctx.JSON(iris.Map{"data": data.Rooms(), "meta": iris.Map{}, "links": iris.Map{}})
}

// POST /api/admin/rooms
func CreateRoom(ctx iris.Context) {
	var input CreateRoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	rent := input.Rent
	if rent == 0 {
		rent = data.GetRent(input.Type, input.IsAC)
	}

	room := data.AddRoom(models.Room{
		RoomNumber: input.RoomNumber,
		Type:       input.Type,
		IsAC:       input.IsAC,
		Rent:       rent,
		IsOccupied: false,
		Tenants:    []models.Tenant{},
	})
	utils.Audit(ctx, "rooms.create", "room", room.ID, room)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(room)
}

// PATCH /api/admin/rooms/{id}
func UpdateRoom(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var update struct {
		Type       *string  `json:"type"`
		IsAC       *bool    `json:"isAC"`
		Rent       *float64 `json:"rent"`
		IsOccupied *bool    `json:"isOccupied"`
	}
	if err := ctx.ReadJSON(&update); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	data.UpdateRoom(id, services.RoomUpdate{
		Type:       update.Type,
		IsAC:       update.IsAC,
		Rent:       update.Rent,
		IsOccupied: update.IsOccupied,
	})
	utils.Audit(ctx, "rooms.update", "room", id, update)
	ctx.JSON(iris.Map{"success": true})
}

// POST /api/admin/rooms/save
// The room wizard: create or update the room, then add each populated tenant
// slot with its two name-only documents.
func SaveRoom(ctx iris.Context) {
	var input SaveRoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	rent := input.Rent
	if rent == 0 {
		rent = data.GetRent(input.Type, input.IsAC)
	}
	occupied := len(input.Tenants) > 0 && input.Tenants[0].FirstName != ""

	roomID := input.RoomID
	if roomID == "" {
		room := data.AddRoom(models.Room{
			RoomNumber: input.RoomNumber,
			Type:       input.Type,
			IsAC:       input.IsAC,
			Rent:       rent,
			IsOccupied: occupied,
			Tenants:    []models.Tenant{},
		})
		roomID = room.ID
	} else {
		data.UpdateRoom(roomID, services.RoomUpdate{
			Type:       &input.Type,
			IsAC:       &input.IsAC,
			Rent:       &rent,
			IsOccupied: &occupied,
		})
	}

	room, found := data.FindRoomByNumber(input.RoomNumber)
	capacity := 1
	if found {
		capacity = room.Capacity()
	}

	now := time.Now()
	added := make([]models.Tenant, 0, len(input.Tenants))
	for i, slot := range input.Tenants {
		if i >= capacity {
			break
		}
		if slot.FirstName == "" || slot.Email == "" {
			continue
		}
		tenant := data.AddTenant(models.Tenant{
			FirstName:         slot.FirstName,
			LastName:          slot.LastName,
			Email:             slot.Email,
			Phone:             slot.Phone,
			Landmark:          slot.Landmark,
			City:              slot.City,
			State:             slot.State,
			Pincode:           slot.Pincode,
			AadhaarNumber:     slot.AadhaarNumber,
			TokenMoney:        slot.TokenMoney,
			RoomNumber:        input.RoomNumber,
			Documents:         slotDocuments(slot, now),
			DocumentsVerified: false,
			JoinDate:          now,
			IsActive:          true,
		})
		added = append(added, tenant)
	}

	utils.Audit(ctx, "rooms.save", "room", roomID, iris.Map{"tenantsAdded": len(added)})
	ctx.JSON(iris.Map{"roomId": roomID, "tenants": added})
}

func slotDocuments(slot TenantSlotInput, now time.Time) []models.Document {
	addressName := slot.AddressProofName
	if addressName == "" {
		addressName = "Address Proof"
	}
	idName := slot.IDProofName
	if idName == "" {
		idName = "ID Proof"
	}
	return []models.Document{
		{ID: uuid.NewString(), Type: models.DocumentTypeAddressProof, Name: addressName, URL: "#", Verified: false, UploadedAt: now},
		{ID: uuid.NewString(), Type: models.DocumentTypeIDProof, Name: idName, URL: "#", Verified: false, UploadedAt: now},
	}
}
