package services

import (
	"encoding/json"
	"testing"
	"time"

	"rentease-server/models"
	"rentease-server/storage"
)

// emptyMemoryStore returns a store that loads as non-empty so the demo seed
// stays out of the way. The sentinel room is replaced by the fixture.
func emptyMemoryStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	mem := storage.NewMemoryStore()
	rooms, err := json.Marshal([]models.Room{{
		ID:         "room-201",
		RoomNumber: 201,
		Type:       models.RoomTypeDouble,
		IsAC:       true,
		Rent:       10000,
		Tenants:    []models.Tenant{},
	}})
	if err != nil {
		t.Fatalf("failed to encode fixture rooms: %v", err)
	}
	mem.Put(KeyRooms, rooms)
	return mem
}

// fixtureDataStore builds a store with one double AC room holding one tenant.
func fixtureDataStore(t *testing.T) (*DataStore, *storage.MemoryStore, models.Tenant) {
	t.Helper()
	mem := emptyMemoryStore(t)

	ds := NewDataStore(mem)
	tenant := ds.AddTenant(models.Tenant{
		FirstName:  "Asha",
		LastName:   "Iyer",
		Email:      "asha@example.com",
		RoomNumber: 201,
		JoinDate:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	})
	return ds, mem, tenant
}

func TestSeedOnEmptyStore(t *testing.T) {
	ds := NewDataStore(storage.NewMemoryStore())

	rooms := ds.Rooms()
	if len(rooms) != 20 {
		t.Fatalf("expected 20 seeded rooms, got %d", len(rooms))
	}
	if rooms[0].RoomNumber != 101 || rooms[19].RoomNumber != 120 {
		t.Fatalf("expected rooms numbered 101..120, got %d..%d", rooms[0].RoomNumber, rooms[19].RoomNumber)
	}
	if len(ds.Tenants()) != 12 {
		t.Fatalf("expected 12 seeded tenants, got %d", len(ds.Tenants()))
	}
	if len(ds.Payments()) != 72 {
		t.Fatalf("expected 72 seeded payments (12 tenants x 6 months), got %d", len(ds.Payments()))
	}

	occupied := 0
	for _, r := range rooms {
		if r.IsOccupied {
			occupied++
		}
	}
	if occupied != 12 {
		t.Fatalf("expected 12 occupied rooms, got %d", occupied)
	}
}

func TestSeedSkippedWhenDataExists(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)
	if len(ds.Rooms()) != 1 {
		t.Fatalf("expected fixture to stay unseeded, got %d rooms", len(ds.Rooms()))
	}
}

func TestPersistRoundTrip(t *testing.T) {
	ds, mem, tenant := fixtureDataStore(t)
	ds.UpdateTenant(tenant.ID, TenantUpdate{City: strPtr("Pune")})

	reloaded := NewDataStore(mem)
	if len(reloaded.Rooms()) != 1 || len(reloaded.Tenants()) != 1 {
		t.Fatalf("expected reload to find 1 room and 1 tenant, got %d/%d", len(reloaded.Rooms()), len(reloaded.Tenants()))
	}
	got, ok := reloaded.FindTenantByID(tenant.ID)
	if !ok || got.City != "Pune" {
		t.Fatalf("expected reloaded tenant with city Pune, got %+v ok=%v", got, ok)
	}
}

func TestInitializeRoomsReplacesCollection(t *testing.T) {
	ds, _, tenant := fixtureDataStore(t)
	ds.InitializeRooms(5)

	rooms := ds.Rooms()
	if len(rooms) != 5 {
		t.Fatalf("expected 5 rooms, got %d", len(rooms))
	}
	for i, r := range rooms {
		if r.RoomNumber != 101+i {
			t.Fatalf("room %d numbered %d, want %d", i, r.RoomNumber, 101+i)
		}
		if r.IsOccupied || r.Type != models.RoomTypeSingle || r.IsAC {
			t.Fatalf("expected vacant single non-AC room, got %+v", r)
		}
		if r.Rent != ds.Settings().RentRates.SingleNonAC {
			t.Fatalf("room rent %v, want single non-AC rate %v", r.Rent, ds.Settings().RentRates.SingleNonAC)
		}
	}
	if ds.Settings().TotalRooms != 5 {
		t.Fatalf("expected settings total rooms 5, got %d", ds.Settings().TotalRooms)
	}

	// The tenant survives the reset and now references a room that is gone.
	if _, ok := ds.FindTenantByID(tenant.ID); !ok {
		t.Fatal("expected tenant to survive room reset")
	}
}

func TestAddTenantMarksRoomOccupied(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)

	room, _ := ds.FindRoomByNumber(201)
	if !room.IsOccupied {
		t.Fatal("expected room 201 occupied after AddTenant")
	}
	if len(room.Tenants) != 1 {
		t.Fatalf("expected 1 embedded tenant, got %d", len(room.Tenants))
	}
}

func TestAddTenantDanglingRoomNumber(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)

	tenant := ds.AddTenant(models.Tenant{FirstName: "Ravi", Email: "ravi@example.com", RoomNumber: 999, IsActive: true})
	if _, ok := ds.FindTenantByID(tenant.ID); !ok {
		t.Fatal("expected tenant to be added even without a matching room")
	}
	if _, ok := ds.FindRoomByNumber(999); ok {
		t.Fatal("room 999 should not exist")
	}
}

func TestRemoveTenantOccupancyFlag(t *testing.T) {
	ds, _, first := fixtureDataStore(t)
	second := ds.AddTenant(models.Tenant{FirstName: "Kiran", Email: "kiran@example.com", RoomNumber: 201, IsActive: true})

	// Two embedded tenants; removing one leaves exactly one, which reads vacant.
	ds.RemoveTenant(second.ID)
	room, _ := ds.FindRoomByNumber(201)
	if room.IsOccupied {
		t.Fatalf("expected room with one remaining tenant to read vacant, got occupied")
	}
	if len(room.Tenants) != 1 {
		t.Fatalf("expected 1 embedded tenant, got %d", len(room.Tenants))
	}

	ds.RemoveTenant(first.ID)
	room, _ = ds.FindRoomByNumber(201)
	if room.IsOccupied || len(room.Tenants) != 0 {
		t.Fatalf("expected empty vacant room, got occupied=%v tenants=%d", room.IsOccupied, len(room.Tenants))
	}
}

func TestRemoveTenantUnknownIDIsNoOp(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)
	ds.RemoveTenant("does-not-exist")
	if len(ds.Tenants()) != 1 {
		t.Fatalf("expected tenant collection untouched, got %d", len(ds.Tenants()))
	}
}

func TestUpdateTenantLeavesEmbeddedCopy(t *testing.T) {
	ds, _, tenant := fixtureDataStore(t)

	ds.UpdateTenant(tenant.ID, TenantUpdate{Phone: strPtr("9876543210")})

	flat, _ := ds.FindTenantByID(tenant.ID)
	if flat.Phone != "9876543210" {
		t.Fatalf("expected flat record updated, got phone %q", flat.Phone)
	}
	room, _ := ds.FindRoomByNumber(201)
	if room.Tenants[0].Phone == "9876543210" {
		t.Fatal("embedded room copy should not be rewritten by UpdateTenant")
	}
}

func TestGetRentTracksSettings(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)

	if got := ds.GetRent(models.RoomTypeDouble, true); got != 10000 {
		t.Fatalf("expected default double AC rate 10000, got %v", got)
	}

	rates := ds.Settings().RentRates
	rates.DoubleAC = 12000
	ds.UpdateSettings(SettingsUpdate{RentRates: &rates})

	if got := ds.GetRent(models.RoomTypeDouble, true); got != 12000 {
		t.Fatalf("expected updated double AC rate 12000, got %v", got)
	}
	// Unknown types fall through to the triple rates.
	if got := ds.GetRent("penthouse", false); got != rates.TripleNonAC {
		t.Fatalf("expected triple non-AC fallback %v, got %v", rates.TripleNonAC, got)
	}
}

func TestVerifyDocumentAggregates(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)
	now := time.Now()
	tenant := ds.AddTenant(models.Tenant{
		FirstName:  "Dev",
		Email:      "dev@example.com",
		RoomNumber: 201,
		Documents: []models.Document{
			{ID: "doc-1", Type: models.DocumentTypeAddressProof, Name: "Rent Agreement.pdf", URL: "#", UploadedAt: now},
			{ID: "doc-2", Type: models.DocumentTypeIDProof, Name: "Passport.pdf", URL: "#", UploadedAt: now},
		},
		IsActive: true,
	})

	ds.VerifyDocument(tenant.ID, "doc-1")
	got, _ := ds.FindTenantByID(tenant.ID)
	if got.DocumentsVerified {
		t.Fatal("aggregate flag should stay false with one unverified document")
	}
	if !got.Documents[0].Verified || got.Documents[1].Verified {
		t.Fatalf("expected only doc-1 verified, got %+v", got.Documents)
	}

	ds.VerifyDocument(tenant.ID, "doc-2")
	got, _ = ds.FindTenantByID(tenant.ID)
	if !got.DocumentsVerified {
		t.Fatal("aggregate flag should flip once every document is verified")
	}
}

func TestVerifyDocumentLeavesEmbeddedCopy(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)
	now := time.Now()
	tenant := ds.AddTenant(models.Tenant{
		FirstName:  "Nik",
		Email:      "nik@example.com",
		RoomNumber: 201,
		Documents: []models.Document{
			{ID: "d1", Type: models.DocumentTypeAddressProof, Name: "Bill.pdf", URL: "#", UploadedAt: now},
			{ID: "d2", Type: models.DocumentTypeIDProof, Name: "Card.pdf", URL: "#", UploadedAt: now},
		},
		IsActive: true,
	})

	ds.VerifyDocument(tenant.ID, "d1")

	// Verification mutates the flat record only; the copy embedded in the room
	// keeps its own documents array and stays unverified.
	room, _ := ds.FindRoomByNumber(201)
	for _, emb := range room.Tenants {
		if emb.ID != tenant.ID {
			continue
		}
		for _, doc := range emb.Documents {
			if doc.Verified {
				t.Fatalf("embedded document %s should stay unverified, got %+v", doc.ID, doc)
			}
		}
	}

	// Snapshots hand out their own arrays too: writing through one must not
	// reach the stored record.
	snap, _ := ds.FindTenantByID(tenant.ID)
	snap.Documents[1].Verified = true
	again, _ := ds.FindTenantByID(tenant.ID)
	if again.Documents[1].Verified {
		t.Fatal("mutating a snapshot's documents leaked into the store")
	}
}

func TestVerifyAllDocuments(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)
	now := time.Now()
	tenant := ds.AddTenant(models.Tenant{
		FirstName:  "Lata",
		Email:      "lata@example.com",
		RoomNumber: 201,
		Documents: []models.Document{
			{ID: "a", Type: models.DocumentTypeAddressProof, Name: "Bill.pdf", URL: "#", UploadedAt: now},
			{ID: "b", Type: models.DocumentTypeIDProof, Name: "Card.pdf", URL: "#", UploadedAt: now},
		},
		IsActive: true,
	})

	ds.VerifyAllDocuments(tenant.ID)
	got, _ := ds.FindTenantByID(tenant.ID)
	if !got.DocumentsVerified || !got.Documents[0].Verified || !got.Documents[1].Verified {
		t.Fatalf("expected everything verified, got %+v", got)
	}
}

func TestMoveTenantToHistory(t *testing.T) {
	ds, _, tenant := fixtureDataStore(t)

	paid := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)
	ds.AddPayment(models.Payment{TenantID: tenant.ID, TenantName: tenant.FullName(), RoomNumber: 201, Month: "March", Year: 2024, TotalAmount: 5000, Status: models.PaymentStatusPaid, PaidDate: &paid})
	ds.AddPayment(models.Payment{TenantID: tenant.ID, TenantName: tenant.FullName(), RoomNumber: 201, Month: "April", Year: 2024, TotalAmount: 6000, Status: models.PaymentStatusPaid, PaidDate: &paid})
	ds.AddPayment(models.Payment{TenantID: tenant.ID, TenantName: tenant.FullName(), RoomNumber: 201, Month: "May", Year: 2024, TotalAmount: 7000, Status: models.PaymentStatusPending})

	ds.MoveTenantToHistory(tenant.ID)

	history := ds.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	entry := history[0]
	if entry.TotalRentPaid != 11000 {
		t.Fatalf("expected total rent paid 11000 (pending excluded), got %v", entry.TotalRentPaid)
	}
	if entry.TenantName != "Asha Iyer" || entry.RoomNumber != 201 {
		t.Fatalf("unexpected snapshot %+v", entry)
	}
	if len(entry.Facilities) != 2 || entry.Facilities[0] != "AC" || entry.Facilities[1] != "Double Bed" {
		t.Fatalf("unexpected facilities %v", entry.Facilities)
	}

	if _, ok := ds.FindTenantByID(tenant.ID); ok {
		t.Fatal("expected tenant removed from the active collection")
	}
	room, _ := ds.FindRoomByNumber(201)
	if len(room.Tenants) != 0 {
		t.Fatalf("expected embedded list emptied, got %d", len(room.Tenants))
	}
}

func TestMoveTenantToHistoryMissingRoom(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)
	tenant := ds.AddTenant(models.Tenant{FirstName: "Gone", Email: "gone@example.com", RoomNumber: 999, IsActive: true})

	ds.MoveTenantToHistory(tenant.ID)

	if len(ds.History()) != 0 {
		t.Fatal("expected no history entry when the room is missing")
	}
	if _, ok := ds.FindTenantByID(tenant.ID); !ok {
		t.Fatal("expected tenant kept when the checkout cannot complete")
	}
}

func TestUpdatePaymentAndReminderFlag(t *testing.T) {
	ds, _, tenant := fixtureDataStore(t)
	payment := ds.AddPayment(models.Payment{TenantID: tenant.ID, TenantName: tenant.FullName(), RoomNumber: 201, Month: "June", Year: 2024, TotalAmount: 8000, Status: models.PaymentStatusPending})

	status := models.PaymentStatusPaid
	now := time.Now()
	ds.UpdatePayment(payment.ID, PaymentUpdate{Status: &status, PaidDate: &now})

	ds.SendPaymentReminder(payment.ID)

	var got models.Payment
	for _, p := range ds.Payments() {
		if p.ID == payment.ID {
			got = p
		}
	}
	if got.Status != models.PaymentStatusPaid || got.PaidDate == nil {
		t.Fatalf("expected paid payment with date, got %+v", got)
	}
	if !got.ReminderSent {
		t.Fatal("expected reminder flag set")
	}
}

func TestUpdateSettingsShallowMerge(t *testing.T) {
	ds, _, _ := fixtureDataStore(t)

	rate := 10.0
	ds.UpdateSettings(SettingsUpdate{ElectricityRate: &rate})

	settings := ds.Settings()
	if settings.ElectricityRate != 10 {
		t.Fatalf("expected electricity rate 10, got %v", settings.ElectricityRate)
	}
	if settings.TotalRooms != 20 {
		t.Fatalf("expected untouched total rooms 20, got %d", settings.TotalRooms)
	}
}

func strPtr(s string) *string { return &s }
