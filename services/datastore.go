package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"rentease-server/models"
	"rentease-server/storage"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Storage keys, one serialized collection per key.
const (
	KeyRooms    = "rentease_rooms"
	KeyTenants  = "rentease_tenants"
	KeyPayments = "rentease_payments"
	KeyHistory  = "rentease_history"
	KeySettings = "rentease_settings"
	KeySession  = "rentease_user"
)

// DataStore is the single authority for all mutable business entities. Every
// mutation rewrites the touched collections to the backing store as whole
// JSON values. Lookups that miss are silent no-ops; mutators never fail from
// the caller's point of view.
type DataStore struct {
	mu       sync.RWMutex
	store    storage.Store
	rooms    []models.Room
	tenants  []models.Tenant
	payments []models.Payment
	history  []models.TenantHistory
	settings models.Settings
}

func NewDataStore(store storage.Store) *DataStore {
	ds := &DataStore{
		store:    store,
		rooms:    []models.Room{},
		tenants:  []models.Tenant{},
		payments: []models.Payment{},
		history:  []models.TenantHistory{},
		settings: models.DefaultSettings(),
	}
	ds.load()

	if len(ds.rooms) == 0 && len(ds.tenants) == 0 {
		ds.seed()
		ds.persist(KeyRooms)
		ds.persist(KeyTenants)
		ds.persist(KeyPayments)
	}
	return ds
}

func (ds *DataStore) load() {
	loadCollection(ds.store, KeyRooms, &ds.rooms)
	loadCollection(ds.store, KeyTenants, &ds.tenants)
	loadCollection(ds.store, KeyPayments, &ds.payments)
	loadCollection(ds.store, KeyHistory, &ds.history)
	loadCollection(ds.store, KeySettings, &ds.settings)
}

func loadCollection(store storage.Store, key string, target interface{}) {
	data, err := store.Get(key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("Warning: failed to read %s: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		log.Printf("Warning: failed to decode %s: %v", key, err)
	}
}

// persist mirrors one collection to the store. Callers must hold the lock.
// Storage failures are logged and swallowed; callers always observe success.
func (ds *DataStore) persist(key string) {
	var value interface{}
	switch key {
	case KeyRooms:
		value = ds.rooms
	case KeyTenants:
		value = ds.tenants
	case KeyPayments:
		value = ds.payments
	case KeyHistory:
		value = ds.history
	case KeySettings:
		value = ds.settings
	default:
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Warning: failed to encode %s: %v", key, err)
		return
	}
	if err := ds.store.Put(key, data); err != nil {
		log.Printf("Warning: failed to write %s: %v", key, err)
	}
}

// cloneTenant copies the tenant along with its documents so callers never
// share a backing array with the stored record.
func cloneTenant(t models.Tenant) models.Tenant {
	t.Documents = append([]models.Document(nil), t.Documents...)
	return t
}

func cloneTenants(ts []models.Tenant) []models.Tenant {
	out := make([]models.Tenant, len(ts))
	for i, t := range ts {
		out[i] = cloneTenant(t)
	}
	return out
}

// Snapshots

func (ds *DataStore) Rooms() []models.Room {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	rooms := make([]models.Room, len(ds.rooms))
	copy(rooms, ds.rooms)
	for i := range rooms {
		rooms[i].Tenants = cloneTenants(rooms[i].Tenants)
	}
	return rooms
}

func (ds *DataStore) Tenants() []models.Tenant {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return cloneTenants(ds.tenants)
}

func (ds *DataStore) Payments() []models.Payment {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	payments := make([]models.Payment, len(ds.payments))
	copy(payments, ds.payments)
	return payments
}

func (ds *DataStore) History() []models.TenantHistory {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	history := make([]models.TenantHistory, len(ds.history))
	copy(history, ds.history)
	return history
}

func (ds *DataStore) Settings() models.Settings {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.settings
}

// FindTenantByID returns the active tenant with the given id.
func (ds *DataStore) FindTenantByID(id string) (models.Tenant, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	i := slices.IndexFunc(ds.tenants, func(t models.Tenant) bool { return t.ID == id })
	if i < 0 {
		return models.Tenant{}, false
	}
	return cloneTenant(ds.tenants[i]), true
}

// FindTenantByEmail is used by the tenant login fallback.
func (ds *DataStore) FindTenantByEmail(email string) (models.Tenant, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	i := slices.IndexFunc(ds.tenants, func(t models.Tenant) bool { return t.Email == email })
	if i < 0 {
		return models.Tenant{}, false
	}
	return cloneTenant(ds.tenants[i]), true
}

func (ds *DataStore) FindRoomByNumber(number int) (models.Room, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	i := slices.IndexFunc(ds.rooms, func(r models.Room) bool { return r.RoomNumber == number })
	if i < 0 {
		return models.Room{}, false
	}
	room := ds.rooms[i]
	room.Tenants = cloneTenants(room.Tenants)
	return room, true
}

// GetRent looks the monthly rent up in the settings rate table. Pure, total.
func (ds *DataStore) GetRent(roomType string, isAC bool) float64 {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.settings.RentRates.RateFor(roomType, isAC)
}

// Partial updates. Nil fields are left untouched.

type RoomUpdate struct {
	Type       *string  `json:"type"`
	IsAC       *bool    `json:"isAC"`
	Rent       *float64 `json:"rent"`
	IsOccupied *bool    `json:"isOccupied"`
}

type TenantUpdate struct {
	FirstName     *string  `json:"firstName"`
	LastName      *string  `json:"lastName"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Landmark      *string  `json:"landmark"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	Pincode       *string  `json:"pincode"`
	AadhaarNumber *string  `json:"aadhaarNumber"`
	TokenMoney    *float64 `json:"tokenMoney"`
	IsActive      *bool    `json:"isActive"`
}

type PaymentUpdate struct {
	Status       *string    `json:"status"`
	PaidDate     *time.Time `json:"paidDate"`
	ReminderSent *bool      `json:"reminderSent"`
}

type SettingsUpdate struct {
	TotalRooms      *int              `json:"totalRooms"`
	ElectricityRate *float64          `json:"electricityRate"`
	RentRates       *models.RentRates `json:"rentRates"`
}

// InitializeRooms replaces the whole room collection with count fresh single
// non-AC rooms numbered from 101. Tenants and payments are left alone, so
// existing room references may dangle afterwards.
func (ds *DataStore) InitializeRooms(count int) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	rooms := make([]models.Room, 0, count)
	for i := 1; i <= count; i++ {
		rooms = append(rooms, models.Room{
			ID:         uuid.NewString(),
			RoomNumber: 100 + i,
			Type:       models.RoomTypeSingle,
			IsAC:       false,
			Rent:       ds.settings.RentRates.SingleNonAC,
			IsOccupied: false,
			Tenants:    []models.Tenant{},
		})
	}
	ds.rooms = rooms
	ds.settings.TotalRooms = count
	ds.persist(KeyRooms)
	ds.persist(KeySettings)
}

func (ds *DataStore) AddRoom(room models.Room) models.Room {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	room.ID = uuid.NewString()
	if room.Tenants == nil {
		room.Tenants = []models.Tenant{}
	}
	ds.rooms = append(ds.rooms, room)
	ds.persist(KeyRooms)
	return room
}

func (ds *DataStore) UpdateRoom(id string, update RoomUpdate) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := slices.IndexFunc(ds.rooms, func(r models.Room) bool { return r.ID == id })
	if i < 0 {
		return
	}
	room := &ds.rooms[i]
	if update.Type != nil {
		room.Type = *update.Type
	}
	if update.IsAC != nil {
		room.IsAC = *update.IsAC
	}
	if update.Rent != nil {
		room.Rent = *update.Rent
	}
	if update.IsOccupied != nil {
		room.IsOccupied = *update.IsOccupied
	}
	ds.persist(KeyRooms)
}

// AddTenant appends to the flat collection and to the embedded list of the
// room matching by room number, flipping that room to occupied. When no room
// carries the number the tenant is still added and the room side is skipped.
func (ds *DataStore) AddTenant(tenant models.Tenant) models.Tenant {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	tenant.ID = uuid.NewString()
	if tenant.Documents == nil {
		tenant.Documents = []models.Document{}
	}
	ds.tenants = append(ds.tenants, tenant)

	i := slices.IndexFunc(ds.rooms, func(r models.Room) bool { return r.RoomNumber == tenant.RoomNumber })
	if i >= 0 {
		ds.rooms[i].IsOccupied = true
		// The embedded copy gets its own documents array; verification on the
		// flat record must not bleed into it.
		ds.rooms[i].Tenants = append(ds.rooms[i].Tenants, cloneTenant(tenant))
	}
	ds.persist(KeyTenants)
	ds.persist(KeyRooms)
	return tenant
}

// UpdateTenant merges into the flat collection only; the embedded copy inside
// the owning room is not rewritten.
func (ds *DataStore) UpdateTenant(id string, update TenantUpdate) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := slices.IndexFunc(ds.tenants, func(t models.Tenant) bool { return t.ID == id })
	if i < 0 {
		return
	}
	tenant := &ds.tenants[i]
	if update.FirstName != nil {
		tenant.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		tenant.LastName = *update.LastName
	}
	if update.Email != nil {
		tenant.Email = *update.Email
	}
	if update.Phone != nil {
		tenant.Phone = *update.Phone
	}
	if update.Landmark != nil {
		tenant.Landmark = *update.Landmark
	}
	if update.City != nil {
		tenant.City = *update.City
	}
	if update.State != nil {
		tenant.State = *update.State
	}
	if update.Pincode != nil {
		tenant.Pincode = *update.Pincode
	}
	if update.AadhaarNumber != nil {
		tenant.AadhaarNumber = *update.AadhaarNumber
	}
	if update.TokenMoney != nil {
		tenant.TokenMoney = *update.TokenMoney
	}
	if update.IsActive != nil {
		tenant.IsActive = *update.IsActive
	}
	ds.persist(KeyTenants)
}

// RemoveTenant drops the tenant from the flat collection and from its room's
// embedded list. The room reads as occupied only when more than one tenant
// remains afterwards; a room left with exactly one tenant is marked vacant.
// The save flow recomputes the flag, which is why this never shows in the UI
// path.
func (ds *DataStore) RemoveTenant(id string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.removeTenantLocked(id)
}

func (ds *DataStore) removeTenantLocked(id string) {
	i := slices.IndexFunc(ds.tenants, func(t models.Tenant) bool { return t.ID == id })
	if i < 0 {
		return
	}
	tenant := ds.tenants[i]
	ds.tenants = append(ds.tenants[:i], ds.tenants[i+1:]...)

	ri := slices.IndexFunc(ds.rooms, func(r models.Room) bool { return r.RoomNumber == tenant.RoomNumber })
	if ri >= 0 {
		room := &ds.rooms[ri]
		remaining := make([]models.Tenant, 0, len(room.Tenants))
		for _, t := range room.Tenants {
			if t.ID != id {
				remaining = append(remaining, t)
			}
		}
		room.Tenants = remaining
		room.IsOccupied = len(remaining) > 1
	}
	ds.persist(KeyTenants)
	ds.persist(KeyRooms)
}

func (ds *DataStore) AddPayment(payment models.Payment) models.Payment {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	payment.ID = uuid.NewString()
	ds.payments = append(ds.payments, payment)
	ds.persist(KeyPayments)
	return payment
}

func (ds *DataStore) UpdatePayment(id string, update PaymentUpdate) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := slices.IndexFunc(ds.payments, func(p models.Payment) bool { return p.ID == id })
	if i < 0 {
		return
	}
	payment := &ds.payments[i]
	if update.Status != nil {
		payment.Status = *update.Status
	}
	if update.PaidDate != nil {
		payment.PaidDate = update.PaidDate
	}
	if update.ReminderSent != nil {
		payment.ReminderSent = *update.ReminderSent
	}
	ds.persist(KeyPayments)
}

// SendPaymentReminder only flags the record; composing and handing off the
// message belongs to the reminder builder.
func (ds *DataStore) SendPaymentReminder(id string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := slices.IndexFunc(ds.payments, func(p models.Payment) bool { return p.ID == id })
	if i < 0 {
		return
	}
	ds.payments[i].ReminderSent = true
	ds.persist(KeyPayments)
}

// VerifyDocument marks one document verified and recomputes the tenant's
// aggregate flag as the AND over all documents.
func (ds *DataStore) VerifyDocument(tenantID, docID string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := slices.IndexFunc(ds.tenants, func(t models.Tenant) bool { return t.ID == tenantID })
	if i < 0 {
		return
	}
	tenant := &ds.tenants[i]
	allVerified := true
	for d := range tenant.Documents {
		if tenant.Documents[d].ID == docID {
			tenant.Documents[d].Verified = true
		}
		if !tenant.Documents[d].Verified {
			allVerified = false
		}
	}
	tenant.DocumentsVerified = allVerified
	ds.persist(KeyTenants)
}

func (ds *DataStore) VerifyAllDocuments(tenantID string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := slices.IndexFunc(ds.tenants, func(t models.Tenant) bool { return t.ID == tenantID })
	if i < 0 {
		return
	}
	tenant := &ds.tenants[i]
	for d := range tenant.Documents {
		tenant.Documents[d].Verified = true
	}
	tenant.DocumentsVerified = true
	ds.persist(KeyTenants)
}

// MoveTenantToHistory snapshots the departing tenant with the sum of their
// paid payments, then removes them from the active collections. When the
// tenant or its room cannot be found nothing happens at all.
func (ds *DataStore) MoveTenantToHistory(tenantID string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ti := slices.IndexFunc(ds.tenants, func(t models.Tenant) bool { return t.ID == tenantID })
	if ti < 0 {
		return
	}
	tenant := ds.tenants[ti]
	ri := slices.IndexFunc(ds.rooms, func(r models.Room) bool { return r.RoomNumber == tenant.RoomNumber })
	if ri < 0 {
		return
	}
	room := ds.rooms[ri]

	var totalPaid float64
	for _, p := range ds.payments {
		if p.TenantID == tenantID && p.Status == models.PaymentStatusPaid {
			totalPaid += p.TotalAmount
		}
	}

	bedLabel := "Single Bed"
	switch room.Type {
	case models.RoomTypeDouble:
		bedLabel = "Double Bed"
	case models.RoomTypeTriple:
		bedLabel = "Triple Bed"
	}
	acLabel := "Non-AC"
	if room.IsAC {
		acLabel = "AC"
	}

	ds.history = append(ds.history, models.TenantHistory{
		ID:            uuid.NewString(),
		TenantName:    tenant.FullName(),
		RoomNumber:    tenant.RoomNumber,
		RoomType:      room.Type,
		IsAC:          room.IsAC,
		JoinDate:      tenant.JoinDate,
		LeaveDate:     time.Now(),
		TotalRentPaid: totalPaid,
		Facilities:    []string{acLabel, bedLabel},
	})
	ds.persist(KeyHistory)

	ds.removeTenantLocked(tenantID)
}

// UpdateSettings shallow-merges; a provided rate table replaces the whole
// table.
func (ds *DataStore) UpdateSettings(update SettingsUpdate) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if update.TotalRooms != nil {
		ds.settings.TotalRooms = *update.TotalRooms
	}
	if update.ElectricityRate != nil {
		ds.settings.ElectricityRate = *update.ElectricityRate
	}
	if update.RentRates != nil {
		ds.settings.RentRates = *update.RentRates
	}
	ds.persist(KeySettings)
}
