package services

import (
	"testing"

	"rentease-server/models"
)

func newAuthFixture(t *testing.T) (*AuthService, *DataStore) {
	t.Helper()
	mem := emptyMemoryStore(t)
	ds := NewDataStore(mem)
	return NewAuthService(mem, ds), ds
}

func TestLoginBuiltinAdmin(t *testing.T) {
	auth, _ := newAuthFixture(t)

	user, ok := auth.Login("admin@rentease.com", "admin123")
	if !ok {
		t.Fatal("expected builtin admin login to succeed")
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}

	if _, ok := auth.Login("admin@rentease.com", "wrong"); ok {
		t.Fatal("expected wrong password to fail for builtin account")
	}
}

func TestLoginBuiltinEmailMatchedExactly(t *testing.T) {
	auth, _ := newAuthFixture(t)
	// Built-in emails are compared verbatim; a case variant is not a match.
	if _, ok := auth.Login("Admin@RentEase.com", "admin123"); ok {
		t.Fatal("expected case-variant email to miss the builtin list")
	}
}

func TestLoginTenantFallbackIgnoresPassword(t *testing.T) {
	auth, ds := newAuthFixture(t)
	tenant := ds.AddTenant(models.Tenant{FirstName: "Asha", LastName: "Iyer", Email: "asha@example.com", RoomNumber: 201, IsActive: true})

	// Provisioned tenants sign in by email alone; any password passes.
	user, ok := auth.Login("asha@example.com", "anything-at-all")
	if !ok {
		t.Fatal("expected tenant fallback login to succeed")
	}
	if user.Role != models.RoleTenant || user.ID != tenant.ID || user.RoomNumber != 201 {
		t.Fatalf("unexpected session user %+v", user)
	}
}

func TestLoginUnknownEmailFails(t *testing.T) {
	auth, _ := newAuthFixture(t)
	if _, ok := auth.Login("nobody@example.com", "whatever"); ok {
		t.Fatal("expected unknown email to fail")
	}
}

func TestSessionPersistsAndClears(t *testing.T) {
	auth, _ := newAuthFixture(t)
	auth.Login("admin@rentease.com", "admin123")

	user, ok := auth.CurrentSession()
	if !ok || user.Email != "admin@rentease.com" {
		t.Fatalf("expected persisted admin session, got %+v ok=%v", user, ok)
	}

	auth.Logout()
	if _, ok := auth.CurrentSession(); ok {
		t.Fatal("expected no session after logout")
	}
}
