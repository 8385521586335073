package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"rentease-server/services"
	"rentease-server/storage"
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildTestApp creates a minimal Iris app with the admin routes, a JWT
// verifier and memory-backed services.
func buildTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	store := storage.NewMemoryStore()
	ds := services.NewDataStore(store)
	Initialize(ds, services.NewAuthService(store, ds), services.NewReminderService())

	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/rooms", GetRooms)
		admin.Post("/rooms/initialize", InitializeRooms)
		admin.Patch("/settings", UpdateSettings)
	}

	tenant := app.Party("/api/tenant", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware)
	{
		tenant.Get("/payments", GetTenantPayments)
	}

	// ServeHTTP needs a built router when the app is not started via Listen.
	app.Build()

	return app
}

// signTestToken returns a signed JWT with the given role
func signTestToken(role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: "1", Email: "admin@rentease.com", Role: role})
	return string(token)
}

func TestAdminRoomsRBAC(t *testing.T) {
	app := buildTestApp()

	// No token -> rejected by the verifier
	req := httptest.NewRequest(http.MethodGet, "/api/admin/rooms", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}

	// Tenant role -> 403
	req2 := httptest.NewRequest(http.MethodGet, "/api/admin/rooms", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken("tenant"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for tenant role, got %d", resp2.Code)
	}

	// Admin role -> 200 with the seeded room list
	req3 := httptest.NewRequest(http.MethodGet, "/api/admin/rooms", nil)
	req3.Header.Set("Authorization", "Bearer "+signTestToken("admin"))
	resp3 := httptest.NewRecorder()
	app.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin role, got %d", resp3.Code)
	}

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp3.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode room list: %v", err)
	}
	if len(body.Data) != 20 {
		t.Fatalf("expected 20 seeded rooms, got %d", len(body.Data))
	}
}

func TestTenantPortalRejectsAdmin(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/tenant/payments", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken("admin"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin on tenant route, got %d", resp.Code)
	}
}

func TestInitializeRoomsValidatesCount(t *testing.T) {
	app := buildTestApp()

	payload, _ := json.Marshal(iris.Map{"count": 501})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/rooms/initialize", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+signTestToken("admin"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range count, got %d", resp.Code)
	}
}

func TestUpdateSettingsValidatesTotalRooms(t *testing.T) {
	app := buildTestApp()

	payload, _ := json.Marshal(iris.Map{"totalRooms": 0})
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/settings", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+signTestToken("admin"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero total rooms, got %d", resp.Code)
	}
}
