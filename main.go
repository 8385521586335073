package main

import (
	"fmt"
	"log"
	"os"

	"rentease-server/routes"
	"rentease-server/services"
	"rentease-server/storage"
	"rentease-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	var store storage.Store
	if os.Getenv("STORAGE") == "memory" {
		store = storage.NewMemoryStore()
	} else {
		storage.InitializeDB()
		store = storage.NewDatabaseStore(storage.DB)
	}
	storage.InitializeRedis()

	dataStore := services.NewDataStore(store)
	authService := services.NewAuthService(store, dataStore)
	reminderService := services.NewReminderService()
	routes.Initialize(dataStore, authService, reminderService)

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression only
	app.Use(iris.Compression)

	// JWT Verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	// Health check endpoint
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	// Routes
	user := app.Party("/api/user")
	{
		user.Post("/login", routes.Login)
		user.Post("/logout", routes.Logout)
		user.Get("/session", routes.GetSession)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", routes.GetDashboardStats)
		admin.Get("/rooms", routes.GetRooms)
		admin.Post("/rooms", routes.CreateRoom)
		admin.Post("/rooms/initialize", routes.InitializeRooms)
		admin.Post("/rooms/save", routes.SaveRoom)
		admin.Patch("/rooms/{id:string}", routes.UpdateRoom)
		admin.Get("/tenants", routes.GetTenants)
		admin.Post("/tenants", routes.CreateTenant)
		admin.Patch("/tenants/{id:string}", routes.UpdateTenant)
		admin.Delete("/tenants/{id:string}", routes.RemoveTenant)
		admin.Post("/tenants/{id:string}/checkout", routes.CheckoutTenant)
		admin.Post("/tenants/{id:string}/documents/{docId:string}/verify", routes.VerifyDocument)
		admin.Post("/tenants/{id:string}/documents/verify-all", routes.VerifyAllDocuments)
		admin.Get("/documents/pending", routes.GetPendingVerifications)
		admin.Get("/payments", routes.GetPayments)
		admin.Post("/payments", routes.CreatePayment)
		admin.Patch("/payments/{id:string}", routes.UpdatePayment)
		admin.Post("/payments/{id:string}/paid", routes.MarkPaymentPaid)
		admin.Post("/payments/{id:string}/reminder", routes.SendPaymentReminder)
		admin.Get("/history", routes.GetTenantHistory)
		admin.Get("/reports", routes.GetReports)
		admin.Get("/activity", routes.GetAdminActivity)
		admin.Get("/settings", routes.GetSettings)
		admin.Patch("/settings", routes.UpdateSettings)
	}

	tenant := app.Party("/api/tenant", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware)
	{
		tenant.Get("/dashboard", routes.GetTenantDashboard)
		tenant.Get("/payments", routes.GetTenantPayments)
		tenant.Get("/documents", routes.GetTenantDocuments)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, routes.RefreshToken)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
