package routes

import (
	"rentease-server/models"
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
)

// The tenant portal scopes everything to the signed-in tenant via the access
// token claims. Builtin demo accounts without a matching tenant record get
// empty results rather than errors.

// GET /api/tenant/dashboard
func GetTenantDashboard(ctx iris.Context) {
	claims := utils.CurrentUser(ctx)
	if claims == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		return
	}

	tenant, found := data.FindTenantByID(claims.ID)
	if !found {
		tenant, found = data.FindTenantByEmail(claims.Email)
	}
	if !found {
		ctx.JSON(iris.Map{"tenant": nil, "room": nil, "pendingPayments": []models.Payment{}})
		return
	}

	var room *models.Room
	if r, ok := data.FindRoomByNumber(tenant.RoomNumber); ok {
		room = &r
	}

	pending := make([]models.Payment, 0)
	for _, p := range data.Payments() {
		if p.TenantID == tenant.ID && p.Status == models.PaymentStatusPending {
			pending = append(pending, p)
		}
	}

	ctx.JSON(iris.Map{
		"tenant":          tenant,
		"room":            room,
		"pendingPayments": pending,
	})
}

// GET /api/tenant/payments
func GetTenantPayments(ctx iris.Context) {
	claims := utils.CurrentUser(ctx)
	if claims == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		return
	}

	payments := make([]models.Payment, 0)
	for _, p := range data.Payments() {
		if p.TenantID == claims.ID {
			payments = append(payments, p)
		}
	}
	ctx.JSON(iris.Map{"data": payments, "meta": iris.Map{}, "links": iris.Map{}})
}

// GET /api/tenant/documents
func GetTenantDocuments(ctx iris.Context) {
	claims := utils.CurrentUser(ctx)
	if claims == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		return
	}

	tenant, found := data.FindTenantByID(claims.ID)
	if !found {
		tenant, found = data.FindTenantByEmail(claims.Email)
	}
	if !found {
		ctx.JSON(iris.Map{"documents": []models.Document{}, "documentsVerified": false})
		return
	}

	ctx.JSON(iris.Map{
		"documents":         tenant.Documents,
		"documentsVerified": tenant.DocumentsVerified,
	})
}
