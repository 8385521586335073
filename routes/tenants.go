package routes

import (
	"time"

	"rentease-server/models"
	"rentease-server/services"
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/tenants
func GetTenants(ctx iris.Context) {
	ctx.JSON(iris.Map{"data": data.Tenants(), "meta": iris.Map{}, "links": iris.Map{}})
}

// POST /api/admin/tenants
func CreateTenant(ctx iris.Context) {
	var input CreateTenantInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	now := time.Now()
	tenant := data.AddTenant(models.Tenant{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Landmark:      input.Landmark,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		AadhaarNumber: input.AadhaarNumber,
		TokenMoney:    input.TokenMoney,
		RoomNumber:    input.RoomNumber,
		Documents: slotDocuments(TenantSlotInput{
			AddressProofName: input.AddressProofName,
			IDProofName:      input.IDProofName,
		}, now),
		DocumentsVerified: false,
		JoinDate:          now,
		IsActive:          true,
	})

	utils.Audit(ctx, "tenants.create", "tenant", tenant.ID, iris.Map{"email": tenant.Email, "roomNumber": tenant.RoomNumber})
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(tenant)
}

// PATCH /api/admin/tenants/{id}
// Merges into the flat collection; the copy embedded in the owning room is
// not touched.
func UpdateTenant(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var update services.TenantUpdate
	if err := ctx.ReadJSON(&update); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	data.UpdateTenant(id, update)
	utils.Audit(ctx, "tenants.update", "tenant", id, update)
	ctx.JSON(iris.Map{"success": true})
}

// DELETE /api/admin/tenants/{id}
func RemoveTenant(ctx iris.Context) {
	id := ctx.Params().Get("id")
	data.RemoveTenant(id)
	utils.Audit(ctx, "tenants.remove", "tenant", id, nil)
	ctx.StatusCode(iris.StatusNoContent)
}

// POST /api/admin/tenants/{id}/checkout
// Moves the tenant to history with the sum of their paid payments, then
// removes them from the active collections.
func CheckoutTenant(ctx iris.Context) {
	id := ctx.Params().Get("id")
	data.MoveTenantToHistory(id)
	utils.Audit(ctx, "tenants.checkout", "tenant", id, nil)
	ctx.JSON(iris.Map{"success": true})
}
