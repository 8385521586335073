package routes

import (
	"time"

	"rentease-server/models"
	"rentease-server/services"
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/payments?status=pending
func GetPayments(ctx iris.Context) {
	status := ctx.URLParam("status")
	payments := data.Payments()
	if status != "" {
		filtered := make([]models.Payment, 0, len(payments))
		for _, p := range payments {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		payments = filtered
	}
	ctx.JSON(iris.Map{"data": payments, "meta": iris.Map{}, "links": iris.Map{}})
}

// POST /api/admin/payments
// Rent comes from the tenant's current room, electricity from the meter
// delta priced at the configured rate. Name and room number are snapshotted
// onto the record.
func CreatePayment(ctx iris.Context) {
	var input CreatePaymentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.TenantID == "" || input.Month == "" {
		utils.CreateError(iris.StatusBadRequest, "Missing fields", "Please select tenant and month", ctx)
		return
	}

	tenant, found := data.FindTenantByID(input.TenantID)
	if !found {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Tenant not found.", ctx)
		return
	}

	settings := data.Settings()
	rent := settings.RentRates.RateFor(models.RoomTypeSingle, false)
	if room, ok := data.FindRoomByNumber(tenant.RoomNumber); ok {
		rent = room.Rent
	}

	units := input.CurrentReading - input.PreviousReading
	if units < 0 {
		units = 0
	}
	electricity := float64(units) * settings.ElectricityRate

	year := input.Year
	if year == 0 {
		year = time.Now().Year()
	}

	payment := data.AddPayment(models.Payment{
		TenantID:          tenant.ID,
		TenantName:        tenant.FullName(),
		RoomNumber:        tenant.RoomNumber,
		Month:             input.Month,
		Year:              year,
		PreviousReading:   input.PreviousReading,
		CurrentReading:    input.CurrentReading,
		UnitsUsed:         units,
		ElectricityRate:   settings.ElectricityRate,
		ElectricityAmount: electricity,
		Rent:              rent,
		TotalAmount:       rent + electricity,
		Status:            models.PaymentStatusPending,
	})

	utils.Audit(ctx, "payments.create", "payment", payment.ID, iris.Map{"tenantId": tenant.ID, "month": input.Month, "total": payment.TotalAmount})
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(payment)
}

// POST /api/admin/payments/{id}/paid
func MarkPaymentPaid(ctx iris.Context) {
	id := ctx.Params().Get("id")
	status := models.PaymentStatusPaid
	now := time.Now()
	data.UpdatePayment(id, services.PaymentUpdate{Status: &status, PaidDate: &now})
	utils.Audit(ctx, "payments.paid", "payment", id, nil)
	ctx.JSON(iris.Map{"success": true})
}

// PATCH /api/admin/payments/{id}
func UpdatePayment(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var update services.PaymentUpdate
	if err := ctx.ReadJSON(&update); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	data.UpdatePayment(id, update)
	utils.Audit(ctx, "payments.update", "payment", id, update)
	ctx.JSON(iris.Map{"success": true})
}

// POST /api/admin/payments/{id}/reminder
// Builds the WhatsApp handoff link from the tenant's phone number and flags
// the record. The caller opens the link; nothing is dispatched here.
func SendPaymentReminder(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var target models.Payment
	found := false
	for _, p := range data.Payments() {
		if p.ID == id {
			target = p
			found = true
			break
		}
	}
	if !found {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Payment not found.", ctx)
		return
	}

	tenant, ok := data.FindTenantByID(target.TenantID)
	if !ok {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Tenant not found.", ctx)
		return
	}

	reminder := reminders.BuildWhatsAppReminder(tenant.Phone, target.TenantName, target.RoomNumber, target.Month, target.TotalAmount)
	data.SendPaymentReminder(id)

	utils.Audit(ctx, "payments.reminder", "payment", id, iris.Map{"tenantId": tenant.ID})
	ctx.JSON(reminder)
}
