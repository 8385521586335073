package routes

import (
	"rentease-server/services"
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/settings
func GetSettings(ctx iris.Context) {
	ctx.JSON(data.Settings())
}

// PATCH /api/admin/settings
func UpdateSettings(ctx iris.Context) {
	var update services.SettingsUpdate
	if err := ctx.ReadJSON(&update); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if update.TotalRooms != nil && (*update.TotalRooms < 1 || *update.TotalRooms > 500) {
		utils.CreateError(iris.StatusBadRequest, "Invalid room count", "Please enter a number between 1 and 500.", ctx)
		return
	}

	data.UpdateSettings(update)
	utils.Audit(ctx, "settings.update", "settings", "", update)
	ctx.JSON(data.Settings())
}
