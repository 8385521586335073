package routes

import "github.com/kataras/iris/v12"

// GET /api/admin/history
func GetTenantHistory(ctx iris.Context) {
	ctx.JSON(iris.Map{"data": data.History(), "meta": iris.Map{}, "links": iris.Map{}})
}
