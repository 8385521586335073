package routes

import (
	"rentease-server/models"
	"rentease-server/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/documents/pending
// Active tenants whose aggregate verification flag is still false.
func GetPendingVerifications(ctx iris.Context) {
	pending := make([]models.Tenant, 0)
	for _, t := range data.Tenants() {
		if t.IsActive && !t.DocumentsVerified {
			pending = append(pending, t)
		}
	}
	ctx.JSON(iris.Map{"data": pending, "meta": iris.Map{}, "links": iris.Map{}})
}

// POST /api/admin/tenants/{id}/documents/{docId}/verify
func VerifyDocument(ctx iris.Context) {
	tenantID := ctx.Params().Get("id")
	docID := ctx.Params().Get("docId")

	data.VerifyDocument(tenantID, docID)
	utils.Audit(ctx, "documents.verify", "document", docID, iris.Map{"tenantId": tenantID})
	ctx.JSON(iris.Map{"success": true})
}

// POST /api/admin/tenants/{id}/documents/verify-all
func VerifyAllDocuments(ctx iris.Context) {
	tenantID := ctx.Params().Get("id")

	data.VerifyAllDocuments(tenantID)
	utils.Audit(ctx, "documents.verify-all", "tenant", tenantID, nil)
	ctx.JSON(iris.Map{"success": true})
}
