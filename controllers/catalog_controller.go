package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/pkg/resp"
	"github.com/SciSaif/seller-app/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GET /api/v1/ondc/catalog?organization=<id>
//
// Returns the raw provider array; the catalog ingestion API consumes
// this shape directly, so no response envelope is applied.
func (ctl *CatalogController) GetProviders(c *gin.Context) {
	providers, err := ctl.catalog.BuildProviders(c.Request.Context(), c.Query("organization"))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}
