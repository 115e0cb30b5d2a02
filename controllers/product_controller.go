package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/pkg/resp"
	"github.com/SciSaif/seller-app/services"
	"github.com/SciSaif/seller-app/utils"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// GET /api/v1/products
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.products.ListByOrg(c.Request.Context(), utils.CurrentOrganizationID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(products), "products": products})
}

// GET /api/v1/products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	product, err := ctl.products.Get(c.Request.Context(), c.Param("id"))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /api/v1/products
func (ctl *ProductController) Create(c *gin.Context) {
	var product entity.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product.OrganizationID = utils.CurrentOrganizationID(c)

	if err := ctl.products.Create(c.Request.Context(), &product); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, product)
}

// PATCH /api/v1/products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(updates, "id")
	delete(updates, "organization_id")

	err := ctl.products.Update(c.Request.Context(), c.Param("id"), updates)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product updated"})
}

// DELETE /api/v1/products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	if err := ctl.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product deleted"})
}

// PATCH /api/v1/products/:id/publish
func (ctl *ProductController) SetPublished(c *gin.Context) {
	var req struct {
		Published bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.products.SetPublished(c.Request.Context(), c.Param("id"), req.Published); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product publish state updated"})
}
