package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/pkg/resp"
	"github.com/SciSaif/seller-app/services"
	"github.com/SciSaif/seller-app/utils"
)

type CustomMenuController struct {
	menus *services.CustomMenuService
}

func NewCustomMenuController(menus *services.CustomMenuService) *CustomMenuController {
	return &CustomMenuController{menus: menus}
}

// GET /api/v1/custom-menus
func (ctl *CustomMenuController) List(c *gin.Context) {
	menus, err := ctl.menus.ListByOrg(c.Request.Context(), utils.CurrentOrganizationID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /api/v1/custom-menus/:id
func (ctl *CustomMenuController) Get(c *gin.Context) {
	menu, err := ctl.menus.Get(c.Request.Context(), c.Param("id"))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "custom menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /api/v1/custom-menus
func (ctl *CustomMenuController) Create(c *gin.Context) {
	var menu entity.CustomMenu
	if err := c.ShouldBindJSON(&menu); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu.OrganizationID = utils.CurrentOrganizationID(c)

	if err := ctl.menus.Create(c.Request.Context(), &menu); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, menu)
}

// PATCH /api/v1/custom-menus/:id
func (ctl *CustomMenuController) Update(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(updates, "id")
	delete(updates, "organization_id")

	err := ctl.menus.Update(c.Request.Context(), c.Param("id"), updates)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "custom menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "custom menu updated"})
}

// DELETE /api/v1/custom-menus/:id
func (ctl *CustomMenuController) Delete(c *gin.Context) {
	if err := ctl.menus.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "custom menu deleted"})
}

// PUT /api/v1/custom-menus/:id/timings
func (ctl *CustomMenuController) SetTiming(c *gin.Context) {
	var req struct {
		Timings []entity.TimingEntry `json:"timings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	timing := &entity.CustomMenuTiming{
		CustomMenuID: c.Param("id"),
		Timings:      req.Timings,
	}
	err := ctl.menus.SetTiming(c.Request.Context(), timing)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "custom menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, timing)
}

// POST /api/v1/custom-menus/:id/products
func (ctl *CustomMenuController) AssignProduct(c *gin.Context) {
	var req struct {
		Product string `json:"product" binding:"required"`
		Seq     int    `json:"seq"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	row := &entity.CustomMenuProduct{
		CustomMenuID: c.Param("id"),
		ProductID:    req.Product,
		Seq:          req.Seq,
	}
	err := ctl.menus.AssignProduct(c.Request.Context(), row)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "custom menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

// DELETE /api/v1/custom-menus/:id/products/:productId
func (ctl *CustomMenuController) UnassignProduct(c *gin.Context) {
	err := ctl.menus.UnassignProduct(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product removed from custom menu"})
}
