package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/pkg/resp"
	"github.com/SciSaif/seller-app/services"
	"github.com/SciSaif/seller-app/utils"
)

type CustomizationController struct {
	customizations *services.CustomizationService
}

func NewCustomizationController(customizations *services.CustomizationService) *CustomizationController {
	return &CustomizationController{customizations: customizations}
}

// GET /api/v1/customization-groups
func (ctl *CustomizationController) ListGroups(c *gin.Context) {
	groups, err := ctl.customizations.ListGroups(c.Request.Context(), utils.CurrentOrganizationID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, groups)
}

// GET /api/v1/customization-groups/:id
func (ctl *CustomizationController) GetGroup(c *gin.Context) {
	group, err := ctl.customizations.GetGroup(c.Request.Context(), c.Param("id"))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "customization group not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, group)
}

// POST /api/v1/customization-groups
func (ctl *CustomizationController) CreateGroup(c *gin.Context) {
	var group entity.CustomizationGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	group.OrganizationID = utils.CurrentOrganizationID(c)

	if err := ctl.customizations.CreateGroup(c.Request.Context(), &group); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, group)
}

// PATCH /api/v1/customization-groups/:id
func (ctl *CustomizationController) UpdateGroup(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(updates, "id")
	delete(updates, "organization_id")

	err := ctl.customizations.UpdateGroup(c.Request.Context(), c.Param("id"), updates)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "customization group not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "customization group updated"})
}

// DELETE /api/v1/customization-groups/:id
func (ctl *CustomizationController) DeleteGroup(c *gin.Context) {
	if err := ctl.customizations.DeleteGroup(c.Request.Context(), c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "customization group deleted"})
}

// GET /api/v1/products/:id/customization-mappings
func (ctl *CustomizationController) ListMappings(c *gin.Context) {
	mappings, err := ctl.customizations.ListMappings(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mappings)
}

// PUT /api/v1/products/:id/customization-mappings
func (ctl *CustomizationController) SetMappings(c *gin.Context) {
	var mappings []entity.CustomizationGroupMapping
	if err := c.ShouldBindJSON(&mappings); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orgID := utils.CurrentOrganizationID(c)
	for i := range mappings {
		mappings[i].OrganizationID = orgID
	}

	if err := ctl.customizations.SetMappings(c.Request.Context(), c.Param("id"), mappings); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "customization mappings updated"})
}
