package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/pkg/resp"
	"github.com/SciSaif/seller-app/repository"
	"github.com/SciSaif/seller-app/services"
)

type OrganizationController struct {
	orgs *services.OrganizationService
}

func NewOrganizationController(orgs *services.OrganizationService) *OrganizationController {
	return &OrganizationController{orgs: orgs}
}

// POST /api/v1/organizations
func (ctl *OrganizationController) Create(c *gin.Context) {
	var input services.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	org, user, err := ctl.orgs.Create(c.Request.Context(), input)
	if apperr.IsDuplicate(err) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"providerDetail": org, "user": user})
}

// GET /api/v1/organizations
func (ctl *OrganizationController) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orgs, count, err := ctl.orgs.List(c.Request.Context(), repository.ListParams{
		Name:      c.Query("name"),
		Mobile:    c.Query("mobile"),
		Email:     c.Query("email"),
		StoreName: c.Query("storeName"),
		Offset:    offset,
		Limit:     limit,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count, "organizations": orgs})
}

// GET /api/v1/organizations/:id
func (ctl *OrganizationController) Get(c *gin.Context) {
	org, user, err := ctl.orgs.Get(c.Request.Context(), c.Param("id"))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "organization not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"providerDetail": org, "user": user})
}

// PATCH /api/v1/organizations/:id
func (ctl *OrganizationController) Update(c *gin.Context) {
	var input services.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.orgs.Update(c.Request.Context(), c.Param("id"), input)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "organization not found")
		return
	}
	if apperr.IsDuplicate(err) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, input)
}

// GET /api/v1/organizations/:id/store
func (ctl *OrganizationController) GetStoreDetails(c *gin.Context) {
	details, err := ctl.orgs.GetStoreDetails(c.Request.Context(), c.Param("id"))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "organization not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, details)
}

// PUT /api/v1/organizations/:id/store
func (ctl *OrganizationController) SetStoreDetails(c *gin.Context) {
	var details entity.StoreDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.orgs.SetStoreDetails(c.Request.Context(), c.Param("id"), &details)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "organization not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, details)
}
