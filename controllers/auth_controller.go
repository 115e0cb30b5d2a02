package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/pkg/resp"
	"github.com/SciSaif/seller-app/services"
	"github.com/SciSaif/seller-app/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /api/v1/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/v1/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.auth.GetProfile(c.Request.Context(), utils.CurrentUserID(c))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "user not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /api/v1/auth/me
func (ctl *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Mobile != "" {
		updates["mobile"] = req.Mobile
	}

	user, err := ctl.auth.UpdateProfile(c.Request.Context(), utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
