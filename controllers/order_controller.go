package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/pkg/resp"
	"github.com/SciSaif/seller-app/services"
	"github.com/SciSaif/seller-app/utils"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// GET /api/v1/orders
func (ctl *OrderController) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, count, err := ctl.orders.ListByOrg(c.Request.Context(), utils.CurrentOrganizationID(c), offset, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count, "orders": orders})
}

// GET /api/v1/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	order, err := ctl.orders.Get(c.Request.Context(), c.Param("id"))
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/v1/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var order entity.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order.OrganizationID = utils.CurrentOrganizationID(c)
	order.CreatedBy = utils.CurrentUserID(c)

	if err := ctl.orders.Create(c.Request.Context(), &order); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// PATCH /api/v1/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(updates, "id")

	err := ctl.orders.Update(c.Request.Context(), c.Param("id"), updates)
	if apperr.IsNotFound(err) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order updated"})
}
