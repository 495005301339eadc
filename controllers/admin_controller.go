package controllers

import (
	"strconv"

	"github.com/doker312/aroras-kitchen-orderflow-app/pkg/resp"
	"github.com/doker312/aroras-kitchen-orderflow-app/services"

	"github.com/gin-gonic/gin"
)

// AdminController: catalog mutation and the full order ledger. Route
// group is gated to the admin role; handlers assume it.
type AdminController struct {
	Menu   *services.MenuService
	Orders *services.OrderService
}

func NewAdminController(menu *services.MenuService, orders *services.OrderService) *AdminController {
	return &AdminController{Menu: menu, Orders: orders}
}

// POST /admin/menu
func (h *AdminController) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.Menu.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /admin/menu/:id
func (h *AdminController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.UpdateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.Menu.Update(uint(id), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /admin/menu/:id
func (h *AdminController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := h.Menu.Delete(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /admin/orders?status=&limit=
func (h *AdminController) ListOrders(c *gin.Context) {
	var statusID *uint
	if raw := c.Query("status"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid status id")
			return
		}
		id := uint(v)
		statusID = &id
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	orders, err := h.Orders.ListAll(statusID, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orders/:id
func (h *AdminController) OrderDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	detail, err := h.Orders.Detail(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /admin/orders/:id/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	detail, err := h.Orders.Transition(uint(id), body.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, detail)
}
