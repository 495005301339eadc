package controllers

import (
	"strconv"

	"github.com/doker312/aroras-kitchen-orderflow-app/pkg/resp"
	"github.com/doker312/aroras-kitchen-orderflow-app/services"

	"github.com/gin-gonic/gin"
)

// MenuController serves the public, read-only catalog endpoints.
type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu?category=
func (h *MenuController) List(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("category"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid category id")
			return
		}
		categoryID = uint(v)
	}

	items, err := h.Svc.List(categoryID)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	m, err := h.Svc.Get(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, cats)
}
