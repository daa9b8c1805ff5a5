package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/staff"
	"github.com/jwalitptl/hospital-admin/internal/view"
	"github.com/jwalitptl/hospital-admin/pkg/validator"
)

type Handler struct {
	service staff.StaffService
	*handler.BaseHandler
}

func NewHandler(service staff.StaffService, base *handler.BaseHandler) *Handler {
	return &Handler{service: service, BaseHandler: base}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/staff", h.ListStaff)
	r.POST("/add_staff", h.CreateStaff)
}

func (h *Handler) ListStaff(c *gin.Context) {
	members, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.RenderOK(c, view.Staff, gin.H{"staff": members})
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(validator.FromBinding(err))
		return
	}

	if _, err := h.service.CreateStaff(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/staff")
}
