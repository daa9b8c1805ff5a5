package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/doctor"
	"github.com/jwalitptl/hospital-admin/internal/view"
	"github.com/jwalitptl/hospital-admin/pkg/validator"
)

type Handler struct {
	service doctor.DoctorService
	*handler.BaseHandler
}

func NewHandler(service doctor.DoctorService, base *handler.BaseHandler) *Handler {
	return &Handler{service: service, BaseHandler: base}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/doctors", h.ListDoctors)
	r.POST("/add_doctor", h.CreateDoctor)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.RenderOK(c, view.Doctors, gin.H{"doctors": doctors})
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(validator.FromBinding(err))
		return
	}

	if _, err := h.service.CreateDoctor(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/doctors")
}
