package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/appointment"
	"github.com/jwalitptl/hospital-admin/internal/view"
	"github.com/jwalitptl/hospital-admin/pkg/validator"
)

type Handler struct {
	service appointment.AppointmentService
	*handler.BaseHandler
}

func NewHandler(service appointment.AppointmentService, base *handler.BaseHandler) *Handler {
	return &Handler{service: service, BaseHandler: base}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/appointments", h.ListAppointments)
	r.POST("/add_appointment", h.CreateAppointment)
}

// ListAppointments shows the joined appointment rows and the patient and
// doctor choices for the add form.
func (h *Handler) ListAppointments(c *gin.Context) {
	listing, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.RenderOK(c, view.Appointments, listing)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(validator.FromBinding(err))
		return
	}

	if _, err := h.service.CreateAppointment(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/appointments")
}
