package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/patient"
	"github.com/jwalitptl/hospital-admin/internal/view"
	"github.com/jwalitptl/hospital-admin/pkg/validator"
)

type Handler struct {
	service patient.PatientService
	*handler.BaseHandler
}

func NewHandler(service patient.PatientService, base *handler.BaseHandler) *Handler {
	return &Handler{service: service, BaseHandler: base}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/patients", h.ListPatients)
	r.POST("/add_patient", h.CreatePatient)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.RenderOK(c, view.Patients, gin.H{"patients": patients})
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(validator.FromBinding(err))
		return
	}

	if _, err := h.service.CreatePatient(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/patients")
}
