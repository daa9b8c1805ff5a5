package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/session"
)

// Page is what every HTML template receives.
type Page struct {
	Username string
	Flashes  []model.Flash
	Data     interface{}
}

// BaseHandler carries what all page handlers share.
type BaseHandler struct {
	Sessions *session.Manager
}

func NewBaseHandler(sessions *session.Manager) *BaseHandler {
	return &BaseHandler{Sessions: sessions}
}

// Render shows a page as HTML, or as the JSON envelope when the client
// accepts application/json. Pending flashes are consumed either way.
func (h *BaseHandler) Render(c *gin.Context, status int, template string, data interface{}) {
	username, _ := session.IdentityFromContext(c.Request.Context())
	flashes := h.Sessions.Flashes(c)

	resp := NewSuccessResponse(data)
	resp.Flashes = flashes

	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: template,
		HTMLData: Page{Username: username, Flashes: flashes, Data: data},
		JSONData: resp,
	})
}

// RenderOK is Render with http.StatusOK.
func (h *BaseHandler) RenderOK(c *gin.Context, template string, data interface{}) {
	h.Render(c, http.StatusOK, template, data)
}
