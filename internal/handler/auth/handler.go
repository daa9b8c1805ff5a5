package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/auth"
	"github.com/jwalitptl/hospital-admin/internal/view"
)

const (
	MsgLoginSuccess = "Login Successful"
	MsgLoginFailed  = "Invalid Username or Password"
	MsgLoggedOut    = "You have been logged out"
)

type Handler struct {
	svc auth.AuthService
	*handler.BaseHandler
}

func NewHandler(svc auth.AuthService, base *handler.BaseHandler) *Handler {
	return &Handler{svc: svc, BaseHandler: base}
}

// RegisterRoutes mounts the login flow on public and the session pages on protected.
func (h *Handler) RegisterRoutes(public, protected gin.IRoutes, loginLimit gin.HandlerFunc) {
	public.GET("/", h.Index)
	public.GET("/login", h.LoginPage)
	public.POST("/login", loginLimit, h.Login)

	protected.GET("/logout", h.Logout)
	protected.GET("/dashboard", h.Dashboard)
}

func (h *Handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginPage(c *gin.Context) {
	h.RenderOK(c, view.Login, nil)
}

// Login authenticates the form credentials. A failed attempt re-renders the
// form with an error notice and leaves the session anonymous.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c)
		return
	}

	admin, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Info().Str("username", req.Username).Str("client_ip", c.ClientIP()).Msg("Login rejected")
		h.loginFailed(c)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.Sessions.Authenticate(c, admin.Username); err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.Sessions.AddFlash(c, model.FlashSuccess, MsgLoginSuccess); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) loginFailed(c *gin.Context) {
	if err := h.Sessions.AddFlash(c, model.FlashDanger, MsgLoginFailed); err != nil {
		_ = c.Error(err)
		return
	}
	h.RenderOK(c, view.Login, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Clear(c); err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.Sessions.AddFlash(c, model.FlashInfo, MsgLoggedOut); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Dashboard(c *gin.Context) {
	h.RenderOK(c, view.Dashboard, nil)
}
