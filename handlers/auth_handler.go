package handlers

import (
	"net/http"

	"book-recommendation-api/helper"
	"book-recommendation-api/models"
	"book-recommendation-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "user created", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if h.Helper.GetStatusCode(err) == http.StatusUnauthorized {
			h.Helper.SendUnauthorizedError(c, err.Error())
			return
		}
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendData(c, http.StatusOK, token)
}

// CreateSuperUser registers a privileged account. Only reachable by an
// existing superuser.
func (h *AuthHandler) CreateSuperUser(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	user, err := h.authService.CreateSuperUser(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "superuser created", user)
}
