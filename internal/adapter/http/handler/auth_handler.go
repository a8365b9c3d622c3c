package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewpulse/sentiment-api/internal/usecase"
)

// AuthHandler handles registration, login and current-user requests
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// LoginInput is the form body accepted by the login endpoint
type LoginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input usecase.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleMalformedBody(c, err)
		return
	}

	output, err := h.authUC.Register(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, output)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		HandleMalformedBody(c, err)
		return
	}

	output, err := h.authUC.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "MISSING_TOKEN", "missing bearer token")
		return
	}

	respondSuccess(c, http.StatusOK, user)
}
