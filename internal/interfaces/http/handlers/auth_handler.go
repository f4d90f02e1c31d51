package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"nika-sop.backend/internal/domain/entities"
	domainerrors "nika-sop.backend/internal/domain/errors"
	"nika-sop.backend/internal/interfaces/http/middleware"
	"nika-sop.backend/internal/interfaces/http/response"
	"nika-sop.backend/internal/usecases"
)

// AuthHandler handles registration, activation and session endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	cookieMaxAge int
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieMaxAge: int(sessionExpiry.Seconds()),
	}
}

// RegisterForm renders the registration form
// GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	response.Page(c, "register.html", gin.H{"Message": "", "Success": true})
}

// Register handles account creation
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		response.Page(c, "register.html", gin.H{
			"Message": "Please provide a valid email and password.",
			"Success": false,
		})
		return
	}

	if _, err := h.authUsecase.Register(c.Request.Context(), &input); err != nil {
		msg := "Registration failed. Please try again."
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			msg = "Email already registered."
		}
		response.Page(c, "register.html", gin.H{"Message": msg, "Success": false})
		return
	}

	response.Page(c, "register.html", gin.H{
		"Message": "Registration successful! Please check your email to activate your account.",
		"Success": true,
	})
}

// Activate handles the single-use activation link
// GET /activate?token=...
func (h *AuthHandler) Activate(c *gin.Context) {
	token := c.Query("token")
	if err := h.authUsecase.Activate(c.Request.Context(), token); err != nil {
		response.Page(c, "activate.html", gin.H{
			"Message": "Invalid or expired activation token.",
		})
		return
	}
	response.Page(c, "activate.html", gin.H{
		"Message": "Your account has been activated! You can now log in.",
	})
}

// LoginForm renders the login form
// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	response.Page(c, "login.html", gin.H{"Message": "", "Success": true})
}

// Login establishes a session
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		response.Page(c, "login.html", gin.H{
			"Message": "Invalid credentials or account not activated.",
			"Success": false,
		})
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Page(c, "login.html", gin.H{
			"Message": "Invalid credentials or account not activated.",
			"Success": false,
		})
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", false, true)
	response.Redirect(c, "/")
}

// Logout clears the session cookie
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Redirect(c, "/")
}
