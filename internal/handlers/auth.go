package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaard-farm/farm-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

type SetupAdminResponse struct {
	Message     string `json:"message"`
	Credentials string `json:"credentials"`
}

// Login godoc
// @Summary Log in
// @Description Validate a username/password pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} LoginResponse
// @Failure 401 {object} LoginResponse
// @Failure 500 {object} LoginResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, LoginResponse{Success: false, Message: "Username and password required"})
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, LoginResponse{Success: false, Message: "Username and password required"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, LoginResponse{Success: false, Message: "Server error during login"})
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Username: user.Username,
		Role:     user.Role,
	})
}

// SetupAdmin godoc
// @Summary Provision the default admin account
// @Description Create the default admin user if it does not exist. Idempotent.
// @Tags auth
// @Produce json
// @Success 200 {object} SetupAdminResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/setup-admin [post]
func (h *AuthHandler) SetupAdmin(c *gin.Context) {
	created, err := h.authService.ProvisionDefaultAdmin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create admin user"})
		return
	}

	message := "Admin user already exists"
	if created {
		message = "Admin user created successfully"
	}
	c.JSON(http.StatusOK, SetupAdminResponse{
		Message:     message,
		Credentials: "username: admin, password: admin123",
	})
}
