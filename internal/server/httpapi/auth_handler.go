package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/securepass/securepass/internal/server/services"
	"github.com/securepass/securepass/internal/shared"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing fields"})
		return
	}

	res, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, errorResponse{Message: "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		User:  userPayload{ID: res.User.ID, Name: res.User.Name, Email: res.User.Email},
		Token: res.Token,
	})
}

// Login handles POST /api/auth/login. An unknown email and a wrong
// password return the identical response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing credentials"})
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		User:  userPayload{ID: res.User.ID, Name: res.User.Name, Email: res.User.Email},
		Token: res.Token,
	})
}
