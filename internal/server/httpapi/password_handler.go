package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/securepass/securepass/internal/server/services"
	"github.com/securepass/securepass/internal/shared"
)

// PasswordHandler serves the credential store and share link endpoints.
type PasswordHandler struct {
	credentials *services.CredentialService
	shares      *services.ShareService
}

func NewPasswordHandler(credentials *services.CredentialService, shares *services.ShareService) *PasswordHandler {
	return &PasswordHandler{credentials: credentials, shares: shares}
}

type savePasswordRequest struct {
	Password string `json:"password"`
	Title    string `json:"title"`
	Website  string `json:"website"`
	Username string `json:"username"`
	Notes    string `json:"notes"`
	Category string `json:"category"`
}

type savedPasswordResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Website       string    `json:"website"`
	Username      string    `json:"username"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	StrengthScore int       `json:"strength_score"`
}

// Save handles POST /api/passwords.
func (h *PasswordHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Missing token"})
		return
	}

	var req savePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Password required"})
		return
	}

	saved, err := h.credentials.Save(c.Request.Context(), userID, services.SaveCredentialInput{
		Password: req.Password,
		Title:    req.Title,
		Website:  req.Website,
		Username: req.Username,
		Notes:    req.Notes,
		Category: req.Category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, savedPasswordResponse{
		ID:            saved.Credential.ID,
		Title:         saved.Credential.Title,
		Website:       saved.Credential.Website,
		Username:      saved.Credential.Username,
		Category:      saved.Credential.Category,
		CreatedAt:     saved.Credential.CreatedAt,
		StrengthScore: saved.StrengthScore,
	})
}

// List handles GET /api/passwords. Views carry metadata and derived
// scores, never the plaintext.
func (h *PasswordHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Missing token"})
		return
	}

	views, err := h.credentials.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"passwords":         views,
		"rotate_after_days": services.RotateAfterDays,
	})
}

// Delete handles DELETE /api/passwords/:id. A record that is absent or
// owned by another account is reported as not found either way.
func (h *PasswordHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Missing token"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Message: "Not found"})
		return
	}

	if err := h.credentials.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Message: "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// CreateShare handles POST /api/passwords/:id/share.
func (h *PasswordHandler) CreateShare(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Missing token"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Message: "Not found"})
		return
	}

	shareURL, err := h.shares.Create(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Message: "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"share_url": shareURL})
}

// ResolveShare handles GET /api/passwords/shared/:token. No session is
// required: the token is the capability.
func (h *PasswordHandler) ResolveShare(c *gin.Context) {
	password, err := h.shares.Resolve(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Message: "Invalid token"})
		case errors.Is(err, shared.ErrShareExpired):
			c.JSON(http.StatusGone, errorResponse{Message: "Expired"})
		default:
			c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"password": password})
}
