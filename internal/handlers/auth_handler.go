package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/config"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		apperr.Conflict(c, "username_taken", "Username already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		apperr.Internal(c, "failed_to_hash_password", "Could not register.")
		return
	}

	user := models.User{
		Username:     username,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		// the pre-check races concurrent registrations; the unique
		// index is what actually decides
		if usernameTaken(err) {
			apperr.Conflict(c, "username_taken", "Username already exists.")
			return
		}
		apperr.Internal(c, "failed_to_create_user", "Could not register.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		apperr.Internal(c, "failed_to_generate_token", "Could not register.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			apperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
			return
		}
		apperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		apperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		apperr.Internal(c, "failed_to_generate_token", "Could not log in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
		},
	})
}

// usernameTaken reports whether err is the unique-index violation on
// users.username, surfaced as gorm.ErrDuplicatedKey via TranslateError.
func usernameTaken(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
