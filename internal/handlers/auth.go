package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FCT-TaskManager/Backend/internal/auth"
	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
	"github.com/FCT-TaskManager/Backend/internal/utils"
)

type AuthHandler struct {
	users store.UserStore
}

func NewAuthHandler(users store.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	_, err := h.users.ByEmail(req.Email)
	if err == nil {
		respondBadRequest(ctx, "Email already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(ctx, err, "Failed to create user")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(ctx, err, "Failed to create user")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	if err := h.users.Create(&user); err != nil {
		respondError(ctx, err, "Failed to create user")
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)
	if err != nil {
		respondError(ctx, err, "Failed to create user")
		return
	}

	respondData(ctx, http.StatusCreated, gin.H{
		"user":  UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		"token": token,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	user, err := h.users.ByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondBadRequest(ctx, "Invalid email or password")
			return
		}
		respondError(ctx, err, "Failed to log in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondBadRequest(ctx, "Invalid email or password")
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)
	if err != nil {
		respondError(ctx, err, "Failed to log in")
		return
	}

	respondData(ctx, http.StatusOK, gin.H{
		"user":  UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		"token": token,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	respondData(ctx, http.StatusOK, gin.H{
		"user": UserResponse{ID: currentUser.ID, Name: currentUser.Name, Email: currentUser.Email},
	})
}
