package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/dto"
	"github.com/planit-app/planit-api/internal/metrics"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// UpsertUser creates or refreshes a user record on login.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req dto.UserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	user := models.User{
		Email:    req.Email,
		Nickname: req.Nickname,
		Image:    req.Image,
	}

	start := time.Now()
	err := h.users.Upsert(&user)
	metrics.ObserveStoreOp("upsert_user", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns the user for the email path parameter.
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	start := time.Now()
	user, err := h.users.Find(email)
	metrics.ObserveStoreOp("find_user", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes the user and their memberships and clears task
// ownership, as one atomic operation.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	email := c.Param("email")

	start := time.Now()
	err := h.users.Delete(email)
	metrics.ObserveStoreOp("delete_user", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
