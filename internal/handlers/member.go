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

type MemberHandler struct {
	members repository.MembershipRepository
}

func NewMemberHandler(members repository.MembershipRepository) *MemberHandler {
	return &MemberHandler{members: members}
}

// AddMember upserts a (team, user) membership with its owner flag.
func (h *MemberHandler) AddMember(c *gin.Context) {
	var req dto.MemberPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	member := models.Membership{
		TeamName:  req.TeamName,
		UserEmail: req.UserEmail,
		IsOwner:   req.IsOwner,
	}

	start := time.Now()
	err := h.members.Add(&member)
	metrics.ObserveStoreOp("add_member", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers filters the relation by the team and email query params.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	filter := repository.MembershipFilter{
		Team:  c.Query("team"),
		Email: c.Query("email"),
	}

	start := time.Now()
	members, err := h.members.List(filter)
	metrics.ObserveStoreOp("list_members", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": members})
}

// SetOwnership updates the owner flag for an existing pair. A transfer
// between two members is two calls; the second one failing leaves the
// first applied.
func (h *MemberHandler) SetOwnership(c *gin.Context) {
	var req dto.MemberPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	start := time.Now()
	err := h.members.SetOwnership(req.TeamName, req.UserEmail, req.IsOwner)
	metrics.ObserveStoreOp("set_ownership", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMember deletes the pair named by the team and email query params.
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	team := c.Query("team")
	email := c.Query("email")
	if team == "" || email == "" {
		apperrors.BadRequest(c, "team and email are required")
		return
	}

	start := time.Now()
	err := h.members.Remove(team, email)
	metrics.ObserveStoreOp("remove_member", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
