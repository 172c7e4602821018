package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/metrics"
	"github.com/planit-app/planit-api/internal/repository"
)

type TeamHandler struct {
	teams repository.TeamRepository
}

func NewTeamHandler(teams repository.TeamRepository) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// DeleteTeam dissolves a team: memberships, tasks and board rows all go
// in one transaction.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	team := c.Param("team")

	start := time.Now()
	err := h.teams.Delete(team)
	metrics.ObserveStoreOp("delete_team", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
