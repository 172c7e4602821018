package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/dto"
	"github.com/planit-app/planit-api/internal/metrics"
	"github.com/planit-app/planit-api/internal/services"
)

type BoardHandler struct {
	boards *services.BoardService
}

func NewBoardHandler(boards *services.BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// AddColumn creates a kanban column.
func (h *BoardHandler) AddColumn(c *gin.Context) {
	var req dto.ColumnPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	start := time.Now()
	err := h.boards.AddColumn(req.TeamName, req.Name, req.Color)
	metrics.ObserveStoreOp("add_column", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// AddCard creates a card under a column.
func (h *BoardHandler) AddCard(c *gin.Context) {
	var req dto.CardPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	start := time.Now()
	err := h.boards.AddCard(req.TeamName, req.Column, req.Name, req.Content)
	metrics.ObserveStoreOp("add_card", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// LoadBoard returns the scope's columns and cards, already split.
func (h *BoardHandler) LoadBoard(c *gin.Context) {
	start := time.Now()
	columns, cards, err := h.boards.LoadBoard(c.Query("team"), c.Query("column"))
	metrics.ObserveStoreOp("load_board", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BoardResponse{Columns: columns, Cards: cards})
}

// RecolorColumn updates the column's color only.
func (h *BoardHandler) RecolorColumn(c *gin.Context) {
	var req dto.ColumnPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	start := time.Now()
	err := h.boards.RecolorColumn(req.TeamName, req.Name, req.Color)
	metrics.ObserveStoreOp("recolor_column", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteColumn removes the column and every card under it.
func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	start := time.Now()
	err := h.boards.DeleteColumn(c.Query("team"), c.Query("column"))
	metrics.ObserveStoreOp("delete_column", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCard removes exactly one card.
func (h *BoardHandler) DeleteCard(c *gin.Context) {
	start := time.Now()
	err := h.boards.DeleteCard(c.Query("team"), c.Query("column"), c.Query("card"))
	metrics.ObserveStoreOp("delete_card", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
