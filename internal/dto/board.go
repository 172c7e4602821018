package dto

import "github.com/planit-app/planit-api/internal/models"

// ColumnPayload mirrors the column creation / recolor request body.
type ColumnPayload struct {
	TeamName string `json:"team_name" binding:"required"`
	Name     string `json:"board_name" binding:"required"`
	Color    int    `json:"board_color"`
}

// CardPayload mirrors the card creation request body.
type CardPayload struct {
	TeamName string `json:"team_name" binding:"required"`
	Column   string `json:"board_name" binding:"required"`
	Name     string `json:"card_name" binding:"required"`
	Content  string `json:"card_content"`
}

// BoardResponse carries a board scope split into its two row shapes, so
// clients never have to inspect which optional fields are populated.
type BoardResponse struct {
	Columns []models.BoardColumn `json:"columns"`
	Cards   []models.BoardCard   `json:"cards"`
}
