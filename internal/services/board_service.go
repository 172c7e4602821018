package services

import (
	"fmt"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

var (
	ErrTeamRequired   = fmt.Errorf("%w: team name is required", apperrors.ErrInvalidArgument)
	ErrColumnRequired = fmt.Errorf("%w: column name is required", apperrors.ErrInvalidArgument)
	ErrCardRequired   = fmt.Errorf("%w: card name is required", apperrors.ErrInvalidArgument)
)

// BoardService validates board operations before they reach storage.
type BoardService struct {
	boards repository.BoardRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(boards repository.BoardRepository) *BoardService {
	return &BoardService{boards: boards}
}

func scopeValid(team, column string) error {
	if team == "" {
		return ErrTeamRequired
	}
	if column == "" {
		return ErrColumnRequired
	}
	return nil
}

// AddColumn creates a column under the team's board.
func (s *BoardService) AddColumn(team, column string, color int) error {
	if err := scopeValid(team, column); err != nil {
		return err
	}
	if !models.ValidColor(color) {
		return ErrColorOutOfRange
	}
	return s.boards.AddColumn(team, column, color)
}

// AddCard creates a card under (team, column). Whether the column row
// exists is not checked; the storage contract is permissive on purpose.
func (s *BoardService) AddCard(team, column, card, content string) error {
	if err := scopeValid(team, column); err != nil {
		return err
	}
	if card == "" {
		return ErrCardRequired
	}
	return s.boards.AddCard(team, column, card, content)
}

// LoadBoard returns the column and card views for the scope.
func (s *BoardService) LoadBoard(team, column string) ([]models.BoardColumn, []models.BoardCard, error) {
	if err := scopeValid(team, column); err != nil {
		return nil, nil, err
	}
	return s.boards.Load(team, column)
}

// RecolorColumn changes only the column row's color.
func (s *BoardService) RecolorColumn(team, column string, color int) error {
	if err := scopeValid(team, column); err != nil {
		return err
	}
	if !models.ValidColor(color) {
		return ErrColorOutOfRange
	}
	return s.boards.RecolorColumn(team, column, color)
}

// DeleteColumn removes the column and everything under it.
func (s *BoardService) DeleteColumn(team, column string) error {
	if err := scopeValid(team, column); err != nil {
		return err
	}
	return s.boards.DeleteColumn(team, column)
}

// DeleteCard removes a single card.
func (s *BoardService) DeleteCard(team, column, card string) error {
	if err := scopeValid(team, column); err != nil {
		return err
	}
	if card == "" {
		return ErrCardRequired
	}
	return s.boards.DeleteCard(team, column, card)
}
