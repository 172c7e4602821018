package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

// GormBoardRepository is a GORM implementation of BoardRepository.
type GormBoardRepository struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

// NewBoardRepository creates a new BoardRepository.
func NewBoardRepository(logger *zap.SugaredLogger, db *gorm.DB) BoardRepository {
	return &GormBoardRepository{logger: logger, db: db}
}

// AddColumn inserts the column row; its card fields stay empty, which is
// what marks it as a column in the shared relation.
func (r *GormBoardRepository) AddColumn(team, column string, color int) error {
	r.logger.Debugw("AddColumn()", "team", team, "column", column)

	entry := models.BoardEntry{
		TeamName:  team,
		BoardName: column,
		Color:     color,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		r.logger.Errorw("failed to add column", "team", team, "column", column, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// AddCard inserts a card row under (team, column). Existence of the
// column row is not checked; the relation accepts orphaned cards.
func (r *GormBoardRepository) AddCard(team, column, card, content string) error {
	r.logger.Debugw("AddCard()", "team", team, "column", column, "card", card)

	entry := models.BoardEntry{
		TeamName:    team,
		BoardName:   column,
		CardName:    card,
		CardContent: content,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		r.logger.Errorw("failed to add card", "team", team, "column", column, "card", card, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// Load returns every row for (team, column), split into the tagged column
// and card views.
func (r *GormBoardRepository) Load(team, column string) ([]models.BoardColumn, []models.BoardCard, error) {
	var entries []models.BoardEntry
	err := r.db.Where("team_name = ? AND board_name = ?", team, column).
		Find(&entries).Error
	if err != nil {
		return nil, nil, apperrors.Translate(err)
	}

	columns, cards := models.SplitBoard(entries)
	return columns, cards, nil
}

// RecolorColumn changes the color on the column row only; card rows under
// the same prefix are not touched.
func (r *GormBoardRepository) RecolorColumn(team, column string, color int) error {
	r.logger.Debugw("RecolorColumn()", "team", team, "column", column, "color", color)

	err := r.db.Model(&models.BoardEntry{}).
		Where("team_name = ? AND board_name = ? AND card_name = ''", team, column).
		Update("board_color", color).Error
	if err != nil {
		r.logger.Errorw("failed to recolor column", "team", team, "column", column, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// DeleteColumn removes the column row and all its cards in one statement:
// columns and cards share the relation and the (team, column) prefix, so
// the cascade is a plain prefix delete, not a join.
func (r *GormBoardRepository) DeleteColumn(team, column string) error {
	r.logger.Debugw("DeleteColumn()", "team", team, "column", column)

	err := r.db.Where("team_name = ? AND board_name = ?", team, column).
		Delete(&models.BoardEntry{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete column", "team", team, "column", column, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// DeleteCard removes exactly one card row, leaving the column intact.
func (r *GormBoardRepository) DeleteCard(team, column, card string) error {
	r.logger.Debugw("DeleteCard()", "team", team, "column", column, "card", card)

	err := r.db.Where("team_name = ? AND board_name = ? AND card_name = ?", team, column, card).
		Delete(&models.BoardEntry{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete card", "team", team, "column", column, "card", card, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}
