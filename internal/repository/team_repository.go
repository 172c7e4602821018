package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

// GormTeamRepository is a GORM implementation of TeamRepository.
type GormTeamRepository struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(logger *zap.SugaredLogger, db *gorm.DB) TeamRepository {
	return &GormTeamRepository{logger: logger, db: db}
}

// Delete removes all memberships, tasks and board rows for the team in
// one transaction. The three deletes are independent predicate matches on
// the team name, so their order does not matter; any failure rolls the
// whole operation back.
func (r *GormTeamRepository) Delete(team string) error {
	r.logger.Debugw("Delete()", "team", team)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_name = ?", team).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		if err := tx.Where("team_name = ?", team).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Where("team_name = ?", team).Delete(&models.BoardEntry{}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete team", "team", team, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}
