package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository.
type GormMembershipRepository struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(logger *zap.SugaredLogger, db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{logger: logger, db: db}
}

// Add upserts on the (team, email) composite key; only the owner flag is
// overwritten on conflict.
func (r *GormMembershipRepository) Add(member *models.Membership) error {
	r.logger.Debugw("Add()", "team", member.TeamName, "email", member.UserEmail, "isOwner", member.IsOwner)

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_name"}, {Name: "user_email"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_owner"}),
	}).Create(member).Error
	if err != nil {
		r.logger.Errorw("failed to add member", "team", member.TeamName, "email", member.UserEmail, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// List filters by whichever of team and email are supplied.
func (r *GormMembershipRepository) List(filter MembershipFilter) ([]models.Membership, error) {
	query := r.db.Model(&models.Membership{})
	if filter.Team != "" {
		query = query.Where("team_name = ?", filter.Team)
	}
	if filter.Email != "" {
		query = query.Where("user_email = ?", filter.Email)
	}

	var members []models.Membership
	if err := query.Find(&members).Error; err != nil {
		return nil, apperrors.Translate(err)
	}
	return members, nil
}

// SetOwnership updates the flag for an existing pair.
func (r *GormMembershipRepository) SetOwnership(team, email string, isOwner bool) error {
	r.logger.Debugw("SetOwnership()", "team", team, "email", email, "isOwner", isOwner)

	res := r.db.Model(&models.Membership{}).
		Where("team_name = ? AND user_email = ?", team, email).
		Update("user_owner", isOwner)
	if res.Error != nil {
		r.logger.Errorw("failed to set ownership", "team", team, "email", email, "error", res.Error)
		return apperrors.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL reports rows changed, not rows matched, so a same-value
		// update also lands here. Only a missing pair is NotFound.
		var count int64
		err := r.db.Model(&models.Membership{}).
			Where("team_name = ? AND user_email = ?", team, email).
			Count(&count).Error
		if err != nil {
			return apperrors.Translate(err)
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
	}
	return nil
}

// Remove deletes the pair without cascading.
func (r *GormMembershipRepository) Remove(team, email string) error {
	r.logger.Debugw("Remove()", "team", team, "email", email)

	err := r.db.Where("team_name = ? AND user_email = ?", team, email).
		Delete(&models.Membership{}).Error
	if err != nil {
		r.logger.Errorw("failed to remove member", "team", team, "email", email, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}
