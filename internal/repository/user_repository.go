package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository.
type GormUserRepository struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(logger *zap.SugaredLogger, db *gorm.DB) UserRepository {
	return &GormUserRepository{logger: logger, db: db}
}

// Upsert inserts the user or refreshes nickname and image on conflict.
// Calling twice with identical input changes nothing but the update
// timestamp.
func (r *GormUserRepository) Upsert(user *models.User) error {
	r.logger.Debugw("Upsert()", "email", user.Email)

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_nickname", "user_image", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		r.logger.Errorw("failed to upsert user", "email", user.Email, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// Find returns the user for an email.
func (r *GormUserRepository) Find(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_email = ?", email).First(&user).Error; err != nil {
		return nil, apperrors.Translate(err)
	}
	return &user, nil
}

// Delete removes the user and their memberships and clears the owner
// field on their tasks, all inside one transaction. Task rows are never
// deleted here: team task history is team property, so only the ownership
// link is replaced with the empty marker.
func (r *GormUserRepository) Delete(email string) error {
	r.logger.Debugw("Delete()", "email", email)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_email = ?", email).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Task{}).
			Where("user_email = ?", email).
			Update("user_email", "").Error; err != nil {
			return err
		}

		return tx.Where("user_email = ?", email).Delete(&models.User{}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete user", "email", email, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}
