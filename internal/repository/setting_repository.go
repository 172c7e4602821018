package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

// GormSettingRepository is a GORM implementation of SettingRepository.
type GormSettingRepository struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

// NewSettingRepository creates a new SettingRepository.
func NewSettingRepository(logger *zap.SugaredLogger, db *gorm.DB) SettingRepository {
	return &GormSettingRepository{logger: logger, db: db}
}

// Load returns the singleton settings row.
func (r *GormSettingRepository) Load() (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.First(&setting).Error; err != nil {
		r.logger.Errorw("failed to load settings", "error", err)
		return nil, apperrors.Translate(err)
	}
	return &setting, nil
}
