package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

func TestSettingRepository_Load(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Setting{KakaoKey: "kakao-key", GoogleKey: "google-key"}).Error)

	repo := NewSettingRepository(testLogger(), db)
	setting, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "kakao-key", setting.KakaoKey)
	assert.Equal(t, "google-key", setting.GoogleKey)
}

// An empty settings table is a misconfigured deployment; Load surfaces it
// as a not-found kind so startup can fail loudly.
func TestSettingRepository_LoadMissing(t *testing.T) {
	db := newTestDB(t)

	repo := NewSettingRepository(testLogger(), db)
	_, err := repo.Load()
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
