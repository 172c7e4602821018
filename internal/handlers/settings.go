package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/dto"
	"github.com/planit-app/planit-api/internal/models"
)

// SettingsHandler serves the integration keys loaded once at startup; the
// settings row is read-only after provisioning, so no repository call is
// made per request.
type SettingsHandler struct {
	settings dto.SettingsResponse
}

// NewSettingsHandler creates a SettingsHandler around the preloaded row.
func NewSettingsHandler(setting *models.Setting) *SettingsHandler {
	return &SettingsHandler{
		settings: dto.SettingsResponse{
			Kakao:  setting.KakaoKey,
			Google: setting.GoogleKey,
		},
	}
}

// GetSettings returns the integration keys.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings)
}
