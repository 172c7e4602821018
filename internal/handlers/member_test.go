package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planit-app/planit-api/internal/models"
)

func TestMemberHandler_AddIsUpsert(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]interface{}{"team_name": "alpha", "user_email": "a@example.com", "user_owner": false}
	w := env.do(t, http.MethodPost, "/api/members", payload)
	require.Equal(t, http.StatusOK, w.Code)

	payload["user_owner"] = true
	w = env.do(t, http.MethodPost, "/api/members", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/members?team=alpha", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Member []models.Membership `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Member, 1)
	assert.True(t, resp.Member[0].IsOwner)
}

func TestMemberHandler_SetOwnershipMissingPair(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPatch, "/api/members", map[string]interface{}{
		"team_name": "alpha", "user_email": "ghost@example.com", "user_owner": true,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemberHandler_RemoveRequiresPair(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodDelete, "/api/members?team=alpha", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamHandler_DeleteCascades(t *testing.T) {
	env := setupTestEnv(t)

	require.NoError(t, env.db.Create(&models.Membership{TeamName: "alpha", UserEmail: "a@example.com"}).Error)
	require.NoError(t, env.db.Create(&models.Task{TeamName: "alpha", Name: "release", State: models.TaskStateTodo}).Error)
	require.NoError(t, env.db.Create(&models.BoardEntry{TeamName: "alpha", BoardName: "doing"}).Error)

	w := env.do(t, http.MethodDelete, "/api/teams/alpha", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/members?team=alpha", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var members struct {
		Member []models.Membership `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	assert.Empty(t, members.Member)

	var taskCount, boardCount int64
	env.db.Model(&models.Task{}).Where("team_name = ?", "alpha").Count(&taskCount)
	env.db.Model(&models.BoardEntry{}).Where("team_name = ?", "alpha").Count(&boardCount)
	assert.Zero(t, taskCount)
	assert.Zero(t, boardCount)
}

func TestUserHandler_Lifecycle(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/users", map[string]interface{}{
		"user_email": "a@example.com", "user_nickname": "alice", "user_image": "a.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/users/a@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/users/a@example.com", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/users/a@example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsHandler_ServesPreloadedKeys(t *testing.T) {
	env := setupTestEnv(t)

	handler := NewSettingsHandler(&models.Setting{KakaoKey: "k", GoogleKey: "g"})
	env.router.GET("/api/settings", handler.GetSettings)

	w := env.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "k", resp["kakao"])
	assert.Equal(t, "g", resp["google"])
}
