package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"dsa_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotificationsWithUnreadCount(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "notify@test.com")

	// 注册时写入一条欢迎通知
	w := env.request(t, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			List        []model.Notification `json:"list"`
			Total       int64                `json:"total"`
			UnreadCount int64                `json:"unread_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.List, 1)
	assert.Equal(t, "Welcome aboard", resp.Data.List[0].Title)
	assert.EqualValues(t, 1, resp.Data.Total)
	assert.EqualValues(t, 1, resp.Data.UnreadCount)

	// 标记已读后未读数归零
	require.NoError(t, env.db.Model(&model.Notification{}).
		Where("title = ?", "Welcome aboard").Update("is_read", true).Error)

	w = env.request(t, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Data.Total)
	assert.EqualValues(t, 0, resp.Data.UnreadCount)
}
