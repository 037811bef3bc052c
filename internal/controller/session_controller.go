package controller

import (
	"errors"

	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	UserService *service.UserService
}

func NewSessionController(userService *service.UserService) *SessionController {
	return &SessionController{UserService: userService}
}

// ListSessions godoc
// @Summary 活跃登录会话列表
// @Description 按最近活跃时间倒序返回当前用户的活跃会话
// @Tags 会话
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.UserService.ListSessions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"sessions": sessions})
}

// RevokeSession godoc
// @Summary 注销指定会话
// @Description 将会话标记为不活跃
// @Tags 会话
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "注销成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /sessions/{id} [delete]
func (c *SessionController) RevokeSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.RevokeSession(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Session revoked successfully"})
}
