package controller

import (
	"errors"

	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// ListNotifications godoc
// @Summary 通知列表
// @Description 分页返回通知，unread_only=true时只看未读
// @Tags 通知
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码" default(1)
// @Param   per_page query int false "每页条数" default(20)
// @Param   unread_only query bool false "只看未读"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("per_page"), 20)
	unreadOnly := ctx.Query("unread_only") == "true"

	notifications, total, err := c.NotificationService.List(claims.UserID, unreadOnly, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	unread, err := c.NotificationService.UnreadCount(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"list":         notifications,
		"total":        total,
		"page":         page,
		"limit":        limit,
		"unread_count": unread,
	})
}

// MarkRead godoc
// @Summary 标记通知已读
// @Tags 通知
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "通知ID"
// @Success 200 {object} util.Response "标记成功"
// @Failure 404 {object} util.Response "通知不存在"
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.MarkRead(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrNotificationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead godoc
// @Summary 全部标为已读
// @Tags 通知
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response "标记成功"
// @Router /notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.MarkAllRead(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "All notifications marked as read"})
}
