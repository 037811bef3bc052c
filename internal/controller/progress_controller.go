package controller

import (
	"errors"

	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary 全部学习进度
// @Description 按周和日嵌套返回进度及打卡统计
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressOverview} "成功"
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ProgressService.GetProgress(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, overview)
}

// UpdateProgressRequest 进度更新请求
// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Week      int    `json:"week" binding:"required,min=1"`
	Day       string `json:"day" binding:"required"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"time_spent" binding:"min=0"`
	Notes     string `json:"notes"`
}

// UpdateProgress godoc
// @Summary 更新某天的进度
// @Description 首次标记完成时累计学习时长并推进连续打卡
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateProgressRequest true "进度数据"
// @Success 200 {object} util.Response "更新成功"
// @Router /progress [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ProgressService.UpdateProgress(claims.UserID, req.Week, req.Day, req.Completed, req.TimeSpent, req.Notes)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Progress updated successfully"})
}

// GetCalendar godoc
// @Summary 日历视图
// @Description 带week参数时返回该周详情，否则返回所有周的完成概况
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Param   week query int false "周数"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "周不存在"
// @Router /calendar [get]
func (c *ProgressController) GetCalendar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if weekParam := ctx.Query("week"); weekParam != "" {
		week := util.ParsePositiveInt(weekParam, 0)
		calendar, err := c.ProgressService.WeekCalendar(claims.UserID, week)
		if err != nil {
			if errors.Is(err, util.ErrInvalidDay) {
				util.NotFound(ctx)
			} else {
				util.LogInternalError(ctx, err)
			}
			return
		}
		util.Success(ctx, calendar)
		return
	}

	overview, err := c.ProgressService.CalendarOverview(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"calendar": overview})
}
