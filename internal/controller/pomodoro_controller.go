package controller

import (
	"errors"

	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PomodoroController struct {
	PomodoroService *service.PomodoroService
}

func NewPomodoroController(pomodoroService *service.PomodoroService) *PomodoroController {
	return &PomodoroController{PomodoroService: pomodoroService}
}

// StartPomodoroRequest 开始番茄钟请求
// swagger:model StartPomodoroRequest
type StartPomodoroRequest struct {
	Duration    int    `json:"duration"`
	Topic       string `json:"topic"`
	SessionType string `json:"session_type"`
}

// Start godoc
// @Summary 开始番茄钟
// @Description duration缺省25分钟，session_type缺省study
// @Tags 番茄钟
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body StartPomodoroRequest true "番茄钟参数"
// @Success 200 {object} util.Response{data=object} "开始成功"
// @Router /pomodoro [post]
func (c *PomodoroController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartPomodoroRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.PomodoroService.Start(claims.UserID, req.Duration, req.Topic, req.SessionType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"session_id": session.ID,
		"start_time": session.StartTime.Format(util.TimeFormat),
	})
}

// Complete godoc
// @Summary 完成番茄钟
// @Description 入账时长取计划值和实际耗时的较小值
// @Tags 番茄钟
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "番茄钟ID"
// @Success 200 {object} util.Response{data=object} "完成"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /pomodoro/{id}/complete [post]
func (c *PomodoroController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, actualMinutes, err := c.PomodoroService.Complete(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"message":         "Session completed",
		"actual_duration": actualMinutes,
		"duration":        session.Duration,
	})
}

// History godoc
// @Summary 番茄钟历史
// @Description 按开始时间倒序分页
// @Tags 番茄钟
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码" default(1)
// @Param   per_page query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /pomodoro/history [get]
func (c *PomodoroController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("per_page"), 20)

	sessions, total, err := c.PomodoroService.History(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  sessions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
