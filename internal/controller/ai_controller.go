package controller

import (
	"errors"
	"strings"

	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	TutorService *service.TutorService
}

func NewAIController(tutorService *service.TutorService) *AIController {
	return &AIController{TutorService: tutorService}
}

// AskRequest 提问请求
// swagger:model AskRequest
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask godoc
// @Summary AI答疑
// @Description 结合路线图和资源目录上下文回答DSA问题，返回引用资料
// @Tags AI辅导
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AskRequest true "问题"
// @Success 200 {object} util.Response{data=service.AskResult} "成功"
// @Failure 400 {object} util.Response "问题为空"
// @Failure 502 {object} util.Response "AI服务异常"
// @Router /ai/ask [post]
func (c *AIController) Ask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		util.BadRequest(ctx, "Question required")
		return
	}

	result, err := c.TutorService.Ask(ctx.Request.Context(), claims.UserID, question)
	if err != nil {
		util.Error(ctx, 502, "AI service unavailable: "+err.Error())
		return
	}

	util.Success(ctx, result)
}

// StudyPlanRequest 学习计划请求
// swagger:model StudyPlanRequest
type StudyPlanRequest struct {
	AvailableTime int      `json:"available_time"`
	FocusAreas    []string `json:"focus_areas"`
	Difficulty    string   `json:"difficulty"`
}

// StudyPlan godoc
// @Summary 生成学习计划
// @Description 按已完成进度生成下周个性化学习建议
// @Tags AI辅导
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body StudyPlanRequest true "可用时间和偏好"
// @Success 200 {object} util.Response{data=service.StudyPlanResult} "成功"
// @Router /ai/study-plan [post]
func (c *AIController) StudyPlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TutorService.StudyPlan(ctx.Request.Context(), claims.UserID, req.AvailableTime, req.FocusAreas, req.Difficulty)
	if err != nil {
		util.Error(ctx, 502, "AI service unavailable: "+err.Error())
		return
	}

	util.Success(ctx, result)
}

// QuizRequest 测验生成请求
// swagger:model QuizRequest
type QuizRequest struct {
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}

// Quiz godoc
// @Summary 生成测验
// @Description 按主题和难度生成选择题，题量上限10
// @Tags AI辅导
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body QuizRequest true "测验参数"
// @Success 200 {object} util.Response{data=service.QuizResult} "成功"
// @Router /ai/quiz [post]
func (c *AIController) Quiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TutorService.Quiz(ctx.Request.Context(), req.Topic, req.Difficulty, req.QuestionCount)
	if err != nil {
		util.Error(ctx, 502, "AI service unavailable: "+err.Error())
		return
	}

	util.Success(ctx, result)
}

// SummarizeRequest 摘要请求
// swagger:model SummarizeRequest
type SummarizeRequest struct {
	Type      string `json:"type"`
	ContentID string `json:"content_id" binding:"required"`
}

// Summarize godoc
// @Summary 内容摘要
// @Description 摘要一条笔记或一个资源，type取值note/resource
// @Tags AI辅导
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SummarizeRequest true "摘要目标"
// @Success 200 {object} util.Response{data=service.SummarizeResult} "成功"
// @Failure 404 {object} util.Response "内容不存在"
// @Router /ai/summarize [post]
func (c *AIController) Summarize(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SummarizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	contentType := req.Type
	if contentType == "" {
		contentType = "note"
	}

	result, err := c.TutorService.Summarize(ctx.Request.Context(), claims.UserID, contentType, req.ContentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoteNotFound):
			util.NotFound(ctx)
		case strings.Contains(err.Error(), "invalid content type"):
			util.BadRequest(ctx, err.Error())
		case strings.Contains(err.Error(), "resource not found"):
			util.NotFound(ctx)
		default:
			util.Error(ctx, 502, "AI service unavailable: "+err.Error())
		}
		return
	}

	util.Success(ctx, result)
}

// History godoc
// @Summary 问答历史
// @Description 分页返回当前用户的AI问答记录
// @Tags AI辅导
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码" default(1)
// @Param   per_page query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /ai/history [get]
func (c *AIController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("per_page"), 20)

	conversations, total, err := c.TutorService.History(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  conversations,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
