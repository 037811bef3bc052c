package controller

import (
	"errors"

	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// CreateNoteRequest 创建笔记请求
// swagger:model CreateNoteRequest
type CreateNoteRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Week    int      `json:"week"`
	Day     string   `json:"day"`
}

// Create godoc
// @Summary 创建笔记
// @Tags 笔记
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateNoteRequest true "笔记内容"
// @Success 201 {object} util.Response{data=service.NoteView} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Create(claims.UserID, req.Title, req.Content, req.Tags, req.Week, req.Day)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, note)
}

// List godoc
// @Summary 笔记列表
// @Description 支持week/day/tag过滤和search子串搜索，按更新时间倒序分页
// @Tags 笔记
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码" default(1)
// @Param   per_page query int false "每页条数" default(20)
// @Param   week query int false "按周过滤"
// @Param   day query string false "按日过滤"
// @Param   tag query string false "按标签过滤"
// @Param   search query string false "搜索关键词"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("per_page"), 20)

	if search := ctx.Query("search"); search != "" {
		notes, total, err := c.NoteService.Search(claims.UserID, search, page, limit)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, util.PageResponse{List: notes, Total: total, Page: page, Limit: limit})
		return
	}

	filter := repository.NoteFilter{
		Week: util.ParsePositiveInt(ctx.Query("week"), 0),
		Day:  ctx.Query("day"),
		Tag:  ctx.Query("tag"),
	}

	notes, total, err := c.NoteService.List(claims.UserID, filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: notes, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary 笔记详情
// @Tags 笔记
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "笔记ID"
// @Success 200 {object} util.Response{data=service.NoteView} "成功"
// @Failure 404 {object} util.Response "笔记不存在"
// @Router /notes/{id} [get]
func (c *NoteController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	note, err := c.NoteService.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, note)
}

// Update godoc
// @Summary 更新笔记
// @Description 未提供的字段保持原值，tags提供时整体替换
// @Tags 笔记
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "笔记ID"
// @Param   body body service.NoteUpdate true "要更新的字段"
// @Success 200 {object} util.Response{data=service.NoteView} "更新成功"
// @Failure 404 {object} util.Response "笔记不存在"
// @Router /notes/{id} [put]
func (c *NoteController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.NoteUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Update(claims.UserID, ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, note)
}

// Delete godoc
// @Summary 删除笔记
// @Tags 笔记
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "笔记ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 404 {object} util.Response "笔记不存在"
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NoteService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Note deleted successfully"})
}
