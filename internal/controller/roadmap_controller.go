package controller

import (
	"dsa_prep_backend/internal/roadmap"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RoadmapController 内置路线图和资源目录，公开访问
type RoadmapController struct{}

func NewRoadmapController() *RoadmapController {
	return &RoadmapController{}
}

// ListResources godoc
// @Summary 资源目录
// @Description 分页返回学习资源，type过滤text/video/interactive/practice
// @Tags 路线图
// @Produce  json
// @Param   type query string false "资源类型"
// @Param   page query int false "页码" default(1)
// @Param   per_page query int false "每页条数" default(50)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /resources [get]
func (c *RoadmapController) ListResources(ctx *gin.Context) {
	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("per_page"), 50)

	filtered := roadmap.FilterResourcesByType(ctx.Query("type"))
	total := len(filtered)

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageItems := filtered[start:end]
	if pageItems == nil {
		pageItems = []roadmap.Resource{}
	}

	util.Success(ctx, util.PageResponse{
		List:  pageItems,
		Total: int64(total),
		Page:  page,
		Limit: limit,
	})
}

// GetRoadmap godoc
// @Summary 学习路线图
// @Description 带week参数时返回单周，否则返回全部14周
// @Tags 路线图
// @Produce  json
// @Param   week query int false "周数"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "周不存在"
// @Router /roadmap [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	if weekParam := ctx.Query("week"); weekParam != "" {
		week := roadmap.WeekByNumber(util.ParsePositiveInt(weekParam, 0))
		if week == nil {
			util.NotFound(ctx)
			return
		}
		util.Success(ctx, week)
		return
	}

	util.Success(ctx, gin.H{"roadmap": roadmap.Weeks})
}
