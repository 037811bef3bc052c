package controller

import (
	"strings"

	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	SearchService *service.SearchService
}

func NewSearchController(searchService *service.SearchService) *SearchController {
	return &SearchController{SearchService: searchService}
}

// Search godoc
// @Summary 联合搜索
// @Description 跨资源目录、路线图和个人笔记搜索，type取值all/resources/roadmap/notes
// @Tags 搜索
// @Produce  json
// @Security BearerAuth
// @Param   q query string true "搜索关键词"
// @Param   type query string false "搜索范围" default(all)
// @Param   page query int false "页码" default(1)
// @Param   per_page query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=service.SearchResults} "成功"
// @Failure 400 {object} util.Response "缺少关键词"
// @Router /search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		util.BadRequest(ctx, "Search query required")
		return
	}

	searchType := ctx.DefaultQuery("type", service.SearchTypeAll)
	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("per_page"), 20)

	results, err := c.SearchService.Search(claims.UserID, query, searchType, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
