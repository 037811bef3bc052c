package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile godoc
// @Summary 获取个人资料
// @Description 返回当前用户的资料和偏好设置
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Profile} "成功"
// @Failure 401 {object} util.Response "未认证"
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Description 更新姓名或邮箱，邮箱被占用时返回409
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ProfileUpdate true "要更新的字段"
// @Success 200 {object} util.Response{data=object} "更新成功"
// @Failure 409 {object} util.Response "邮箱已被使用"
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, http.StatusConflict, "Email already in use")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": userSummary(user)})
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description multipart表单上传头像，字段名avatar
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   avatar formData file true "头像文件"
// @Success 200 {object} util.Response{data=object} "上传成功"
// @Failure 400 {object} util.Response "文件缺失或格式不支持"
// @Router /profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), claims.UserID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, gin.H{"avatar_url": url})
}

// UpdatePreferences godoc
// @Summary 更新偏好设置
// @Description 部分更新，未提供的字段保持原值，白名单之外的字段拒绝
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.PreferencesUpdate true "要更新的偏好项"
// @Success 200 {object} util.Response{data=object} "更新成功"
// @Failure 400 {object} util.Response "包含未知字段"
// @Router /preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	// 只接受白名单字段，未知字段直接报400而不是静默丢弃
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()

	var req service.PreferencesUpdate
	if err := decoder.Decode(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prefs, err := c.UserService.UpdatePreferences(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"preferences": prefs})
}
