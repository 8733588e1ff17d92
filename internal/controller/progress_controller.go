package controller

import (
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type ProgressUpdateRequest struct {
	MasteredCount int `json:"masteredCount"`
}

// @Summary 获取学习进度
// @Description 获取当前用户全部词汇的掌握记录
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.ProgressService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

// @Summary 手动调整进度
// @Description 直接设置某个词汇的掌握次数
// @Tags 进度
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "词汇ID"
// @Param progress body ProgressUpdateRequest true "掌握次数"
// @Success 200 {object} util.Response
// @Router /progress/{id} [put]
func (c *ProgressController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	vocabularyID := util.MustParseUint(ctx.Param("id"))
	if vocabularyID == 0 {
		util.BadRequest(ctx, "invalid vocabulary id")
		return
	}

	var req ProgressUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.ProgressService.Update(claims.UserID, vocabularyID, req.MasteredCount)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entry)
}
