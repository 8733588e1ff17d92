package controller

import (
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	StatisticsService *service.StatisticsService
}

func NewStatisticsController(statisticsService *service.StatisticsService) *StatisticsController {
	return &StatisticsController{StatisticsService: statisticsService}
}

// @Summary 获取学习统计
// @Description 获取当前用户的掌握分布与最近测试记录
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Param language query string false "语种，默认en"
// @Success 200 {object} util.Response
// @Router /statistics [get]
func (c *StatisticsController) Overview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	language := ctx.DefaultQuery("language", util.DefaultLanguage)

	overview, err := c.StatisticsService.Overview(claims.UserID, language)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}
