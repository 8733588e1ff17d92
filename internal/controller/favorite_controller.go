package controller

import (
	"errors"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	FavoriteService *service.FavoriteService
}

func NewFavoriteController(favoriteService *service.FavoriteService) *FavoriteController {
	return &FavoriteController{FavoriteService: favoriteService}
}

// @Summary 获取收藏列表
// @Description 获取当前用户收藏的词汇ID列表
// @Tags 收藏
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /favorites [get]
func (c *FavoriteController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ids, err := c.FavoriteService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, ids)
}

// @Summary 添加收藏
// @Description 将词汇加入当前用户的收藏
// @Tags 收藏
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "词汇ID"
// @Success 201 {object} util.Response
// @Router /favorites/{id} [post]
func (c *FavoriteController) Add(ctx *gin.Context) {
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

	if err := c.FavoriteService.Add(claims.UserID, vocabularyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"vocabularyId": vocabularyID})
}

// @Summary 取消收藏
// @Description 将词汇移出当前用户的收藏
// @Tags 收藏
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "词汇ID"
// @Success 200 {object} util.Response
// @Router /favorites/{id} [delete]
func (c *FavoriteController) Remove(ctx *gin.Context) {
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

	if err := c.FavoriteService.Remove(claims.UserID, vocabularyID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"vocabularyId": vocabularyID})
}
