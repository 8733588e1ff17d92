package controller

import (
	"errors"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

type AnswerRequest struct {
	VocabularyID uint                   `json:"vocabularyId" binding:"required"`
	Proficiency  model.ProficiencyLevel `json:"proficiency" binding:"required"`
}

// @Summary 创建测试会话
// @Description 按筛选条件组卷并开始一次测试会话
// @Tags 测试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param config body service.TestConfig true "测试筛选条件"
// @Success 201 {object} util.Response
// @Router /test/sessions [post]
func (c *SessionController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var cfg service.TestConfig
	if err := ctx.ShouldBindJSON(&cfg); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.SessionService.Start(ctx.Request.Context(), claims.UserID, cfg)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// @Summary 获取会话状态
// @Description 获取测试会话当前的卡片与进度
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /test/sessions/{id} [get]
func (c *SessionController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.SessionService.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 翻转卡片
// @Description 展示当前卡片的释义
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /test/sessions/{id}/flip [post]
func (c *SessionController) Flip(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.SessionService.Flip(claims.UserID, ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 提交熟练度自评
// @Description 对当前卡片提交自评并推进到下一张
// @Tags 测试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Param answer body AnswerRequest true "自评内容"
// @Success 200 {object} util.Response
// @Router /test/sessions/{id}/answer [post]
func (c *SessionController) Answer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.SessionService.Answer(claims.UserID, ctx.Param("id"), req.VocabularyID, req.Proficiency)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 放弃会话
// @Description 提前结束并丢弃测试会话
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /test/sessions/{id} [delete]
func (c *SessionController) Abandon(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SessionService.Abandon(claims.UserID, ctx.Param("id")); err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"abandoned": true})
}

func (c *SessionController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidProficiency),
		errors.Is(err, util.ErrEmptyGroups),
		errors.Is(err, util.ErrNotRevealed),
		errors.Is(err, util.ErrSessionFinished):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrCorpusUnavailable):
		util.Error(ctx, http.StatusServiceUnavailable, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
