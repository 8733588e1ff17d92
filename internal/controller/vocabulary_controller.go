package controller

import (
	"io"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VocabularyController struct {
	VocabularyService *service.VocabularyService
}

func NewVocabularyController(vocabularyService *service.VocabularyService) *VocabularyController {
	return &VocabularyController{VocabularyService: vocabularyService}
}

// @Summary 获取词汇语料
// @Description 获取某语种的全部词汇条目
// @Tags 词汇
// @Produce json
// @Param language query string false "语种，默认en"
// @Success 200 {object} util.Response
// @Router /vocabulary [get]
func (c *VocabularyController) GetCorpus(ctx *gin.Context) {
	language := ctx.DefaultQuery("language", util.DefaultLanguage)

	items, err := c.VocabularyService.Corpus(ctx.Request.Context(), language)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// @Summary 获取难度分级列表
// @Description 获取某语种下出现过的全部难度分级
// @Tags 词汇
// @Produce json
// @Param language query string false "语种，默认en"
// @Success 200 {object} util.Response
// @Router /vocabulary/levels [get]
func (c *VocabularyController) GetLevels(ctx *gin.Context) {
	language := ctx.DefaultQuery("language", util.DefaultLanguage)

	levels, err := c.VocabularyService.Levels(ctx.Request.Context(), language)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, levels)
}

// @Summary 获取单词分组
// @Description 获取某难度分级按字母序切出的分组
// @Tags 词汇
// @Produce json
// @Param language query string false "语种，默认en"
// @Param level query string true "难度分级"
// @Success 200 {object} util.Response
// @Router /vocabulary/groups [get]
func (c *VocabularyController) GetGroups(ctx *gin.Context) {
	language := ctx.DefaultQuery("language", util.DefaultLanguage)
	level := ctx.Query("level")
	if level == "" {
		util.BadRequest(ctx, "level is required")
		return
	}

	groups, err := c.VocabularyService.Groups(ctx.Request.Context(), language, level)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, groups)
}

// @Summary 导入语料
// @Description 上传JSON语料文件并批量导入（管理员）
// @Tags 词汇
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "语料文件"
// @Success 200 {object} util.Response
// @Router /admin/vocabulary/import [post]
func (c *VocabularyController) Import(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "corpus file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	result, err := c.VocabularyService.Import(ctx.Request.Context(), header.Filename, data)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, result)
}
