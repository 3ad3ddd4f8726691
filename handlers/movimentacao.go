package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/workflow"
	"gorm.io/gorm"
)

type MovimentacaoHandler struct {
	db *gorm.DB
}

func NewMovimentacaoHandler(db *gorm.DB) *MovimentacaoHandler {
	return &MovimentacaoHandler{db: db}
}

func (h *MovimentacaoHandler) Create(c *gin.Context) {
	var input models.NewMovimentacaoEstoque
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	movimentacao, err := workflow.RecordMovement(c.Request.Context(), h.db, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movimentacao)
}

// List accepts an optional ?item_id= filter.
func (h *MovimentacaoHandler) List(c *gin.Context) {
	if raw := c.Query("item_id"); raw != "" {
		itemId, err := strconv.Atoi(raw)
		if err != nil || itemId <= 0 {
			respondError(c, utils.InvalidInput("Parâmetro item_id inválido."))
			return
		}
		movimentacoes, err := models.ListMovimentacoesByItem(c.Request.Context(), h.db, itemId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, movimentacoes)
		return
	}

	movimentacoes, err := models.ListMovimentacoes(c.Request.Context(), h.db)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movimentacoes)
}

func (h *MovimentacaoHandler) ListByItem(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}
	movimentacoes, err := models.ListMovimentacoesByItem(c.Request.Context(), h.db, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movimentacoes)
}
