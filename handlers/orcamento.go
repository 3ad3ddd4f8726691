package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/workflow"
	"gorm.io/gorm"
)

type OrcamentoHandler struct {
	db *gorm.DB
}

func NewOrcamentoHandler(db *gorm.DB) *OrcamentoHandler {
	return &OrcamentoHandler{db: db}
}

type statusInput struct {
	Status models.StatusOrcamento `json:"status" binding:"required"`
}

func (h *OrcamentoHandler) Create(c *gin.Context) {
	var input models.NewOrcamento
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	orcamento, err := workflow.CreateOrcamento(c.Request.Context(), h.db, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orcamento)
}

func (h *OrcamentoHandler) List(c *gin.Context) {
	orcamentos, err := models.ListOrcamentos(c.Request.Context(), h.db)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orcamentos)
}

func (h *OrcamentoHandler) Get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}
	orcamento, err := models.GetOrcamento(c.Request.Context(), h.db, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orcamento)
}

func (h *OrcamentoHandler) Update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var input models.NewOrcamento
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	orcamento, err := workflow.UpdateOrcamento(c.Request.Context(), h.db, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orcamento)
}

func (h *OrcamentoHandler) SetStatus(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	orcamento, err := workflow.SetOrcamentoStatus(c.Request.Context(), h.db, id, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orcamento)
}

func (h *OrcamentoHandler) Delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := models.DeleteOrcamento(c.Request.Context(), h.db, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orçamento excluído com sucesso."})
}
