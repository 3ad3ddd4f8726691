package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"gorm.io/gorm"
)

type EstoqueHandler struct {
	db *gorm.DB
}

func NewEstoqueHandler(db *gorm.DB) *EstoqueHandler {
	return &EstoqueHandler{db: db}
}

func (h *EstoqueHandler) Create(c *gin.Context) {
	var input models.NewItemEstoque
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	item, err := models.CreateItemEstoque(c.Request.Context(), h.db, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *EstoqueHandler) List(c *gin.Context) {
	itens, err := models.ListItensEstoque(c.Request.Context(), h.db)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itens)
}

func (h *EstoqueHandler) Get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}
	item, err := models.GetItemEstoque(c.Request.Context(), h.db, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *EstoqueHandler) Update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var input models.UpdateItemEstoqueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	item, err := models.UpdateItemEstoque(c.Request.Context(), h.db, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *EstoqueHandler) Delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := models.DeleteItemEstoque(c.Request.Context(), h.db, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item de estoque excluído com sucesso."})
}
