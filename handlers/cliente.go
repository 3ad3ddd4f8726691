package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"gorm.io/gorm"
)

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

func pathId(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, utils.InvalidInput("Identificador inválido na URL.")
	}
	return id, nil
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var input models.NewCliente
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	cliente, err := models.CreateCliente(c.Request.Context(), h.db, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := models.ListClientes(c.Request.Context(), h.db)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}
	cliente, err := models.GetCliente(c.Request.Context(), h.db, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var input models.UpdateClienteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	cliente, err := models.UpdateCliente(c.Request.Context(), h.db, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := models.DeleteCliente(c.Request.Context(), h.db, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente excluído com sucesso."})
}
