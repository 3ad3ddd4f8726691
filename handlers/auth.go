package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	token, err := models.Login(c.Request.Context(), h.db, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (h *AuthHandler) Cadastro(c *gin.Context) {
	var input models.NewFuncionario
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	funcionario, err := models.CreateFuncionario(c.Request.Context(), h.db, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, funcionario)
}
