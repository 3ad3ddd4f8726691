package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/config"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"github.com/sirupsen/logrus"
)

// respondError maps domain errors onto HTTP statuses. Anything without a
// known kind is a 500 with a generic body; the detail goes to the log only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidInput), errors.Is(err, utils.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
	case errors.Is(err, utils.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"erro": err.Error()})
	case errors.Is(err, utils.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"erro": err.Error()})
	case errors.Is(err, utils.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"erro": err.Error()})
	default:
		logger := config.GetLogger()
		correlationId, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationId,
			"path":           c.FullPath(),
			"method":         c.Request.Method,
		}).WithError(err).Error("unhandled request error")
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor."})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"erro": "Corpo da requisição inválido: " + err.Error()})
}
