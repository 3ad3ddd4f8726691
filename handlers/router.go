package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/middlewares"
	"gorm.io/gorm"
)

// SetupRouter wires every route onto a fresh engine. Login and signup are
// the only open endpoints besides the health probe. Extra middleware (CORS
// in production) runs before any route.
func SetupRouter(db *gorm.DB, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CorrelationIdMiddleware())
	r.Use(middleware...)

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "indisponível"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := NewAuthHandler(db)
	r.POST("/login", auth.Login)
	r.POST("/funcionarios/cadastro", auth.Cadastro)

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())

	clientes := NewClienteHandler(db)
	protected.POST("/clientes", clientes.Create)
	protected.GET("/clientes", clientes.List)
	protected.GET("/clientes/:id", clientes.Get)
	protected.PUT("/clientes/:id", clientes.Update)
	protected.DELETE("/clientes/:id", clientes.Delete)

	estoque := NewEstoqueHandler(db)
	protected.POST("/estoque", estoque.Create)
	protected.GET("/estoque", estoque.List)
	protected.GET("/estoque/:id", estoque.Get)
	protected.PUT("/estoque/:id", estoque.Update)
	protected.DELETE("/estoque/:id", estoque.Delete)

	orcamentos := NewOrcamentoHandler(db)
	protected.POST("/orcamentos", orcamentos.Create)
	protected.GET("/orcamentos", orcamentos.List)
	protected.GET("/orcamentos/:id", orcamentos.Get)
	protected.PUT("/orcamentos/:id", orcamentos.Update)
	protected.PUT("/orcamentos/:id/status", orcamentos.SetStatus)
	protected.DELETE("/orcamentos/:id", orcamentos.Delete)

	movimentacoes := NewMovimentacaoHandler(db)
	protected.POST("/movimentacoes_estoque", movimentacoes.Create)
	protected.GET("/movimentacoes_estoque", movimentacoes.List)
	protected.GET("/estoque/:id/movimentacoes", movimentacoes.ListByItem)

	return r
}
