package models

import (
	"context"
	"errors"
	"time"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Orcamento struct {
	ID              int              `gorm:"primary_key" json:"id"`
	ClienteId       int              `gorm:"index;not null" json:"cliente_id"`
	Cliente         *Cliente         `json:"-"`
	NomeCliente     string           `gorm:"-" json:"nome_cliente"`
	Observacoes     string           `gorm:"type:text" json:"observacoes"`
	Total           decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	Status          StatusOrcamento  `gorm:"size:20;not null;default:'Pendente'" json:"status"`
	Itens           []*ItemOrcamento `gorm:"foreignKey:OrcamentoId" json:"itens"`
	DataCriacao     time.Time        `gorm:"autoCreateTime" json:"data_criacao"`
	DataAtualizacao time.Time        `gorm:"autoUpdateTime" json:"data_atualizacao"`
}

type ItemOrcamento struct {
	ID                     int             `gorm:"primary_key" json:"id"`
	OrcamentoId            int             `gorm:"index;not null" json:"orcamento_id"`
	ItemEstoqueId          int             `gorm:"index;not null" json:"item_estoque_id"`
	NomeItem               string          `gorm:"size:100;not null" json:"nome_item"`
	UnidadeMedida          string          `gorm:"size:20;not null" json:"unidade_medida"`
	Quantidade             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantidade"`
	PrecoUnitarioPraticado decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"preco_unitario_praticado"`
	Subtotal               decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	LogCalculo             string          `gorm:"type:text" json:"log_calculo"`
}

type NewItemOrcamento struct {
	ItemEstoqueId          int             `json:"item_estoque_id" binding:"required"`
	Quantidade             decimal.Decimal `json:"quantidade"`
	PrecoUnitarioPraticado decimal.Decimal `json:"preco_unitario_praticado"`
	Subtotal               decimal.Decimal `json:"subtotal"`
	LogCalculo             string          `json:"log_calculo"`
}

type NewOrcamento struct {
	ClienteId   int                 `json:"cliente_id" binding:"required"`
	Observacoes string              `json:"observacoes"`
	Status      StatusOrcamento     `json:"status"`
	Itens       []*NewItemOrcamento `json:"itens" binding:"required"`
}

func (o *Orcamento) enrich() {
	if o.Cliente != nil {
		o.NomeCliente = o.Cliente.Nome
	}
	if o.Itens == nil {
		o.Itens = []*ItemOrcamento{}
	}
}

func GetOrcamento(ctx context.Context, db *gorm.DB, id int) (*Orcamento, error) {
	var orcamento Orcamento
	err := db.WithContext(ctx).Preload("Itens").Preload("Cliente").First(&orcamento, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Orçamento não encontrado.")
	}
	if err != nil {
		return nil, err
	}
	orcamento.enrich()
	return &orcamento, nil
}

func ListOrcamentos(ctx context.Context, db *gorm.DB) ([]*Orcamento, error) {
	var orcamentos []*Orcamento
	err := db.WithContext(ctx).Preload("Itens").Preload("Cliente").
		Order("data_criacao desc").Find(&orcamentos).Error
	if err != nil {
		return nil, err
	}
	for _, orcamento := range orcamentos {
		orcamento.enrich()
	}
	return orcamentos, nil
}

func DeleteOrcamento(ctx context.Context, db *gorm.DB, id int) error {
	orcamento, err := GetOrcamento(ctx, db, id)
	if err != nil {
		return err
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("orcamento_id = ?", id).Delete(&ItemOrcamento{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&Orcamento{}, orcamento.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// SumSubtotals is the quote total as derived from its lines. The stored
// Total column must always match it.
func SumSubtotals(itens []*ItemOrcamento) decimal.Decimal {
	total := decimal.Zero
	for _, item := range itens {
		total = total.Add(item.Subtotal)
	}
	return total
}
