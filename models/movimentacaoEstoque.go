package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MovimentacaoEstoque struct {
	ID               int              `gorm:"primary_key" json:"id"`
	ItemId           int              `gorm:"index;not null" json:"item_id"`
	TipoMovimentacao TipoMovimentacao `gorm:"size:10;not null" json:"tipo_movimentacao"`
	Quantidade       decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"quantidade"`
	DataMovimentacao time.Time        `gorm:"autoCreateTime" json:"data_movimentacao"`
	Observacoes      string           `gorm:"type:text" json:"observacoes"`
	NomeItem         string           `gorm:"-" json:"nome_item"`
}

type NewMovimentacaoEstoque struct {
	ItemId           int              `json:"item_id" binding:"required"`
	TipoMovimentacao TipoMovimentacao `json:"tipo_movimentacao" binding:"required"`
	Quantidade       decimal.Decimal  `json:"quantidade"`
	Observacoes      string           `json:"observacoes"`
}

// ListMovimentacoes returns the full ledger, newest first, with each row
// carrying the current name of its stock item.
func ListMovimentacoes(ctx context.Context, db *gorm.DB) ([]*MovimentacaoEstoque, error) {
	var movimentacoes []*MovimentacaoEstoque
	err := db.WithContext(ctx).Order("data_movimentacao desc, id desc").Find(&movimentacoes).Error
	if err != nil {
		return nil, err
	}
	if len(movimentacoes) == 0 {
		return movimentacoes, nil
	}

	itemIds := make([]int, 0, len(movimentacoes))
	seen := make(map[int]bool)
	for _, mov := range movimentacoes {
		if !seen[mov.ItemId] {
			seen[mov.ItemId] = true
			itemIds = append(itemIds, mov.ItemId)
		}
	}

	var itens []*ItemEstoque
	if err := db.WithContext(ctx).Where("id IN ?", itemIds).Find(&itens).Error; err != nil {
		return nil, err
	}
	nomes := make(map[int]string, len(itens))
	for _, item := range itens {
		nomes[item.ID] = item.NomeItem
	}
	for _, mov := range movimentacoes {
		mov.NomeItem = nomes[mov.ItemId]
	}
	return movimentacoes, nil
}

func ListMovimentacoesByItem(ctx context.Context, db *gorm.DB, itemId int) ([]*MovimentacaoEstoque, error) {
	item, err := GetItemEstoque(ctx, db, itemId)
	if err != nil {
		return nil, err
	}
	var movimentacoes []*MovimentacaoEstoque
	err = db.WithContext(ctx).Where("item_id = ?", itemId).
		Order("data_movimentacao desc, id desc").Find(&movimentacoes).Error
	if err != nil {
		return nil, err
	}
	for _, mov := range movimentacoes {
		mov.NomeItem = item.NomeItem
	}
	return movimentacoes, nil
}
