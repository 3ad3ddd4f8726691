package models

import (
	"context"
	"strings"
	"time"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemEstoque struct {
	ID              int             `gorm:"primary_key" json:"id"`
	NomeItem        string          `gorm:"size:100;uniqueIndex;not null" json:"nome_item"`
	Tipo            string          `gorm:"size:50" json:"tipo"`
	Quantidade      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"quantidade"`
	UnidadeMedida   string          `gorm:"size:20;not null" json:"unidade_medida"`
	PrecoUnitario   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"preco_unitario"`
	DataAtualizacao time.Time       `gorm:"autoUpdateTime" json:"data_atualizacao"`
}

type NewItemEstoque struct {
	NomeItem      string          `json:"nome_item" binding:"required"`
	Tipo          string          `json:"tipo"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	UnidadeMedida string          `json:"unidade_medida" binding:"required"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

type UpdateItemEstoqueInput struct {
	NomeItem      *string          `json:"nome_item"`
	Tipo          *string          `json:"tipo"`
	Quantidade    *decimal.Decimal `json:"quantidade"`
	UnidadeMedida *string          `json:"unidade_medida"`
	PrecoUnitario *decimal.Decimal `json:"preco_unitario"`
}

func (input *NewItemEstoque) validate(ctx context.Context, db *gorm.DB, id int) error {
	input.NomeItem = strings.TrimSpace(input.NomeItem)
	if input.NomeItem == "" {
		return utils.InvalidInput("Nome do item é obrigatório.")
	}
	if strings.TrimSpace(input.Tipo) == "" {
		return utils.InvalidInput("Tipo do item é obrigatório.")
	}
	if strings.TrimSpace(input.UnidadeMedida) == "" {
		return utils.InvalidInput("Unidade de medida é obrigatória.")
	}
	if input.Quantidade.IsNegative() {
		return utils.InvalidInput("Quantidade não pode ser negativa.")
	}
	if input.PrecoUnitario.IsNegative() {
		return utils.InvalidInput("Preço unitário não pode ser negativo.")
	}
	return validateUnique[ItemEstoque](ctx, db, "nome_item", input.NomeItem, id, "Já existe um item de estoque com este nome.")
}

func CreateItemEstoque(ctx context.Context, db *gorm.DB, input *NewItemEstoque) (*ItemEstoque, error) {
	if err := input.validate(ctx, db, 0); err != nil {
		return nil, err
	}

	item := ItemEstoque{
		NomeItem:      input.NomeItem,
		Tipo:          strings.TrimSpace(input.Tipo),
		Quantidade:    input.Quantidade,
		UnidadeMedida: strings.TrimSpace(input.UnidadeMedida),
		PrecoUnitario: input.PrecoUnitario,
	}
	if err := db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func UpdateItemEstoque(ctx context.Context, db *gorm.DB, id int, input *UpdateItemEstoqueInput) (*ItemEstoque, error) {
	item, err := GetItemEstoque(ctx, db, id)
	if err != nil {
		return nil, err
	}

	merged := NewItemEstoque{
		NomeItem:      item.NomeItem,
		Tipo:          item.Tipo,
		Quantidade:    item.Quantidade,
		UnidadeMedida: item.UnidadeMedida,
		PrecoUnitario: item.PrecoUnitario,
	}
	if input.NomeItem != nil {
		merged.NomeItem = *input.NomeItem
	}
	if input.Tipo != nil {
		merged.Tipo = *input.Tipo
	}
	if input.Quantidade != nil {
		merged.Quantidade = *input.Quantidade
	}
	if input.UnidadeMedida != nil {
		merged.UnidadeMedida = *input.UnidadeMedida
	}
	if input.PrecoUnitario != nil {
		merged.PrecoUnitario = *input.PrecoUnitario
	}
	if err := merged.validate(ctx, db, id); err != nil {
		return nil, err
	}

	item.NomeItem = merged.NomeItem
	item.Tipo = strings.TrimSpace(merged.Tipo)
	item.Quantidade = merged.Quantidade
	item.UnidadeMedida = strings.TrimSpace(merged.UnidadeMedida)
	item.PrecoUnitario = merged.PrecoUnitario
	if err := db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItemEstoque removes the stock item together with its movement
// history and any quote lines that reference it. Quotes that lose lines
// get their totals recomputed from the surviving lines, inside the same
// transaction.
func DeleteItemEstoque(ctx context.Context, db *gorm.DB, id int) error {
	item, err := GetItemEstoque(ctx, db, id)
	if err != nil {
		return err
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var orcamentoIds []int
	if err := tx.Model(&ItemOrcamento{}).Where("item_estoque_id = ?", id).
		Distinct().Pluck("orcamento_id", &orcamentoIds).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("item_estoque_id = ?", id).Delete(&ItemOrcamento{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("item_id = ?", id).Delete(&MovimentacaoEstoque{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, orcamentoId := range orcamentoIds {
		var restantes []*ItemOrcamento
		if err := tx.Where("orcamento_id = ?", orcamentoId).Find(&restantes).Error; err != nil {
			tx.Rollback()
			return err
		}
		total := decimal.Zero
		for _, linha := range restantes {
			total = total.Add(linha.Subtotal)
		}
		if err := tx.Model(&Orcamento{}).Where("id = ?", orcamentoId).
			Update("total", total).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Delete(item).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func GetItemEstoque(ctx context.Context, db *gorm.DB, id int) (*ItemEstoque, error) {
	return findById[ItemEstoque](ctx, db, id, "Item de estoque não encontrado.")
}

func ListItensEstoque(ctx context.Context, db *gorm.DB) ([]*ItemEstoque, error) {
	var itens []*ItemEstoque
	if err := db.WithContext(ctx).Order("nome_item asc").Find(&itens).Error; err != nil {
		return nil, err
	}
	return itens, nil
}
