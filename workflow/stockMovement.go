package workflow

import (
	"context"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordMovement appends a manual entry to the stock ledger and adjusts the
// item balance in the same transaction. Saída beyond the current balance is
// rejected.
func RecordMovement(ctx context.Context, db *gorm.DB, input *models.NewMovimentacaoEstoque) (*models.MovimentacaoEstoque, error) {
	if !input.TipoMovimentacao.Valid() {
		return nil, utils.InvalidInput("Tipo de movimentação inválido. Use Entrada ou Saída.")
	}
	if input.Quantidade.LessThanOrEqual(decimal.Zero) {
		return nil, utils.InvalidInput("Quantidade da movimentação deve ser maior que zero.")
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var item models.ItemEstoque
	err := lockForUpdate(tx.WithContext(ctx)).First(&item, input.ItemId).Error
	if err == gorm.ErrRecordNotFound {
		tx.Rollback()
		return nil, utils.NotFound("Item de estoque não encontrado.")
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := applyMovementTx(ctx, tx, &item, input.TipoMovimentacao, input.Quantidade, input.Observacoes); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	var movimentacao models.MovimentacaoEstoque
	err = db.WithContext(ctx).Where("item_id = ?", item.ID).
		Order("id desc").First(&movimentacao).Error
	if err != nil {
		return nil, err
	}
	movimentacao.NomeItem = item.NomeItem
	return &movimentacao, nil
}

// applyMovementTx is the single write path for the ledger: every balance
// change, manual or approval-driven, goes through here. The caller holds
// the transaction and the row lock on item.
func applyMovementTx(ctx context.Context, tx *gorm.DB, item *models.ItemEstoque, tipo models.TipoMovimentacao, quantidade decimal.Decimal, observacoes string) error {
	var novaQuantidade decimal.Decimal
	switch tipo {
	case models.TipoMovimentacaoEntrada:
		novaQuantidade = item.Quantidade.Add(quantidade)
	case models.TipoMovimentacaoSaida:
		novaQuantidade = item.Quantidade.Sub(quantidade)
		if novaQuantidade.IsNegative() {
			return utils.InsufficientStock(
				"Estoque insuficiente para o item '%s': disponível %s, solicitado %s.",
				item.NomeItem, item.Quantidade.String(), quantidade.String())
		}
	default:
		return utils.InvalidInput("Tipo de movimentação inválido. Use Entrada ou Saída.")
	}

	movimentacao := models.MovimentacaoEstoque{
		ItemId:           item.ID,
		TipoMovimentacao: tipo,
		Quantidade:       quantidade,
		Observacoes:      observacoes,
	}
	if err := tx.WithContext(ctx).Create(&movimentacao).Error; err != nil {
		return err
	}

	item.Quantidade = novaQuantidade
	return tx.WithContext(ctx).Model(&models.ItemEstoque{}).Where("id = ?", item.ID).
		Update("quantidade", novaQuantidade).Error
}
