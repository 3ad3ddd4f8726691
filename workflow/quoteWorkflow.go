package workflow

import (
	"context"
	"fmt"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row lock on dialects that support it. sqlite (used
// in tests) serializes writers anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func validateOrcamentoInput(ctx context.Context, tx *gorm.DB, input *models.NewOrcamento) error {
	if len(input.Itens) == 0 {
		return utils.InvalidInput("O orçamento deve conter ao menos um item.")
	}
	if input.Status == "" {
		input.Status = models.StatusOrcamentoPendente
	}
	if !input.Status.Valid() {
		return utils.InvalidInput("Status inválido. Use Pendente, Aprovado ou Rejeitado.")
	}
	var count int64
	if err := tx.WithContext(ctx).Model(&models.Cliente{}).Where("id = ?", input.ClienteId).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NotFound("Cliente não encontrado.")
	}
	for _, linha := range input.Itens {
		if linha.Quantidade.LessThanOrEqual(decimal.Zero) {
			return utils.InvalidInput("Quantidade do item deve ser maior que zero.")
		}
		if linha.PrecoUnitarioPraticado.LessThanOrEqual(decimal.Zero) {
			return utils.InvalidInput("Preço unitário praticado deve ser maior que zero.")
		}
		if linha.Subtotal.LessThanOrEqual(decimal.Zero) {
			return utils.InvalidInput("Subtotal deve ser maior que zero.")
		}
	}
	return nil
}

// buildItens resolves each line against the stock catalog and snapshots the
// item name and unit onto the line. Subtotal comes from the caller as sent;
// the clients compute it alongside log_calculo, which may describe area
// math (width x height) the backend has no inputs for.
func buildItens(ctx context.Context, tx *gorm.DB, orcamentoId int, inputs []*models.NewItemOrcamento) ([]*models.ItemOrcamento, error) {
	itens := make([]*models.ItemOrcamento, 0, len(inputs))
	for _, input := range inputs {
		var item models.ItemEstoque
		err := tx.WithContext(ctx).First(&item, input.ItemEstoqueId).Error
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("Item de estoque %d não encontrado.", input.ItemEstoqueId)
		}
		if err != nil {
			return nil, err
		}
		itens = append(itens, &models.ItemOrcamento{
			OrcamentoId:            orcamentoId,
			ItemEstoqueId:          item.ID,
			NomeItem:               item.NomeItem,
			UnidadeMedida:          item.UnidadeMedida,
			Quantidade:             input.Quantidade,
			PrecoUnitarioPraticado: input.PrecoUnitarioPraticado,
			Subtotal:               input.Subtotal,
			LogCalculo:             input.LogCalculo,
		})
	}
	return itens, nil
}

func CreateOrcamento(ctx context.Context, db *gorm.DB, input *models.NewOrcamento) (*models.Orcamento, error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := validateOrcamentoInput(ctx, tx, input); err != nil {
		tx.Rollback()
		return nil, err
	}

	orcamento := models.Orcamento{
		ClienteId:   input.ClienteId,
		Observacoes: input.Observacoes,
		Status:      models.StatusOrcamentoPendente,
	}
	if err := tx.Create(&orcamento).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	itens, err := buildItens(ctx, tx, orcamento.ID, input.Itens)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Create(&itens).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	orcamento.Total = models.SumSubtotals(itens)
	if err := tx.Model(&orcamento).Update("total", orcamento.Total).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if input.Status != models.StatusOrcamentoPendente {
		if err := transition(ctx, tx, &orcamento, input.Status); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetOrcamento(ctx, db, orcamento.ID)
}

// UpdateOrcamento replaces the quote header and its full line set. A status
// in the payload goes through the same state machine as the dedicated
// status endpoint, so updating an already approved quote to Aprovado again
// does not debit stock twice.
func UpdateOrcamento(ctx context.Context, db *gorm.DB, id int, input *models.NewOrcamento) (*models.Orcamento, error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var orcamento models.Orcamento
	err := tx.First(&orcamento, id).Error
	if err == gorm.ErrRecordNotFound {
		tx.Rollback()
		return nil, utils.NotFound("Orçamento não encontrado.")
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if input.Status == "" {
		input.Status = orcamento.Status
	}
	if err := validateOrcamentoInput(ctx, tx, input); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("orcamento_id = ?", id).Delete(&models.ItemOrcamento{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	itens, err := buildItens(ctx, tx, id, input.Itens)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Create(&itens).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	orcamento.ClienteId = input.ClienteId
	orcamento.Observacoes = input.Observacoes
	orcamento.Total = models.SumSubtotals(itens)
	if err := tx.Save(&orcamento).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if input.Status != orcamento.Status {
		if err := transition(ctx, tx, &orcamento, input.Status); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetOrcamento(ctx, db, id)
}

// SetOrcamentoStatus moves a quote to a new status. Entering Aprovado
// debits stock atomically; any other transition only updates the column.
// Leaving Aprovado never restocks.
func SetOrcamentoStatus(ctx context.Context, db *gorm.DB, id int, status models.StatusOrcamento) (*models.Orcamento, error) {
	if !status.Valid() {
		return nil, utils.InvalidInput("Status inválido. Use Pendente, Aprovado ou Rejeitado.")
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var orcamento models.Orcamento
	err := lockForUpdate(tx.WithContext(ctx)).First(&orcamento, id).Error
	if err == gorm.ErrRecordNotFound {
		tx.Rollback()
		return nil, utils.NotFound("Orçamento não encontrado.")
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := transition(ctx, tx, &orcamento, status); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetOrcamento(ctx, db, id)
}

func transition(ctx context.Context, tx *gorm.DB, orcamento *models.Orcamento, status models.StatusOrcamento) error {
	if orcamento.Status == status {
		return nil
	}
	if status == models.StatusOrcamentoAprovado {
		if err := applyApprovalDebits(ctx, tx, orcamento.ID); err != nil {
			return err
		}
	}
	orcamento.Status = status
	return tx.Model(&models.Orcamento{}).Where("id = ?", orcamento.ID).
		Update("status", status).Error
}

// applyApprovalDebits walks the quote lines in two passes inside the
// caller's transaction. Pass one locks every referenced stock item and
// accumulates the required quantity per item, so duplicate references to
// the same item are checked against their combined demand. Pass two writes
// the Saída movements and decrements the balances. Any failure leaves the
// transaction for the caller to roll back, so stock is either debited for
// every line or for none.
func applyApprovalDebits(ctx context.Context, tx *gorm.DB, orcamentoId int) error {
	var linhas []*models.ItemOrcamento
	if err := tx.WithContext(ctx).Where("orcamento_id = ?", orcamentoId).
		Order("id asc").Find(&linhas).Error; err != nil {
		return err
	}

	locked := make(map[int]*models.ItemEstoque)
	required := make(map[int]decimal.Decimal)

	for _, linha := range linhas {
		item, ok := locked[linha.ItemEstoqueId]
		if !ok {
			var fetched models.ItemEstoque
			err := lockForUpdate(tx.WithContext(ctx)).First(&fetched, linha.ItemEstoqueId).Error
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("Item de estoque %d não encontrado.", linha.ItemEstoqueId)
			}
			if err != nil {
				return err
			}
			item = &fetched
			locked[item.ID] = item
			required[item.ID] = decimal.Zero
		}
		needed := required[item.ID].Add(linha.Quantidade)
		if needed.GreaterThan(item.Quantidade) {
			return utils.InsufficientStock(
				"Estoque insuficiente para o item '%s': disponível %s, necessário %s.",
				item.NomeItem, item.Quantidade.String(), needed.String())
		}
		required[item.ID] = needed
	}

	observacao := fmt.Sprintf("Saída automática por aprovação do orçamento %d", orcamentoId)
	for _, linha := range linhas {
		item := locked[linha.ItemEstoqueId]
		if err := applyMovementTx(ctx, tx, item, models.TipoMovimentacaoSaida, linha.Quantidade, observacao); err != nil {
			return err
		}
	}
	return nil
}
