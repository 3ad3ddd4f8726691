package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/workflow"
	"github.com/shopspring/decimal"
)

func TestRecordMovementEntrada(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Granito Ocre Itabira", "10.00")

	mov, err := workflow.RecordMovement(ctx, db, &models.NewMovimentacaoEstoque{
		ItemId:           item.ID,
		TipoMovimentacao: models.TipoMovimentacaoEntrada,
		Quantidade:       decimal.RequireFromString("2.50"),
		Observacoes:      "chegada de chapa",
	})
	if err != nil {
		t.Fatalf("record movement: %v", err)
	}
	if mov.NomeItem != "Granito Ocre Itabira" {
		t.Errorf("nome_item = %q", mov.NomeItem)
	}

	atual, err := models.GetItemEstoque(ctx, db, item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if !atual.Quantidade.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("quantidade = %s, want 12.50", atual.Quantidade)
	}
}

func TestRecordMovementSaidaInsuficiente(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Mármore Rosa Aurora", "1.00")

	_, err := workflow.RecordMovement(ctx, db, &models.NewMovimentacaoEstoque{
		ItemId:           item.ID,
		TipoMovimentacao: models.TipoMovimentacaoSaida,
		Quantidade:       decimal.RequireFromString("2.00"),
	})
	if !errors.Is(err, utils.ErrInsufficientStock) {
		t.Fatalf("err = %v, want insufficient stock", err)
	}

	atual, err := models.GetItemEstoque(ctx, db, item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if !atual.Quantidade.Equal(decimal.RequireFromString("1.00")) {
		t.Errorf("quantidade = %s, want unchanged 1.00", atual.Quantidade)
	}
}

func TestRecordMovementValidation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Granito Azul Macaúbas", "3.00")

	_, err := workflow.RecordMovement(ctx, db, &models.NewMovimentacaoEstoque{
		ItemId:           item.ID,
		TipoMovimentacao: "Transferência",
		Quantidade:       decimal.RequireFromString("1.00"),
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input for unknown tipo", err)
	}

	_, err = workflow.RecordMovement(ctx, db, &models.NewMovimentacaoEstoque{
		ItemId:           item.ID,
		TipoMovimentacao: models.TipoMovimentacaoEntrada,
		Quantidade:       decimal.Zero,
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input for zero quantity", err)
	}

	_, err = workflow.RecordMovement(ctx, db, &models.NewMovimentacaoEstoque{
		ItemId:           999,
		TipoMovimentacao: models.TipoMovimentacaoEntrada,
		Quantidade:       decimal.RequireFromString("1.00"),
	})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("err = %v, want not found for unknown item", err)
	}
}
