package models

import (
	"context"
	"strings"
	"time"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"gorm.io/gorm"
)

type Cliente struct {
	ID           int       `gorm:"primary_key" json:"id"`
	Nome         string    `gorm:"size:100;not null" json:"nome"`
	CPF          string    `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Telefone     string    `gorm:"size:15;not null" json:"telefone"`
	DataCadastro time.Time `gorm:"autoCreateTime" json:"data_cadastro"`
}

type NewCliente struct {
	Nome     string `json:"nome" binding:"required"`
	CPF      string `json:"cpf" binding:"required"`
	Telefone string `json:"telefone" binding:"required"`
}

type UpdateClienteInput struct {
	Nome     *string `json:"nome"`
	CPF      *string `json:"cpf"`
	Telefone *string `json:"telefone"`
}

func (input *NewCliente) validate(ctx context.Context, db *gorm.DB, id int) error {
	if strings.TrimSpace(input.Nome) == "" {
		return utils.InvalidInput("Nome é obrigatório.")
	}
	cpf, err := utils.CleanCPF(input.CPF)
	if err != nil {
		return err
	}
	telefone, err := utils.CleanTelefone(input.Telefone)
	if err != nil {
		return err
	}
	input.CPF = cpf
	input.Telefone = telefone
	return validateUnique[Cliente](ctx, db, "cpf", input.CPF, id, "Já existe um cliente cadastrado com este CPF.")
}

func CreateCliente(ctx context.Context, db *gorm.DB, input *NewCliente) (*Cliente, error) {
	if err := input.validate(ctx, db, 0); err != nil {
		return nil, err
	}

	cliente := Cliente{
		Nome:     strings.TrimSpace(input.Nome),
		CPF:      input.CPF,
		Telefone: input.Telefone,
	}
	if err := db.WithContext(ctx).Create(&cliente).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func UpdateCliente(ctx context.Context, db *gorm.DB, id int, input *UpdateClienteInput) (*Cliente, error) {
	cliente, err := GetCliente(ctx, db, id)
	if err != nil {
		return nil, err
	}

	merged := NewCliente{
		Nome:     cliente.Nome,
		CPF:      cliente.CPF,
		Telefone: cliente.Telefone,
	}
	if input.Nome != nil {
		merged.Nome = *input.Nome
	}
	if input.CPF != nil {
		merged.CPF = *input.CPF
	}
	if input.Telefone != nil {
		merged.Telefone = *input.Telefone
	}
	if err := merged.validate(ctx, db, id); err != nil {
		return nil, err
	}

	cliente.Nome = strings.TrimSpace(merged.Nome)
	cliente.CPF = merged.CPF
	cliente.Telefone = merged.Telefone
	if err := db.WithContext(ctx).Save(cliente).Error; err != nil {
		return nil, err
	}
	return cliente, nil
}

func DeleteCliente(ctx context.Context, db *gorm.DB, id int) error {
	cliente, err := GetCliente(ctx, db, id)
	if err != nil {
		return err
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var orcamentoIds []int
	if err := tx.Model(&Orcamento{}).Where("cliente_id = ?", id).Pluck("id", &orcamentoIds).Error; err != nil {
		tx.Rollback()
		return err
	}
	if len(orcamentoIds) > 0 {
		if err := tx.Where("orcamento_id IN ?", orcamentoIds).Delete(&ItemOrcamento{}).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Where("id IN ?", orcamentoIds).Delete(&Orcamento{}).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Delete(cliente).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func GetCliente(ctx context.Context, db *gorm.DB, id int) (*Cliente, error) {
	return findById[Cliente](ctx, db, id, "Cliente não encontrado.")
}

func ListClientes(ctx context.Context, db *gorm.DB) ([]*Cliente, error) {
	var clientes []*Cliente
	if err := db.WithContext(ctx).Order("nome asc").Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}
