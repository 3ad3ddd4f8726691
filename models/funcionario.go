package models

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"gorm.io/gorm"
)

type Funcionario struct {
	ID        int    `gorm:"primary_key" json:"id"`
	Nome      string `gorm:"size:100;not null" json:"nome"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`
	CPF       string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
}

type NewFuncionario struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
}

type LoginInput struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateSenha(senha string) error {
	if len(senha) < 8 {
		return utils.InvalidInput("A senha deve ter no mínimo 8 caracteres.")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range senha {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return utils.InvalidInput("A senha deve conter letra maiúscula, letra minúscula, número e caractere especial.")
	}
	return nil
}

func (input *NewFuncionario) validate(ctx context.Context, db *gorm.DB) error {
	if strings.TrimSpace(input.Nome) == "" {
		return utils.InvalidInput("Nome é obrigatório.")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(input.Email) {
		return utils.InvalidInput("Formato de e-mail inválido.")
	}
	if err := validateSenha(input.Senha); err != nil {
		return err
	}
	cpf, err := utils.CleanCPF(input.CPF)
	if err != nil {
		return err
	}
	input.CPF = cpf
	if err := validateUnique[Funcionario](ctx, db, "email", input.Email, 0, "Já existe um funcionário cadastrado com este e-mail."); err != nil {
		return err
	}
	return validateUnique[Funcionario](ctx, db, "cpf", input.CPF, 0, "Já existe um funcionário cadastrado com este CPF.")
}

func CreateFuncionario(ctx context.Context, db *gorm.DB, input *NewFuncionario) (*Funcionario, error) {
	if err := input.validate(ctx, db); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Senha)
	if err != nil {
		return nil, err
	}

	funcionario := Funcionario{
		Nome:      strings.TrimSpace(input.Nome),
		Email:     input.Email,
		SenhaHash: string(hash),
		CPF:       input.CPF,
	}
	if err := db.WithContext(ctx).Create(&funcionario).Error; err != nil {
		return nil, err
	}
	return &funcionario, nil
}

// Login checks credentials and returns a signed access token. The same
// message covers unknown e-mail and wrong password on purpose.
func Login(ctx context.Context, db *gorm.DB, input *LoginInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var funcionario Funcionario
	err := db.WithContext(ctx).Where("email = ?", email).First(&funcionario).Error
	if err != nil {
		return "", utils.Unauthorized("Credenciais inválidas.")
	}
	if err := utils.ComparePassword(funcionario.SenhaHash, input.Senha); err != nil {
		return "", utils.Unauthorized("Credenciais inválidas.")
	}
	return utils.JwtGenerate(funcionario.ID)
}

func GetFuncionario(ctx context.Context, db *gorm.DB, id int) (*Funcionario, error) {
	return findById[Funcionario](ctx, db, id, "Funcionário não encontrado.")
}
