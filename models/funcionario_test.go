package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
)

func TestCreateFuncionarioPasswordPolicy(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	weak := []string{
		"curta1!",        // too short
		"semmaiuscula1!", // no upper
		"SEMMINUSCULA1!", // no lower
		"SemNumero!!",    // no digit
		"SemEspecial11",  // no special
	}
	for _, senha := range weak {
		_, err := models.CreateFuncionario(ctx, db, &models.NewFuncionario{
			Nome: "F", Email: "f@marmoraria.com", Senha: senha, CPF: "52998224725",
		})
		if !errors.Is(err, utils.ErrInvalidInput) {
			t.Errorf("senha %q: err = %v, want invalid input", senha, err)
		}
	}
}

func TestCreateFuncionarioAndLogin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	funcionario, err := models.CreateFuncionario(ctx, db, &models.NewFuncionario{
		Nome:  "Fernanda",
		Email: "Fernanda@Marmoraria.com",
		Senha: "Senha@Forte1",
		CPF:   "529.982.247-25",
	})
	if err != nil {
		t.Fatalf("create funcionario: %v", err)
	}
	if funcionario.Email != "fernanda@marmoraria.com" {
		t.Errorf("email = %q, want lowercased", funcionario.Email)
	}
	if funcionario.CPF != "52998224725" {
		t.Errorf("cpf = %q, want digits only", funcionario.CPF)
	}

	token, err := models.Login(ctx, db, &models.LoginInput{
		Email: "fernanda@marmoraria.com", Senha: "Senha@Forte1",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	id, err := utils.FuncionarioIdFromToken(token)
	if err != nil {
		t.Fatalf("token parse: %v", err)
	}
	if id != funcionario.ID {
		t.Errorf("token subject = %d, want %d", id, funcionario.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := models.CreateFuncionario(ctx, db, &models.NewFuncionario{
		Nome: "G", Email: "g@marmoraria.com", Senha: "Senha@Forte1", CPF: "52998224725",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := models.Login(ctx, db, &models.LoginInput{Email: "g@marmoraria.com", Senha: "errada"})
	if !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	_, err = models.Login(ctx, db, &models.LoginInput{Email: "naoexiste@marmoraria.com", Senha: "Senha@Forte1"})
	if !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("err = %v, want unauthorized for unknown email", err)
	}
}

func TestCreateFuncionarioDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := models.CreateFuncionario(ctx, db, &models.NewFuncionario{
		Nome: "H", Email: "h@marmoraria.com", Senha: "Senha@Forte1", CPF: "52998224725",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := models.CreateFuncionario(ctx, db, &models.NewFuncionario{
		Nome: "H2", Email: "H@marmoraria.com", Senha: "Senha@Forte1", CPF: "16899535009",
	})
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}
