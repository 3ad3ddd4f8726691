// seed-admin creates the first employee account so the API has a login
// before anyone can reach the open signup endpoint behind a firewall.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//	SEED_EMAIL=admin@marmoraria.com SEED_SENHA='Troque@123' go run ./cmd/seed-admin
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/config"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
)

const (
	defaultNome  = "Administrador"
	defaultEmail = "admin@marmoraria.com"
	defaultCPF   = "00000000000"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable(db)

	senha := os.Getenv("SEED_SENHA")
	if senha == "" {
		fmt.Fprintln(os.Stderr, "SEED_SENHA is required and must satisfy the password policy.")
		os.Exit(2)
	}

	input := models.NewFuncionario{
		Nome:  envOr("SEED_NOME", defaultNome),
		Email: envOr("SEED_EMAIL", defaultEmail),
		Senha: senha,
		CPF:   envOr("SEED_CPF", defaultCPF),
	}

	funcionario, err := models.CreateFuncionario(ctx, db, &input)
	if err != nil {
		if errors.Is(err, utils.ErrConflict) {
			fmt.Println("funcionário já existe; nada a fazer")
			return
		}
		fmt.Fprintf(os.Stderr, "failed to create funcionário: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("funcionário %d (%s) criado\n", funcionario.ID, funcionario.Email)
}
