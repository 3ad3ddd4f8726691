package models

import (
	"log"

	"gorm.io/gorm"
)

func MigrateTable(db *gorm.DB) {
	err := db.AutoMigrate(
		&Funcionario{},
		&Cliente{},
		&ItemEstoque{},
		&Orcamento{}, &ItemOrcamento{},
		&MovimentacaoEstoque{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
