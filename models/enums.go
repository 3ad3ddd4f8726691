package models

type StatusOrcamento string

const (
	StatusOrcamentoPendente  StatusOrcamento = "Pendente"
	StatusOrcamentoAprovado  StatusOrcamento = "Aprovado"
	StatusOrcamentoRejeitado StatusOrcamento = "Rejeitado"
)

func (s StatusOrcamento) Valid() bool {
	switch s {
	case StatusOrcamentoPendente, StatusOrcamentoAprovado, StatusOrcamentoRejeitado:
		return true
	}
	return false
}

type TipoMovimentacao string

const (
	TipoMovimentacaoEntrada TipoMovimentacao = "Entrada"
	TipoMovimentacaoSaida   TipoMovimentacao = "Saída"
)

func (t TipoMovimentacao) Valid() bool {
	switch t {
	case TipoMovimentacaoEntrada, TipoMovimentacaoSaida:
		return true
	}
	return false
}
