package utils

import "strings"

// CleanDigits strips every non-digit character from s.
func CleanDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanCPF returns the digits-only CPF, which must be exactly 11 digits.
func CleanCPF(cpf string) (string, error) {
	cleaned := CleanDigits(cpf)
	if len(cleaned) != 11 {
		return "", InvalidInput("CPF deve conter exatamente 11 dígitos numéricos.")
	}
	return cleaned, nil
}

// CleanTelefone returns the digits-only phone number, which must have
// between 8 and 11 digits (with or without area code).
func CleanTelefone(telefone string) (string, error) {
	cleaned := CleanDigits(telefone)
	if len(cleaned) < 8 || len(cleaned) > 11 {
		return "", InvalidInput("Telefone deve conter entre 8 e 11 dígitos numéricos.")
	}
	return cleaned, nil
}
