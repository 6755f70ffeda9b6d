package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// MoneyBRL converts centavos to a pt-BR currency string.
// E.g., 12345 -> "R$ 123,45", 123456 -> "R$ 1.234,56"
func MoneyBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + ptBR.Sprintf("R$ %d", cents/100) + ptBR.Sprintf(",%02d", cents%100)
}
