package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyBRL(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "R$ 0,00"},
		{"sub unit", 5, "R$ 0,05"},
		{"one real", 100, "R$ 1,00"},
		{"no grouping", 12345, "R$ 123,45"},
		{"thousands grouping", 123456, "R$ 1.234,56"},
		{"millions grouping", 123456789, "R$ 1.234.567,89"},
		{"negative", -12345, "-R$ 123,45"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MoneyBRL(tc.cents))
		})
	}
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Camiseta X | Ignite Shop", PageTitle("Camiseta X", "Ignite Shop"))
}
