// Package cart implementa o carrinho de compras da vitrine: parse do
// preço localizado, identificador derivado do nome do produto e as
// operações de adicionar, remover, ajustar quantidade e fechar pedido.
package cart

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePreco converte o preço localizado do site ("R$ 1.234,56") em
// float64. Texto fora do formato devolve erro em vez de um valor
// indefinido.
func ParsePreco(texto string) (float64, error) {
	limpo := strings.TrimSpace(texto)
	limpo = strings.TrimPrefix(limpo, "R$")
	limpo = strings.TrimSpace(limpo)
	limpo = strings.ReplaceAll(limpo, ".", "")
	limpo = strings.ReplaceAll(limpo, ",", ".")

	if limpo == "" {
		return 0, fmt.Errorf("preço vazio")
	}

	valor, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0, fmt.Errorf("preço em formato inválido: %q", texto)
	}
	if valor < 0 {
		return 0, fmt.Errorf("preço negativo: %q", texto)
	}
	return valor, nil
}

// FormatarPreco formata o valor no padrão exibido no modal do carrinho.
func FormatarPreco(valor float64) string {
	return fmt.Sprintf("R$ %.2f", valor)
}
