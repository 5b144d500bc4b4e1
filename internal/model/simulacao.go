// Package model define os modelos de domínio da loja.
package model

import "time"

// Simulacao é um registro de simulação de financiamento pela tabela Price.
// Juros é a taxa mensal em porcentagem (ex.: 1.5 = 1,5% a.m.).
// As tags JSON seguem o esquema da chave "historicoFinanciamentos".
type Simulacao struct {
	Data       time.Time `json:"data"`
	Valor      float64   `json:"valor"`
	Entrada    float64   `json:"entrada"`
	Juros      float64   `json:"juros"`
	Meses      int       `json:"meses"`
	ValorFinal float64   `json:"valorFinal"`
	Parcela    float64   `json:"parcela"`
	TotalPago  float64   `json:"totalPago"`
}
