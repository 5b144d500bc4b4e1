// Package repository define as interfaces de persistência da loja.
//
// O armazenamento é um espelho do localStorage do site original: valores
// JSON por (usuário, chave), gravados por inteiro a cada mutação, no modo
// read-modify-write sem transação. Escritas concorrentes da mesma chave
// se sobrescrevem (last-write-wins, sem merge).
package repository

import (
	"context"

	"github.com/sportgun/loja/internal/model"
)

// Chaves fixas do armazenamento local.
const (
	ChaveCarrinho     = "cart"
	ChaveAgendamentos = "agendamentos"
	ChaveHistorico    = "historicoFinanciamentos"
)

// LocalStore é o armazenamento chave/valor plano por usuário.
type LocalStore interface {
	// Get retorna o valor JSON da chave. Retorna nil quando a chave não existe.
	Get(ctx context.Context, usuarioID, chave string) ([]byte, error)
	// Set grava o valor JSON da chave, sobrescrevendo o anterior.
	Set(ctx context.Context, usuarioID, chave string, valor []byte) error
	// Delete remove a chave. Não é erro remover chave inexistente.
	Delete(ctx context.Context, usuarioID, chave string) error
}

// LocalStoreListavel estende LocalStore com a listagem de usuários que
// possuem uma chave gravada.
type LocalStoreListavel interface {
	LocalStore
	ListUsuariosComChave(ctx context.Context, chave string) ([]string, error)
}

// CarrinhoRepository persiste a sequência de itens do carrinho.
type CarrinhoRepository interface {
	// Load carrega o carrinho do usuário. Chave ausente equivale a carrinho vazio.
	Load(ctx context.Context, usuarioID string) ([]model.ItemCarrinho, error)
	// Save grava a sequência completa do carrinho.
	Save(ctx context.Context, usuarioID string, itens []model.ItemCarrinho) error
}

// AgendamentoRepository persiste a sequência de agendamentos.
type AgendamentoRepository interface {
	// Load carrega os agendamentos do usuário. Chave ausente equivale a lista vazia.
	Load(ctx context.Context, usuarioID string) ([]model.Agendamento, error)
	// Save grava a sequência completa de agendamentos.
	Save(ctx context.Context, usuarioID string, ags []model.Agendamento) error
	// ListUsuarios retorna os usuários que possuem agendamentos gravados.
	// Usado pelo worker de confirmação simulada.
	ListUsuarios(ctx context.Context) ([]string, error)
}

// SimulacaoRepository persiste o histórico de simulações de financiamento.
type SimulacaoRepository interface {
	// Load carrega o histórico do usuário. Chave ausente equivale a lista vazia.
	Load(ctx context.Context, usuarioID string) ([]model.Simulacao, error)
	// Save grava o histórico completo.
	Save(ctx context.Context, usuarioID string, hist []model.Simulacao) error
}
