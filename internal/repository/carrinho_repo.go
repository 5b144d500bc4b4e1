package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportgun/loja/internal/model"
)

// LocalCarrinhoRepo implementa CarrinhoRepository sobre o LocalStore,
// serializando a sequência inteira na chave "cart".
type LocalCarrinhoRepo struct {
	store LocalStore
}

// NewLocalCarrinhoRepo cria um LocalCarrinhoRepo.
func NewLocalCarrinhoRepo(store LocalStore) *LocalCarrinhoRepo {
	return &LocalCarrinhoRepo{store: store}
}

// Load carrega o carrinho do usuário. Chave ausente equivale a carrinho vazio.
func (r *LocalCarrinhoRepo) Load(ctx context.Context, usuarioID string) ([]model.ItemCarrinho, error) {
	raw, err := r.store.Get(ctx, usuarioID, ChaveCarrinho)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar o carrinho: %w", err)
	}
	if raw == nil {
		return []model.ItemCarrinho{}, nil
	}

	var itens []model.ItemCarrinho
	if err := json.Unmarshal(raw, &itens); err != nil {
		return nil, fmt.Errorf("falha ao decodificar o carrinho: %w", err)
	}
	if itens == nil {
		itens = []model.ItemCarrinho{}
	}

	return itens, nil
}

// Save grava a sequência completa do carrinho.
func (r *LocalCarrinhoRepo) Save(ctx context.Context, usuarioID string, itens []model.ItemCarrinho) error {
	if itens == nil {
		itens = []model.ItemCarrinho{}
	}

	raw, err := json.Marshal(itens)
	if err != nil {
		return fmt.Errorf("falha ao codificar o carrinho: %w", err)
	}

	if err := r.store.Set(ctx, usuarioID, ChaveCarrinho, raw); err != nil {
		return fmt.Errorf("falha ao gravar o carrinho: %w", err)
	}
	return nil
}
