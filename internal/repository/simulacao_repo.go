package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportgun/loja/internal/model"
)

// LocalSimulacaoRepo implementa SimulacaoRepository sobre o LocalStore,
// serializando o histórico na chave "historicoFinanciamentos".
type LocalSimulacaoRepo struct {
	store LocalStore
}

// NewLocalSimulacaoRepo cria um LocalSimulacaoRepo.
func NewLocalSimulacaoRepo(store LocalStore) *LocalSimulacaoRepo {
	return &LocalSimulacaoRepo{store: store}
}

// Load carrega o histórico do usuário. Chave ausente equivale a lista vazia.
func (r *LocalSimulacaoRepo) Load(ctx context.Context, usuarioID string) ([]model.Simulacao, error) {
	raw, err := r.store.Get(ctx, usuarioID, ChaveHistorico)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar o histórico de simulações: %w", err)
	}
	if raw == nil {
		return []model.Simulacao{}, nil
	}

	var hist []model.Simulacao
	if err := json.Unmarshal(raw, &hist); err != nil {
		return nil, fmt.Errorf("falha ao decodificar o histórico de simulações: %w", err)
	}
	if hist == nil {
		hist = []model.Simulacao{}
	}

	return hist, nil
}

// Save grava o histórico completo.
func (r *LocalSimulacaoRepo) Save(ctx context.Context, usuarioID string, hist []model.Simulacao) error {
	if hist == nil {
		hist = []model.Simulacao{}
	}

	raw, err := json.Marshal(hist)
	if err != nil {
		return fmt.Errorf("falha ao codificar o histórico de simulações: %w", err)
	}

	if err := r.store.Set(ctx, usuarioID, ChaveHistorico, raw); err != nil {
		return fmt.Errorf("falha ao gravar o histórico de simulações: %w", err)
	}
	return nil
}
