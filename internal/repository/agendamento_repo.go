package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportgun/loja/internal/model"
)

// LocalAgendamentoRepo implementa AgendamentoRepository sobre o LocalStore,
// serializando a sequência inteira na chave "agendamentos".
type LocalAgendamentoRepo struct {
	store LocalStoreListavel
}

// NewLocalAgendamentoRepo cria um LocalAgendamentoRepo.
func NewLocalAgendamentoRepo(store LocalStoreListavel) *LocalAgendamentoRepo {
	return &LocalAgendamentoRepo{store: store}
}

// Load carrega os agendamentos do usuário. Chave ausente equivale a lista vazia.
func (r *LocalAgendamentoRepo) Load(ctx context.Context, usuarioID string) ([]model.Agendamento, error) {
	raw, err := r.store.Get(ctx, usuarioID, ChaveAgendamentos)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar os agendamentos: %w", err)
	}
	if raw == nil {
		return []model.Agendamento{}, nil
	}

	var ags []model.Agendamento
	if err := json.Unmarshal(raw, &ags); err != nil {
		return nil, fmt.Errorf("falha ao decodificar os agendamentos: %w", err)
	}
	if ags == nil {
		ags = []model.Agendamento{}
	}

	return ags, nil
}

// Save grava a sequência completa de agendamentos.
func (r *LocalAgendamentoRepo) Save(ctx context.Context, usuarioID string, ags []model.Agendamento) error {
	if ags == nil {
		ags = []model.Agendamento{}
	}

	raw, err := json.Marshal(ags)
	if err != nil {
		return fmt.Errorf("falha ao codificar os agendamentos: %w", err)
	}

	if err := r.store.Set(ctx, usuarioID, ChaveAgendamentos, raw); err != nil {
		return fmt.Errorf("falha ao gravar os agendamentos: %w", err)
	}
	return nil
}

// ListUsuarios retorna os usuários que possuem agendamentos gravados.
func (r *LocalAgendamentoRepo) ListUsuarios(ctx context.Context) ([]string, error) {
	return r.store.ListUsuariosComChave(ctx, ChaveAgendamentos)
}
