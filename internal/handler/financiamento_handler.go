package handler

import (
	"context"
	"net/http"

	"github.com/sportgun/loja/internal/financiamento"
	"github.com/sportgun/loja/internal/model"
)

// FinanciamentoServiceInterface é o que o handler de financiamento
// precisa do serviço.
type FinanciamentoServiceInterface interface {
	Simular(ctx context.Context, usuarioID string, pedido financiamento.PedidoSimulacao) (model.Simulacao, error)
	Historico(ctx context.Context, usuarioID string) ([]model.Simulacao, error)
}

// FinanciamentoHandler atende as rotas do simulador de financiamento.
type FinanciamentoHandler struct {
	service FinanciamentoServiceInterface
}

// NewFinanciamentoHandler cria o FinanciamentoHandler.
func NewFinanciamentoHandler(service FinanciamentoServiceInterface) *FinanciamentoHandler {
	return &FinanciamentoHandler{service: service}
}

// Simular calcula uma simulação pela tabela Price e a grava no
// histórico do usuário.
// POST /api/financiamento/simular
func (h *FinanciamentoHandler) Simular(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	var pedido financiamento.PedidoSimulacao
	if !decodeJSON(w, r, &pedido) {
		return
	}

	simulacao, err := h.service.Simular(r.Context(), usuario.ID, pedido)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, simulacao)
}

// Historico devolve as simulações anteriores do usuário.
// GET /api/financiamento/historico
func (h *FinanciamentoHandler) Historico(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	hist, err := h.service.Historico(r.Context(), usuario.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hist)
}
