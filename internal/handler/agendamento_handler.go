package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportgun/loja/internal/agendamento"
	"github.com/sportgun/loja/internal/model"
)

// AgendamentoServiceInterface é o que o handler de agendamentos precisa
// do serviço.
type AgendamentoServiceInterface interface {
	Criar(ctx context.Context, usuarioID string, pedido agendamento.PedidoAgendamento) (agendamento.ResultadoCriacao, error)
	Listar(ctx context.Context, usuarioID string) ([]model.Agendamento, error)
	Confirmar(ctx context.Context, usuarioID, agendamentoID string) (agendamento.ResultadoConfirmacao, error)
	Cancelar(ctx context.Context, usuarioID, agendamentoID string) (model.Agendamento, error)
}

// AgendamentoHandler atende as rotas de agendamento de visita.
type AgendamentoHandler struct {
	service AgendamentoServiceInterface
}

// NewAgendamentoHandler cria o AgendamentoHandler.
func NewAgendamentoHandler(service AgendamentoServiceInterface) *AgendamentoHandler {
	return &AgendamentoHandler{service: service}
}

// Criar registra um novo agendamento e devolve o link de WhatsApp da
// notificação à loja.
// POST /api/agendamentos
func (h *AgendamentoHandler) Criar(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	var pedido agendamento.PedidoAgendamento
	if !decodeJSON(w, r, &pedido) {
		return
	}

	resultado, err := h.service.Criar(r.Context(), usuario.ID, pedido)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resultado)
}

// Listar devolve os agendamentos do usuário.
// GET /api/agendamentos
func (h *AgendamentoHandler) Listar(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	ags, err := h.service.Listar(r.Context(), usuario.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ags)
}

// Confirmar marca o agendamento como confirmado.
// POST /api/agendamentos/{id}/confirmar
func (h *AgendamentoHandler) Confirmar(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	resultado, err := h.service.Confirmar(r.Context(), usuario.ID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultado)
}

// Cancelar marca o agendamento como cancelado.
// POST /api/agendamentos/{id}/cancelar
func (h *AgendamentoHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	ag, err := h.service.Cancelar(r.Context(), usuario.ID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ag)
}
