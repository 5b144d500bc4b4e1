package handler

import (
	"net/http"

	"github.com/sportgun/loja/internal/destaques"
)

// DestaquesHandler atende o carrossel de destaques.
type DestaquesHandler struct {
	carrossel *destaques.Carrossel
}

// NewDestaquesHandler cria o DestaquesHandler.
func NewDestaquesHandler(carrossel *destaques.Carrossel) *DestaquesHandler {
	return &DestaquesHandler{carrossel: carrossel}
}

// Estado devolve os slides e a posição corrente.
// GET /api/destaques
func (h *DestaquesHandler) Estado(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carrossel.Estado())
}

// Proximo avança um slide.
// POST /api/destaques/next
func (h *DestaquesHandler) Proximo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carrossel.Proximo())
}

// Anterior recua um slide.
// POST /api/destaques/prev
func (h *DestaquesHandler) Anterior(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carrossel.Anterior())
}

// irParaRequest é o corpo do salto direto para um slide.
type irParaRequest struct {
	Indice int `json:"indice"`
}

// IrPara salta para o slide do índice informado, como os indicadores
// de posição do carrossel.
// POST /api/destaques/goto
func (h *DestaquesHandler) IrPara(w http.ResponseWriter, r *http.Request) {
	var req irParaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	estado, err := h.carrossel.IrPara(req.Indice)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, estado)
}

// Pausar suspende o avanço automático.
// POST /api/destaques/pause
func (h *DestaquesHandler) Pausar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carrossel.Pausar())
}

// Retomar religa o avanço automático.
// POST /api/destaques/resume
func (h *DestaquesHandler) Retomar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carrossel.Retomar())
}
