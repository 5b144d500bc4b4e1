package handler

import (
	"net/http"

	"github.com/sportgun/loja/internal/model"
)

// ProvedorDeCards entrega os cards de notícias correntes. O worker de
// atualização mantém o cache; a busca nunca acontece na requisição.
type ProvedorDeCards interface {
	CardsAtuais() []model.NoticiaCard
}

// NoticiasHandler atende a grade de notícias da página inicial.
type NoticiasHandler struct {
	provedor ProvedorDeCards
}

// NewNoticiasHandler cria o NoticiasHandler.
func NewNoticiasHandler(provedor ProvedorDeCards) *NoticiasHandler {
	return &NoticiasHandler{provedor: provedor}
}

// Listar devolve os cards correntes.
// GET /api/noticias
func (h *NoticiasHandler) Listar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.provedor.CardsAtuais())
}
