package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportgun/loja/internal/cart"
	"github.com/sportgun/loja/internal/model"
)

// CarrinhoServiceInterface é o que o handler de carrinho precisa do serviço.
type CarrinhoServiceInterface interface {
	View(ctx context.Context, usuarioID string) (model.CarrinhoView, error)
	Adicionar(ctx context.Context, usuarioID string, produto model.ProdutoDescritor) (model.CarrinhoView, error)
	Remover(ctx context.Context, usuarioID, produtoID string) (model.CarrinhoView, error)
	DefinirQuantidade(ctx context.Context, usuarioID, produtoID string, quantidade int) (model.CarrinhoView, error)
	Checkout(ctx context.Context, usuarioID string) (cart.ResultadoCheckout, error)
}

// CarrinhoHandler atende as rotas do carrinho de compras.
type CarrinhoHandler struct {
	service CarrinhoServiceInterface
}

// NewCarrinhoHandler cria o CarrinhoHandler.
func NewCarrinhoHandler(service CarrinhoServiceInterface) *CarrinhoHandler {
	return &CarrinhoHandler{service: service}
}

// quantidadeRequest é o corpo do ajuste de quantidade.
type quantidadeRequest struct {
	Quantidade int `json:"quantidade"`
}

// View devolve a visão corrente do carrinho.
// GET /api/carrinho
func (h *CarrinhoHandler) View(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	view, err := h.service.View(r.Context(), usuario.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Adicionar acrescenta um produto ao carrinho.
// POST /api/carrinho/itens
func (h *CarrinhoHandler) Adicionar(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	var produto model.ProdutoDescritor
	if !decodeJSON(w, r, &produto) {
		return
	}

	view, err := h.service.Adicionar(r.Context(), usuario.ID, produto)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// Remover retira um item do carrinho.
// DELETE /api/carrinho/itens/{id}
func (h *CarrinhoHandler) Remover(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	view, err := h.service.Remover(r.Context(), usuario.ID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// DefinirQuantidade ajusta a quantidade de um item.
// PUT /api/carrinho/itens/{id}
func (h *CarrinhoHandler) DefinirQuantidade(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	var req quantidadeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.service.DefinirQuantidade(r.Context(), usuario.ID, chi.URLParam(r, "id"), req.Quantidade)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Checkout fecha o pedido e devolve o link de WhatsApp do resumo.
// POST /api/carrinho/checkout
func (h *CarrinhoHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	usuario, ok := usuarioDaRequisicao(w, r)
	if !ok {
		return
	}

	resultado, err := h.service.Checkout(r.Context(), usuario.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultado)
}
