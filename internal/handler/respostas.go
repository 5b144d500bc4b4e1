// Package handler expõe os endpoints HTTP da loja.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sportgun/loja/internal/middleware"
	"github.com/sportgun/loja/internal/model"
)

// writeJSON escreve a resposta JSON com o status informado.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// handleServiceError converte o erro da camada de serviço no status
// HTTP adequado. Erros que não são APIError viram 500 genérico, com o
// detalhe apenas no log.
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		middleware.WriteErrorResponse(w, statusDoErro(apiErr), apiErr)
		return
	}

	slog.Error("erro interno", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}

// statusDoErro mapeia o código do APIError para o status HTTP.
func statusDoErro(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeNaoAutenticado:
		return http.StatusUnauthorized
	case model.ErrCodeAgendamentoNaoAchado:
		return http.StatusNotFound
	case model.ErrCodeTransicaoInvalida:
		return http.StatusConflict
	case model.ErrCodeCarrinhoVazio,
		model.ErrCodePrecoInvalido,
		model.ErrCodeCampoObrigatorio,
		model.ErrCodeTelefoneInvalido,
		model.ErrCodeDataPassada,
		model.ErrCodeSimulacaoInvalida,
		model.ErrCodeRequisicaoInvalida:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// usuarioDaRequisicao lê o usuário injetado pelo middleware de sessão.
// A ausência indica rota mal montada; responde 401 e devolve false.
func usuarioDaRequisicao(w http.ResponseWriter, r *http.Request) (model.Usuario, bool) {
	usuario, err := middleware.UsuarioFromContext(r.Context())
	if err != nil {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, &model.APIError{
			Code:     model.ErrCodeNaoAutenticado,
			Message:  "Sessão ausente.",
			Category: "auth",
			Action:   "Faça login novamente.",
		})
		return model.Usuario{}, false
	}
	return usuario, true
}

// decodeJSON interpreta o corpo JSON da requisição; corpo malformado
// vira 400 no formato unificado.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewRequisicaoInvalidaError())
		return false
	}
	return true
}
