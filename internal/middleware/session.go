// Package middleware fornece os middlewares HTTP da loja.
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sportgun/loja/internal/model"
)

// Nomes dos cookies gravados pelo fluxo de login externo.
const (
	CookieUsuarioID   = "usuario_id"
	CookieUsuarioNome = "usuario_nome"
)

// contextKey é o tipo das chaves de contexto do pacote.
type contextKey string

// usuarioContextKey guarda o model.Usuario da sessão no contexto da requisição.
var usuarioContextKey = contextKey("usuario")

// NewSessionMiddleware lê os cookies de sessão gravados pelo login
// externo e injeta o usuário no contexto da requisição. Requisições sem
// o cookie usuario_id recebem 401 apontando para o fluxo de login.
func NewSessionMiddleware(loginURL string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieUsuarioID)
			if err != nil || cookie.Value == "" {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewNaoAutenticadoError(loginURL))
				return
			}

			usuario := model.Usuario{ID: cookie.Value}
			if nome, err := r.Cookie(CookieUsuarioNome); err == nil {
				usuario.Nome = nome.Value
			}

			ctx := ContextWithUsuario(r.Context(), usuario)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsuarioFromContext devolve o usuário da sessão gravado no contexto.
// Só é válido em requisições que passaram pelo middleware de sessão.
func UsuarioFromContext(ctx context.Context) (model.Usuario, error) {
	usuario, ok := ctx.Value(usuarioContextKey).(model.Usuario)
	if !ok || usuario.ID == "" {
		return model.Usuario{}, fmt.Errorf("usuário ausente no contexto")
	}
	return usuario, nil
}

// ContextWithUsuario injeta o usuário no contexto. Para testes e para
// fluxos fora do middleware.
func ContextWithUsuario(ctx context.Context, usuario model.Usuario) context.Context {
	return context.WithValue(ctx, usuarioContextKey, usuario)
}
