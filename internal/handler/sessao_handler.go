package handler

import (
	"net/http"

	"github.com/sportgun/loja/internal/middleware"
	"github.com/sportgun/loja/internal/model"
)

// SessaoConfig guarda os parâmetros de cookie e o destino de login.
type SessaoConfig struct {
	LoginURL     string
	CookieSecure bool
	CookieDomain string
}

// SessaoHandler atende o logout e a consulta da sessão corrente.
// O login acontece no fluxo externo; aqui os cookies só são lidos e,
// no logout, apagados.
type SessaoHandler struct {
	config SessaoConfig
}

// NewSessaoHandler cria o SessaoHandler.
func NewSessaoHandler(config SessaoConfig) *SessaoHandler {
	return &SessaoHandler{config: config}
}

// sessaoResponse é a resposta de GET /me.
type sessaoResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Me devolve o usuário da sessão corrente.
// GET /me
func (h *SessaoHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.CookieUsuarioID)
	if err != nil || cookie.Value == "" {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewNaoAutenticadoError(h.config.LoginURL))
		return
	}

	resp := sessaoResponse{ID: cookie.Value}
	if nome, err := r.Cookie(middleware.CookieUsuarioNome); err == nil {
		resp.Nome = nome.Value
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout apaga os cookies de sessão.
// POST /logout
func (h *SessaoHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.apagarCookie(w, middleware.CookieUsuarioID)
	h.apagarCookie(w, middleware.CookieUsuarioNome)
	w.WriteHeader(http.StatusNoContent)
}

// apagarCookie grava o cookie expirado com os mesmos atributos do login.
func (h *SessaoHandler) apagarCookie(w http.ResponseWriter, nome string) {
	http.SetCookie(w, &http.Cookie{
		Name:     nome,
		Value:    "",
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
