package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sportgun/loja/internal/destaques"
	"github.com/sportgun/loja/internal/metrics"
	"github.com/sportgun/loja/internal/middleware"
)

// Pinger verifica a saúde da dependência de armazenamento.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps reúne as dependências do roteador.
type RouterDeps struct {
	Logger *slog.Logger

	// Middlewares
	CORSAllowedOrigin string
	LoginURL          string
	RateLimiter       *middleware.RateLimiter

	// Sessão
	SessaoConfig SessaoConfig

	// Serviços
	CarrinhoService      CarrinhoServiceInterface
	AgendamentoService   AgendamentoServiceInterface
	FinanciamentoService FinanciamentoServiceInterface
	Noticias             ProvedorDeCards
	Carrossel            *destaques.Carrossel

	// Observabilidade
	Medidor         middleware.MedidorHTTP
	MetricsGatherer prometheus.Gatherer
	DB              Pinger
}

// NewRouter monta o roteador com todos os endpoints e a cadeia de
// middlewares.
//
// Ordem da cadeia: Recovery, Logging, Metrics, CORS, SecurityHeaders
// e, nas rotas guardadas, Session e RateLimit.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware(deps.Logger))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewMetricsMiddleware(deps.Medidor))
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())

	carrinhoHandler := NewCarrinhoHandler(deps.CarrinhoService)
	agendamentoHandler := NewAgendamentoHandler(deps.AgendamentoService)
	financiamentoHandler := NewFinanciamentoHandler(deps.FinanciamentoService)
	noticiasHandler := NewNoticiasHandler(deps.Noticias)
	destaquesHandler := NewDestaquesHandler(deps.Carrossel)
	sessaoHandler := NewSessaoHandler(deps.SessaoConfig)

	// --- Rotas públicas ---

	r.Get("/healthz", healthzHandler(deps.DB))
	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	r.Get("/me", sessaoHandler.Me)
	r.Post("/logout", sessaoHandler.Logout)

	r.Get("/api/noticias", noticiasHandler.Listar)

	r.Route("/api/destaques", func(r chi.Router) {
		r.Get("/", destaquesHandler.Estado)
		r.Post("/next", destaquesHandler.Proximo)
		r.Post("/prev", destaquesHandler.Anterior)
		r.Post("/goto", destaquesHandler.IrPara)
		r.Post("/pause", destaquesHandler.Pausar)
		r.Post("/resume", destaquesHandler.Retomar)
	})

	// --- Rotas com sessão obrigatória ---
	// Cadeia: Session → RateLimit
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.LoginURL))
		r.Use(deps.RateLimiter.Middleware())

		r.Route("/api/carrinho", func(r chi.Router) {
			r.Get("/", carrinhoHandler.View)
			r.Post("/checkout", carrinhoHandler.Checkout)

			r.Route("/itens", func(r chi.Router) {
				r.Post("/", carrinhoHandler.Adicionar)
				r.Delete("/{id}", carrinhoHandler.Remover)
				r.Put("/{id}", carrinhoHandler.DefinirQuantidade)
			})
		})

		r.Route("/api/agendamentos", func(r chi.Router) {
			r.Get("/", agendamentoHandler.Listar)
			r.Post("/", agendamentoHandler.Criar)
			r.Post("/{id}/confirmar", agendamentoHandler.Confirmar)
			r.Post("/{id}/cancelar", agendamentoHandler.Cancelar)
		})

		r.Route("/api/financiamento", func(r chi.Router) {
			r.Post("/simular", financiamentoHandler.Simular)
			r.Get("/historico", financiamentoHandler.Historico)
		})
	})

	return r
}

// healthzHandler responde 200 com o banco acessível, 503 caso contrário.
func healthzHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
