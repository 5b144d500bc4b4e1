package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sportgun/loja/internal/destaques"
	"github.com/sportgun/loja/internal/financiamento"
	"github.com/sportgun/loja/internal/middleware"
	"github.com/sportgun/loja/internal/model"
)

// fakeProvedor entrega cards fixos.
type fakeProvedor struct {
	cards []model.NoticiaCard
}

func (f *fakeProvedor) CardsAtuais() []model.NoticiaCard { return f.cards }

type fakeFinanciamentoService struct {
	simularFunc   func(ctx context.Context, usuarioID string, pedido financiamento.PedidoSimulacao) (model.Simulacao, error)
	historicoFunc func(ctx context.Context, usuarioID string) ([]model.Simulacao, error)
}

func (f *fakeFinanciamentoService) Simular(ctx context.Context, usuarioID string, pedido financiamento.PedidoSimulacao) (model.Simulacao, error) {
	return f.simularFunc(ctx, usuarioID, pedido)
}

func (f *fakeFinanciamentoService) Historico(ctx context.Context, usuarioID string) ([]model.Simulacao, error) {
	return f.historicoFunc(ctx, usuarioID)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: 100,
		CleanupInterval:   time.Hour,
	})
	t.Cleanup(rl.Stop)

	carrinho := &fakeCarrinhoService{
		viewFunc: func(_ context.Context, _ string) (model.CarrinhoView, error) {
			return model.CarrinhoView{Vazio: true, Itens: []model.ItemCarrinhoView{}}, nil
		},
	}
	agendamentos := &fakeAgendamentoService{
		listarFunc: func(_ context.Context, _ string) ([]model.Agendamento, error) {
			return []model.Agendamento{}, nil
		},
	}
	simulador := &fakeFinanciamentoService{
		historicoFunc: func(_ context.Context, _ string) ([]model.Simulacao, error) {
			return []model.Simulacao{}, nil
		},
	}

	return NewRouter(&RouterDeps{
		Logger:            logger,
		CORSAllowedOrigin: "https://loja.example",
		LoginURL:          "https://loja.example/login.html",
		RateLimiter:       rl,
		SessaoConfig: SessaoConfig{
			LoginURL: "https://loja.example/login.html",
		},
		CarrinhoService:      carrinho,
		AgendamentoService:   agendamentos,
		FinanciamentoService: simulador,
		Noticias: &fakeProvedor{cards: []model.NoticiaCard{
			{Titulo: "Nova linha de pistolas chega ao Brasil", Fonte: "InfoArmas"},
		}},
		Carrossel:       destaques.NewCarrossel(nil, logger),
		MetricsGatherer: prometheus.NewRegistry(),
	})
}

// TestRouter_PublicoSemSessao verifica as rotas públicas sem cookie.
func TestRouter_PublicoSemSessao(t *testing.T) {
	router := newTestRouter(t)

	publicas := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/noticias"},
		{http.MethodGet, "/api/destaques"},
		{http.MethodPost, "/api/destaques/next"},
		{http.MethodPost, "/api/destaques/prev"},
		{http.MethodPost, "/api/destaques/pause"},
		{http.MethodPost, "/api/destaques/resume"},
	}

	for _, rota := range publicas {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(rota.method, rota.path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: status = %d, esperava 200", rota.method, rota.path, rec.Code)
		}
	}
}

// TestRouter_GuardadoSemSessao responde 401 nas rotas com sessão.
func TestRouter_GuardadoSemSessao(t *testing.T) {
	router := newTestRouter(t)

	guardadas := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/carrinho"},
		{http.MethodGet, "/api/agendamentos"},
		{http.MethodGet, "/api/financiamento/historico"},
	}

	for _, rota := range guardadas {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(rota.method, rota.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, esperava 401", rota.method, rota.path, rec.Code)
		}
	}
}

// TestRouter_GuardadoComSessao aceita a requisição com o cookie de sessão.
func TestRouter_GuardadoComSessao(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/carrinho", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieUsuarioID, Value: "u1"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperava 200", rec.Code)
	}
}

// TestRouter_Noticias devolve os cards do provedor.
func TestRouter_Noticias(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/noticias", nil))

	var cards []model.NoticiaCard
	if err := json.NewDecoder(rec.Body).Decode(&cards); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	if len(cards) != 1 || cards[0].Fonte != "InfoArmas" {
		t.Errorf("cards = %+v", cards)
	}
}

// TestRouter_DestaquesNext avança o carrossel pela rota.
func TestRouter_DestaquesNext(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/destaques/next", nil))

	var estado destaques.Estado
	if err := json.NewDecoder(rec.Body).Decode(&estado); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	if estado.Atual != 1 {
		t.Errorf("Atual = %d, esperava 1", estado.Atual)
	}
}

// TestRouter_Healthz responde ok sem banco configurado.
func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperava 200", rec.Code)
	}
}

// TestRouter_CabecalhosDeSeguranca verifica a cadeia de middlewares.
func TestRouter_CabecalhosDeSeguranca(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/noticias", nil))

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("cabeçalho de segurança ausente")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://loja.example" {
		t.Error("cabeçalho de CORS ausente")
	}
}
