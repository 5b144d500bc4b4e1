// Package app amarra a configuração, o banco, os serviços e o servidor
// HTTP da loja, e define os modos de execução.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sportgun/loja/internal/agendamento"
	"github.com/sportgun/loja/internal/bridge"
	"github.com/sportgun/loja/internal/cart"
	"github.com/sportgun/loja/internal/config"
	"github.com/sportgun/loja/internal/database"
	"github.com/sportgun/loja/internal/destaques"
	"github.com/sportgun/loja/internal/financiamento"
	"github.com/sportgun/loja/internal/handler"
	"github.com/sportgun/loja/internal/logger"
	"github.com/sportgun/loja/internal/metrics"
	"github.com/sportgun/loja/internal/middleware"
	"github.com/sportgun/loja/internal/model"
	"github.com/sportgun/loja/internal/news"
	"github.com/sportgun/loja/internal/repository"
	"github.com/sportgun/loja/internal/security"
	"github.com/sportgun/loja/internal/whatsapp"
	"github.com/sportgun/loja/internal/worker/confirmacao"
	"github.com/sportgun/loja/internal/worker/newsfeed"
)

// Init prepara o log estruturado e carrega a configuração do ambiente.
// Com um writer informado, o log sai por ele.
func Init(w io.Writer) (*config.Config, error) {
	logger.SetupDefault(w)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar a configuração: %w", err)
	}

	return cfg, nil
}

// Run é o ponto de entrada da aplicação. Interpreta o subcomando e sobe
// o modo correspondente. args recebe os.Args[1:].
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck dispensa a inicialização completa
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("falha na inicialização: %w", err)
	}

	slog.Info("aplicação iniciando",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	switch cmd {
	case CommandWorker:
		return runWorker(cfg)
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

// servicos reúne as dependências montadas por wireServices.
type servicos struct {
	carrinho      *cart.Service
	agendamentos  *agendamento.Service
	financiamento *financiamento.Service
	noticias      *news.Service
	coletor       *metrics.Collector
	registry      *prometheus.Registry
}

// wireServices monta os repositórios e serviços de domínio sobre a
// conexão de banco informada.
func wireServices(cfg *config.Config, db *sql.DB) servicos {
	registry := prometheus.NewRegistry()
	coletor := metrics.NewCollector(registry)

	store := repository.NewPostgresLocalStore(db)
	carrinhoRepo := repository.NewLocalCarrinhoRepo(store)
	agendamentoRepo := repository.NewLocalAgendamentoRepo(store)
	simulacaoRepo := repository.NewLocalSimulacaoRepo(store)

	mensageiro := whatsapp.NewBuilder(cfg.WhatsAppNumber, cfg.BusinessName)

	carrinhoSvc := cart.NewService(carrinhoRepo, mensageiro, slog.Default(), coletor)
	agendamentoSvc := agendamento.NewService(agendamentoRepo, mensageiro, slog.Default(), coletor)
	financiamentoSvc := financiamento.NewService(simulacaoRepo, slog.Default(), coletor)

	noticiasSvc := news.NewService(
		newsFetcher(cfg),
		security.NewContentSanitizer(),
		slog.Default(),
		coletor,
		fontesDeNoticia(cfg),
		cfg.NewsItemsPerSource,
		cfg.NewsKeywordFilter,
		cfg.SiteOrigin,
	)

	return servicos{
		carrinho:      carrinhoSvc,
		agendamentos:  agendamentoSvc,
		financiamento: financiamentoSvc,
		noticias:      noticiasSvc,
		coletor:       coletor,
		registry:      registry,
	}
}

// runServe sobe a API da loja com os jobs de fundo no mesmo processo:
// o atualizador de notícias, a confirmação automática de agendamentos e
// o carrossel de destaques. Encerra com SIGINT ou SIGTERM.
func runServe(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("falha ao abrir o banco: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("falha ao conectar ao banco: %w", err)
	}

	slog.Info("conexão com o banco estabelecida")

	svcs := wireServices(cfg, db)

	// Jobs de fundo
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher := newsfeed.NewRefresher(svcs.noticias, slog.Default(), cfg.NewsRefreshInterval)
	go refresher.Start(ctx)

	confirmacaoJob := confirmacao.NewJob(svcs.agendamentos, slog.Default(), confirmacao.Config{
		Delay:    cfg.ConfirmacaoDelay,
		Interval: cfg.ConfirmacaoInterval,
	})
	go confirmacaoJob.Start(ctx)

	carrossel := destaques.NewCarrossel(nil, slog.Default())
	go carrossel.Executar(ctx)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: cfg.RateLimitGeneral,
		CleanupInterval:   5 * time.Minute,
	})
	defer rateLimiter.Stop()

	router := handler.NewRouter(&handler.RouterDeps{
		Logger:            slog.Default(),
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		LoginURL:          cfg.LoginURL,
		RateLimiter:       rateLimiter,
		SessaoConfig: handler.SessaoConfig{
			LoginURL:     cfg.LoginURL,
			CookieSecure: cfg.CookieSecure,
			CookieDomain: cfg.CookieDomain,
		},
		CarrinhoService:      svcs.carrinho,
		AgendamentoService:   svcs.agendamentos,
		FinanciamentoService: svcs.financiamento,
		Noticias:             refresher,
		Carrossel:            carrossel,
		Medidor:              svcs.coletor,
		MetricsGatherer:      svcs.registry,
		DB:                   db,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("servidor da API iniciando",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("erro no listen do servidor", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("encerrando o servidor da API...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("falha no encerramento do servidor: %w", err)
	}

	slog.Info("servidor da API encerrado")
	return nil
}

// runWorker executa apenas os jobs de fundo, para implantações que
// separam a API dos jobs. Expõe /metrics e /healthz num listener próprio.
func runWorker(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("falha ao abrir o banco: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("falha ao conectar ao banco: %w", err)
	}

	slog.Info("conexão com o banco estabelecida (worker)")

	svcs := wireServices(cfg, db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		slog.Info("encerrando o worker...")
		cancel()
	}()

	// Listener de observabilidade do worker
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(svcs.registry))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	obsServer := &http.Server{Addr: ":" + cfg.ServerPort, Handler: mux}
	go func() {
		if err := obsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("erro no listener de observabilidade", slog.String("error", err.Error()))
		}
	}()
	defer obsServer.Close()

	confirmacaoJob := confirmacao.NewJob(svcs.agendamentos, slog.Default(), confirmacao.Config{
		Delay:    cfg.ConfirmacaoDelay,
		Interval: cfg.ConfirmacaoInterval,
	})
	go confirmacaoJob.Start(ctx)

	slog.Info("worker iniciando",
		slog.Duration("news_refresh_interval", cfg.NewsRefreshInterval),
		slog.Duration("confirmacao_interval", cfg.ConfirmacaoInterval),
	)

	// O atualizador de notícias roda na goroutine principal (bloqueante)
	refresher := newsfeed.NewRefresher(svcs.noticias, slog.Default(), cfg.NewsRefreshInterval)
	refresher.Start(ctx)

	slog.Info("worker encerrado")
	return nil
}

// runMigrate aplica todas as migrações pendentes, em ordem.
func runMigrate(cfg *config.Config) error {
	slog.Info("aplicando migrações de banco",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("falha na migração: %w", err)
	}

	slog.Info("migrações de banco aplicadas")
	return nil
}

// runHealthcheck consulta o /healthz do processo local.
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/healthz", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check falhou: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check retornou status %d", resp.StatusCode)
	}

	return nil
}

// newsFetcher escolhe a implementação de busca de feeds pela configuração.
func newsFetcher(cfg *config.Config) news.Fetcher {
	if cfg.NewsFetchMode == "direct" {
		return news.NewDirectFetcher(security.NewSSRFGuard(), slog.Default(), cfg.FetchTimeout, cfg.FetchMaxSize)
	}
	return bridge.NewClient(
		&http.Client{Timeout: cfg.FetchTimeout},
		slog.Default(),
		cfg.NewsBridgeURL,
		cfg.NewsBridgeAPIKey,
	)
}

// fontesDeNoticia converte as fontes configuradas para o modelo.
func fontesDeNoticia(cfg *config.Config) []model.FonteNoticia {
	fontes := cfg.Fontes()
	convertidas := make([]model.FonteNoticia, 0, len(fontes))
	for _, f := range fontes {
		convertidas = append(convertidas, model.FonteNoticia{Nome: f.Nome, URL: f.URL})
	}
	return convertidas
}

// maskDatabaseURL esconde as credenciais da URL do banco no log.
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
