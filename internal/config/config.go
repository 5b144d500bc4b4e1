// Package config carrega a configuração da aplicação a partir do ambiente.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config guarda a configuração da aplicação inteira.
// É lida uma vez das variáveis de ambiente na inicialização e tratada
// como imutável.
type Config struct {
	// Database
	DatabaseURL string

	// Server
	ServerPort string
	BaseURL    string

	// Loja
	BusinessName   string
	WhatsAppNumber string
	LoginURL       string
	SiteOrigin     string

	// Notícias
	NewsFetchMode       string // "bridge" ou "direct"
	NewsBridgeURL       string
	NewsBridgeAPIKey    string
	NewsItemsPerSource  int
	NewsKeywordFilter   bool
	NewsRefreshInterval time.Duration
	FetchTimeout        time.Duration
	FetchMaxSize        int64

	// Agendamentos
	ConfirmacaoDelay    time.Duration
	ConfirmacaoInterval time.Duration

	// Rate Limit
	RateLimitGeneral int

	// Cookie
	CookieSecure bool
	CookieDomain string

	// CORS
	CORSAllowedOrigin string
}

// Fonte é uma fonte de notícias configurada.
type Fonte struct {
	Nome string
	URL  string
}

// Load lê a Config das variáveis de ambiente.
// Retorna erro quando variáveis obrigatórias não estão definidas.
func Load() (*Config, error) {
	cfg := &Config{}

	// Campos obrigatórios
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("variáveis de ambiente obrigatórias não definidas: %v", missing)
	}

	// Campos opcionais com defaults
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.BusinessName = getEnvString("BUSINESS_NAME", "Sport Gun Imports")
	cfg.WhatsAppNumber = getEnvString("WHATSAPP_NUMBER", "5511999999999")
	cfg.LoginURL = getEnvString("LOGIN_URL", cfg.BaseURL+"/login.html")
	cfg.SiteOrigin = getEnvString("SITE_ORIGIN", "https://infoarmas.com.br")
	cfg.NewsFetchMode = getEnvString("NEWS_FETCH_MODE", "bridge")
	cfg.NewsBridgeURL = getEnvString("NEWS_BRIDGE_URL", "https://api.rss2json.com/v1/api.json")
	cfg.NewsBridgeAPIKey = getEnvString("NEWS_BRIDGE_API_KEY", "public")
	cfg.NewsItemsPerSource = getEnvInt("NEWS_ITEMS_PER_SOURCE", 10)
	cfg.NewsKeywordFilter = getEnvBool("NEWS_KEYWORD_FILTER", true)
	cfg.NewsRefreshInterval = getEnvDuration("NEWS_REFRESH_INTERVAL", 10*time.Minute)
	cfg.FetchTimeout = getEnvDuration("FETCH_TIMEOUT", 10*time.Second)
	cfg.FetchMaxSize = getEnvInt64("FETCH_MAX_SIZE", 5242880)
	cfg.ConfirmacaoDelay = getEnvDuration("CONFIRMACAO_DELAY", 2*time.Minute)
	cfg.ConfirmacaoInterval = getEnvDuration("CONFIRMACAO_INTERVAL", 30*time.Second)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.CookieSecure = strings.HasPrefix(cfg.BaseURL, "https://")
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

// Fontes retorna as fontes de notícias configuradas.
// NEWS_SOURCES aceita pares "nome=url" separados por vírgula; sem a
// variável, usa as fontes especializadas padrão do site.
func (c *Config) Fontes() []Fonte {
	raw := os.Getenv("NEWS_SOURCES")
	if raw == "" {
		return []Fonte{
			{Nome: "InfoArmas", URL: "https://infoarmas.com.br/feed/"},
			{Nome: "Portal 27", URL: "https://www.portal27.com.br/feed/"},
		}
	}

	var fontes []Fonte
	for _, par := range strings.Split(raw, ",") {
		nome, url, ok := strings.Cut(strings.TrimSpace(par), "=")
		if !ok || nome == "" || url == "" {
			continue
		}
		fontes = append(fontes, Fonte{Nome: nome, URL: url})
	}
	return fontes
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
