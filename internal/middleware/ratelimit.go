package middleware

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterConfig guarda a configuração do limite de requisições.
type RateLimiterConfig struct {
	RequestsPerMinute int           // limite por usuário, em req/min
	CleanupInterval   time.Duration // intervalo de limpeza das entradas ociosas
}

// DefaultRateLimiterConfig devolve a configuração padrão: 120 req/min
// por usuário.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerMinute: 120,
		CleanupInterval:   5 * time.Minute,
	}
}

// userLimiter guarda o limitador do usuário e o último acesso.
type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter controla o limite de requisições por usuário autenticado.
type RateLimiter struct {
	config RateLimiterConfig
	limit  rate.Limit

	mu       sync.RWMutex
	limiters map[string]*userLimiter

	stopCh chan struct{}
}

// NewRateLimiter cria o RateLimiter e inicia a limpeza das entradas
// ociosas em segundo plano.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		limit:    rate.Limit(float64(config.RequestsPerMinute) / 60.0),
		limiters: make(map[string]*userLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop encerra a goroutine de limpeza.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware devolve o middleware de limite de requisições. Deve vir
// depois do middleware de sessão, que injeta o usuário no contexto.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			usuario, err := UsuarioFromContext(r.Context())
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			limiter := rl.getOrCreateLimiter(usuario.ID)

			if !limiter.Allow() {
				writeRateLimitResponse(w, rl.limit)
				slog.Warn("limite de requisições excedido",
					slog.String("usuario_id", usuario.ID),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LimiterCount devolve o número de limitadores ativos. Para testes e
// métricas.
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

// getOrCreateLimiter busca ou cria o limitador do usuário.
func (rl *RateLimiter) getOrCreateLimiter(usuarioID string) *rate.Limiter {
	rl.mu.RLock()
	ul, exists := rl.limiters[usuarioID]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		ul.lastAccess = time.Now()
		rl.mu.Unlock()
		return ul.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Checagem dupla
	if ul, exists := rl.limiters[usuarioID]; exists {
		ul.lastAccess = time.Now()
		return ul.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.config.RequestsPerMinute)
	rl.limiters[usuarioID] = &userLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

// cleanupLoop remove periodicamente as entradas ociosas.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup descarta entradas sem acesso há mais de duas vezes o
// CleanupInterval.
func (rl *RateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2

	now := time.Now()

	rl.mu.Lock()
	for usuarioID, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > ttl {
			delete(rl.limiters, usuarioID)
		}
	}
	rl.mu.Unlock()
}

// writeRateLimitResponse escreve a resposta 429 Too Many Requests.
// Retry-After estima os segundos até a reposição de um token.
func writeRateLimitResponse(w http.ResponseWriter, r rate.Limit) {
	retryAfterSec := int(math.Ceil(1.0 / float64(r)))
	if retryAfterSec < 1 {
		retryAfterSec = 1
	}

	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSec))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)

	json.NewEncoder(w).Encode(map[string]string{
		"code":     "LIMITE_EXCEDIDO",
		"message":  "Muitas requisições em sequência.",
		"category": "system",
		"action":   "Aguarde alguns instantes e tente novamente.",
	})
}
