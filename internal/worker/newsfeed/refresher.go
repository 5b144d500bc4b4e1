// Package newsfeed mantém o cache dos cards de notícias atualizado em
// segundo plano. A grade da página inicial sempre lê o cache; nenhuma
// requisição dispara busca em fonte externa.
package newsfeed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sportgun/loja/internal/model"
	"github.com/sportgun/loja/internal/news"
)

// BuscadorDeCards monta os cards a partir das fontes configuradas.
type BuscadorDeCards interface {
	BuscarCards(ctx context.Context) []model.NoticiaCard
}

// Refresher busca os cards periodicamente e guarda o resultado mais
// recente. Seguro para leitura concorrente.
type Refresher struct {
	buscador  BuscadorDeCards
	logger    *slog.Logger
	intervalo time.Duration

	mu    sync.RWMutex
	cards []model.NoticiaCard
}

// NewRefresher cria o Refresher. O cache parte dos cards padrão, para
// a janela entre a subida do servidor e a primeira busca nunca servir
// uma grade vazia.
func NewRefresher(buscador BuscadorDeCards, logger *slog.Logger, intervalo time.Duration) *Refresher {
	return &Refresher{
		buscador:  buscador,
		logger:    logger,
		intervalo: intervalo,
		cards:     news.CardsPadrao(),
	}
}

// CardsAtuais devolve a última leva de cards. A fatia devolvida é uma
// cópia; o chamador pode retê-la sem corrida com a próxima atualização.
func (r *Refresher) CardsAtuais() []model.NoticiaCard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cards := make([]model.NoticiaCard, len(r.cards))
	copy(cards, r.cards)
	return cards
}

// Start executa uma busca imediata e depois renova o cache a cada
// intervalo, até o contexto ser cancelado.
func (r *Refresher) Start(ctx context.Context) {
	ticker := time.NewTicker(r.intervalo)
	defer ticker.Stop()

	r.logger.Info("atualizador de notícias iniciado",
		slog.Duration("intervalo", r.intervalo),
	)

	r.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("atualizador de notícias parado")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce renova o cache com uma busca. BuscarCards nunca retorna
// vazio: falha total das fontes vira os cards padrão.
func (r *Refresher) RunOnce(ctx context.Context) {
	start := time.Now()

	cards := r.buscador.BuscarCards(ctx)

	r.mu.Lock()
	r.cards = cards
	r.mu.Unlock()

	r.logger.Info("cache de notícias renovado",
		slog.Int("cards", len(cards)),
		slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
	)
}
