// Package metrics coleta e expõe as métricas Prometheus da loja.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector coleta as métricas Prometheus dos serviços da loja.
// Implementa os medidores de notícias, carrinho, agendamentos e
// financiamento.
type Collector struct {
	fontesBuscadas    *prometheus.CounterVec
	fallbacks         prometheus.Counter
	operacoesCarrinho *prometheus.CounterVec
	transicoes        *prometheus.CounterVec
	simulacoes        prometheus.Counter
	httpStatus        *prometheus.CounterVec
	httpLatency       prometheus.Histogram
}

// NewCollector cria o Collector e registra as métricas no registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		fontesBuscadas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loja_noticias_fontes_buscadas_total",
			Help: "Buscas de fontes de notícias, por fonte e resultado",
		}, []string{"fonte", "resultado"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loja_noticias_fallback_total",
			Help: "Vezes em que os cards padrão foram servidos",
		}),
		operacoesCarrinho: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loja_carrinho_operacoes_total",
			Help: "Operações de carrinho, por tipo",
		}, []string{"operacao"}),
		transicoes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loja_agendamento_transicoes_total",
			Help: "Transições de status de agendamento, por status de destino",
		}, []string{"para"}),
		simulacoes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loja_financiamento_simulacoes_total",
			Help: "Simulações de financiamento realizadas",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loja_http_status_total",
			Help: "Respostas HTTP, por código de status",
		}, []string{"status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loja_http_latency_seconds",
			Help:    "Latência das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.fontesBuscadas,
		c.fallbacks,
		c.operacoesCarrinho,
		c.transicoes,
		c.simulacoes,
		c.httpStatus,
		c.httpLatency,
	)

	return c
}

// FonteBuscada registra o resultado da busca de uma fonte de notícias.
func (c *Collector) FonteBuscada(fonte string, sucesso bool) {
	resultado := "falha"
	if sucesso {
		resultado = "sucesso"
	}
	c.fontesBuscadas.WithLabelValues(fonte, resultado).Inc()
}

// FallbackServido registra o uso dos cards padrão de notícias.
func (c *Collector) FallbackServido() {
	c.fallbacks.Inc()
}

// OperacaoCarrinho registra uma operação de carrinho.
func (c *Collector) OperacaoCarrinho(op string) {
	c.operacoesCarrinho.WithLabelValues(op).Inc()
}

// TransicaoAgendamento registra a transição de status de um agendamento.
func (c *Collector) TransicaoAgendamento(para string) {
	c.transicoes.WithLabelValues(para).Inc()
}

// SimulacaoRealizada registra uma simulação de financiamento.
func (c *Collector) SimulacaoRealizada() {
	c.simulacoes.Inc()
}

// HTTPStatus registra o código de status de uma resposta.
func (c *Collector) HTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// HTTPLatency registra a latência de uma requisição.
func (c *Collector) HTTPLatency(duration time.Duration) {
	c.httpLatency.Observe(duration.Seconds())
}

// Handler devolve o handler HTTP para o scrape do Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
