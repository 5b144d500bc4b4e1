// Package financiamento implementa o simulador de financiamento da loja
// pela tabela Price, com o histórico de simulações por usuário.
package financiamento

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/sportgun/loja/internal/model"
	"github.com/sportgun/loja/internal/repository"
)

// PedidoSimulacao é a entrada do formulário de simulação.
// Juros é a taxa mensal em porcentagem.
type PedidoSimulacao struct {
	Valor   float64 `json:"valor"`
	Entrada float64 `json:"entrada"`
	Juros   float64 `json:"juros"`
	Meses   int     `json:"meses"`
}

// Medidor registra as métricas das simulações.
type Medidor interface {
	SimulacaoRealizada()
}

// Service implementa a simulação e o histórico de financiamentos.
type Service struct {
	repo    repository.SimulacaoRepository
	logger  *slog.Logger
	medidor Medidor
	agora   func() time.Time
}

// NewService cria o Service de financiamento.
func NewService(repo repository.SimulacaoRepository, logger *slog.Logger, medidor Medidor) *Service {
	return &Service{
		repo:    repo,
		logger:  logger,
		medidor: medidor,
		agora:   time.Now,
	}
}

// Simular calcula a parcela pela tabela Price, grava a simulação no
// histórico do usuário e a devolve.
//
// A fórmula é parcela = VF * j / (1 - (1+j)^-n), com VF o valor menos a
// entrada e j a taxa mensal em decimal. Parâmetros que levariam a uma
// divisão por zero ou a valores sem sentido são recusados antes do
// cálculo.
func (s *Service) Simular(ctx context.Context, usuarioID string, pedido PedidoSimulacao) (model.Simulacao, error) {
	if err := validar(pedido); err != nil {
		return model.Simulacao{}, err
	}

	valorFinal := pedido.Valor - pedido.Entrada
	j := pedido.Juros / 100
	parcela := valorFinal * j / (1 - math.Pow(1+j, -float64(pedido.Meses)))
	totalPago := parcela * float64(pedido.Meses)

	simulacao := model.Simulacao{
		Data:       s.agora(),
		Valor:      pedido.Valor,
		Entrada:    pedido.Entrada,
		Juros:      pedido.Juros,
		Meses:      pedido.Meses,
		ValorFinal: arredondar(valorFinal),
		Parcela:    arredondar(parcela),
		TotalPago:  arredondar(totalPago),
	}

	hist, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return model.Simulacao{}, err
	}
	hist = append(hist, simulacao)
	if err := s.repo.Save(ctx, usuarioID, hist); err != nil {
		return model.Simulacao{}, err
	}

	s.logger.Info("simulação de financiamento gravada",
		slog.String("usuario_id", usuarioID),
		slog.Float64("valor", pedido.Valor),
		slog.Int("meses", pedido.Meses),
		slog.Float64("parcela", simulacao.Parcela),
	)
	if s.medidor != nil {
		s.medidor.SimulacaoRealizada()
	}

	return simulacao, nil
}

// Historico devolve as simulações do usuário, da mais antiga à mais nova.
func (s *Service) Historico(ctx context.Context, usuarioID string) ([]model.Simulacao, error) {
	return s.repo.Load(ctx, usuarioID)
}

// validar recusa parâmetros fora do domínio da tabela Price.
func validar(p PedidoSimulacao) error {
	switch {
	case p.Valor <= 0:
		return model.NewSimulacaoInvalidaError("o valor deve ser maior que zero")
	case p.Entrada < 0:
		return model.NewSimulacaoInvalidaError("a entrada não pode ser negativa")
	case p.Entrada >= p.Valor:
		return model.NewSimulacaoInvalidaError("a entrada deve ser menor que o valor")
	case p.Juros <= 0:
		return model.NewSimulacaoInvalidaError("a taxa de juros deve ser maior que zero")
	case p.Meses <= 0:
		return model.NewSimulacaoInvalidaError("o número de meses deve ser maior que zero")
	}
	return nil
}

// arredondar fixa o valor monetário em duas casas decimais.
func arredondar(v float64) float64 {
	return math.Round(v*100) / 100
}
