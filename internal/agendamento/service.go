package agendamento

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sportgun/loja/internal/model"
	"github.com/sportgun/loja/internal/repository"
)

// Mensageiro monta os links de WhatsApp do fluxo de agendamento.
type Mensageiro interface {
	LinkNovoAgendamento(a model.Agendamento, agora time.Time) string
	LinkConfirmacao(a model.Agendamento) string
}

// Medidor registra as métricas das transições de agendamento.
type Medidor interface {
	TransicaoAgendamento(para string)
}

// Service implementa as operações de agendamento sobre a sequência
// persistida por usuário, regravada por inteiro a cada mutação.
type Service struct {
	repo       repository.AgendamentoRepository
	mensageiro Mensageiro
	logger     *slog.Logger
	medidor    Medidor
	agora      func() time.Time
}

// NewService cria o Service de agendamentos.
func NewService(repo repository.AgendamentoRepository, mensageiro Mensageiro, logger *slog.Logger, medidor Medidor) *Service {
	return &Service{
		repo:       repo,
		mensageiro: mensageiro,
		logger:     logger,
		medidor:    medidor,
		agora:      time.Now,
	}
}

// ResultadoCriacao é o desfecho da criação de um agendamento.
type ResultadoCriacao struct {
	Agendamento model.Agendamento `json:"agendamento"`
	WhatsAppURL string            `json:"whatsapp_url"`
}

// Criar valida o pedido, grava o agendamento pendente e devolve o link
// de WhatsApp que abre a conversa com a loja.
func (s *Service) Criar(ctx context.Context, usuarioID string, pedido PedidoAgendamento) (ResultadoCriacao, error) {
	agora := s.agora()

	if err := validar(pedido, agora); err != nil {
		return ResultadoCriacao{}, err
	}

	ags, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return ResultadoCriacao{}, err
	}

	novo := model.Agendamento{
		ID:          gerarID(agora),
		Nome:        pedido.Nome,
		Telefone:    pedido.Telefone,
		Produto:     pedido.Produto,
		Data:        pedido.Data,
		Horario:     pedido.Horario,
		Observacoes: pedido.Observacoes,
		Status:      model.StatusPendente,
		CriadoEm:    agora,
	}

	ags = append(ags, novo)
	if err := s.repo.Save(ctx, usuarioID, ags); err != nil {
		return ResultadoCriacao{}, err
	}

	s.logger.Info("agendamento criado",
		slog.String("usuario_id", usuarioID),
		slog.String("agendamento_id", novo.ID),
		slog.String("produto", novo.Produto),
		slog.String("data", novo.Data),
	)
	if s.medidor != nil {
		s.medidor.TransicaoAgendamento(string(model.StatusPendente))
	}

	return ResultadoCriacao{
		Agendamento: novo,
		WhatsAppURL: s.mensageiro.LinkNovoAgendamento(novo, agora),
	}, nil
}

// Listar devolve os agendamentos do usuário, do mais antigo ao mais novo.
func (s *Service) Listar(ctx context.Context, usuarioID string) ([]model.Agendamento, error) {
	return s.repo.Load(ctx, usuarioID)
}

// ResultadoConfirmacao é o desfecho da confirmação manual.
type ResultadoConfirmacao struct {
	Agendamento model.Agendamento `json:"agendamento"`
	WhatsAppURL string            `json:"whatsapp_url,omitempty"`
}

// Confirmar muda o agendamento pendente para confirmado e devolve o
// link de WhatsApp com a mensagem ao cliente. Confirmar um agendamento
// já confirmado é no-op; um cancelado não muda de estado.
func (s *Service) Confirmar(ctx context.Context, usuarioID, agendamentoID string) (ResultadoConfirmacao, error) {
	ags, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return ResultadoConfirmacao{}, err
	}

	idx := indexDe(ags, agendamentoID)
	if idx < 0 {
		return ResultadoConfirmacao{}, model.NewAgendamentoNaoEncontradoError(agendamentoID)
	}

	switch ags[idx].Status {
	case model.StatusConfirmado:
		return ResultadoConfirmacao{Agendamento: ags[idx]}, nil
	case model.StatusCancelado:
		return ResultadoConfirmacao{}, model.NewTransicaoInvalidaError(ags[idx].Status)
	}

	quando := s.agora()
	ags[idx].Status = model.StatusConfirmado
	ags[idx].ConfirmadoEm = &quando

	if err := s.repo.Save(ctx, usuarioID, ags); err != nil {
		return ResultadoConfirmacao{}, err
	}

	s.logger.Info("agendamento confirmado",
		slog.String("usuario_id", usuarioID),
		slog.String("agendamento_id", agendamentoID),
	)
	if s.medidor != nil {
		s.medidor.TransicaoAgendamento(string(model.StatusConfirmado))
	}

	return ResultadoConfirmacao{
		Agendamento: ags[idx],
		WhatsAppURL: s.mensageiro.LinkConfirmacao(ags[idx]),
	}, nil
}

// Cancelar muda o agendamento pendente para cancelado. Cancelar um já
// cancelado é no-op; um confirmado não muda de estado.
func (s *Service) Cancelar(ctx context.Context, usuarioID, agendamentoID string) (model.Agendamento, error) {
	ags, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return model.Agendamento{}, err
	}

	idx := indexDe(ags, agendamentoID)
	if idx < 0 {
		return model.Agendamento{}, model.NewAgendamentoNaoEncontradoError(agendamentoID)
	}

	switch ags[idx].Status {
	case model.StatusCancelado:
		return ags[idx], nil
	case model.StatusConfirmado:
		return model.Agendamento{}, model.NewTransicaoInvalidaError(ags[idx].Status)
	}

	quando := s.agora()
	ags[idx].Status = model.StatusCancelado
	ags[idx].CanceladoEm = &quando

	if err := s.repo.Save(ctx, usuarioID, ags); err != nil {
		return model.Agendamento{}, err
	}

	s.logger.Info("agendamento cancelado",
		slog.String("usuario_id", usuarioID),
		slog.String("agendamento_id", agendamentoID),
	)
	if s.medidor != nil {
		s.medidor.TransicaoAgendamento(string(model.StatusCancelado))
	}

	return ags[idx], nil
}

// ConfirmarPendentesAte confirma os agendamentos pendentes criados até
// o instante limite, em todos os usuários. É a confirmação simulada que
// o site fazia com um atraso fixo após a criação. Devolve o total
// confirmado.
func (s *Service) ConfirmarPendentesAte(ctx context.Context, limite time.Time) (int, error) {
	usuarios, err := s.repo.ListUsuarios(ctx)
	if err != nil {
		return 0, fmt.Errorf("falha ao listar usuários com agendamentos: %w", err)
	}

	confirmados := 0
	for _, usuarioID := range usuarios {
		if ctx.Err() != nil {
			return confirmados, ctx.Err()
		}

		ags, err := s.repo.Load(ctx, usuarioID)
		if err != nil {
			s.logger.Error("falha ao carregar agendamentos do usuário",
				slog.String("usuario_id", usuarioID),
				slog.String("error", err.Error()),
			)
			continue
		}

		alterou := false
		for i := range ags {
			if !ags[i].Pendente() || ags[i].CriadoEm.After(limite) {
				continue
			}
			quando := s.agora()
			ags[i].Status = model.StatusConfirmado
			ags[i].ConfirmadoEm = &quando
			alterou = true
			confirmados++
		}
		if !alterou {
			continue
		}

		if err := s.repo.Save(ctx, usuarioID, ags); err != nil {
			s.logger.Error("falha ao gravar agendamentos confirmados",
				slog.String("usuario_id", usuarioID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if s.medidor != nil {
			s.medidor.TransicaoAgendamento(string(model.StatusConfirmado))
		}
	}

	return confirmados, nil
}

// indexDe localiza o agendamento pelo id.
func indexDe(ags []model.Agendamento, id string) int {
	for i := range ags {
		if ags[i].ID == id {
			return i
		}
	}
	return -1
}

// gerarID monta o identificador no formato histórico do site:
// "agd_<millis>_<sufixo aleatório>".
func gerarID(agora time.Time) string {
	sufixo := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("agd_%d_%s", agora.UnixMilli(), sufixo)
}
