// Package model define os modelos de domínio da loja.
package model

import "time"

// StatusAgendamento representa o estado de um agendamento.
type StatusAgendamento string

const (
	// StatusPendente é o estado inicial de todo agendamento.
	StatusPendente StatusAgendamento = "pendente"
	// StatusConfirmado indica agendamento confirmado (manual ou automático).
	StatusConfirmado StatusAgendamento = "confirmado"
	// StatusCancelado indica agendamento cancelado (apenas manual).
	StatusCancelado StatusAgendamento = "cancelado"
)

// Agendamento representa um pedido de atendimento criado pelo formulário.
// As tags JSON seguem o esquema da chave "agendamentos" do armazenamento
// local. Não há transição definida para fora de confirmado ou cancelado.
type Agendamento struct {
	ID           string            `json:"id"`
	Nome         string            `json:"nome"`
	Telefone     string            `json:"telefone"`
	Produto      string            `json:"produto"`
	Data         string            `json:"data"` // formato AAAA-MM-DD
	Horario      string            `json:"horario"`
	Observacoes  string            `json:"observacoes,omitempty"`
	Status       StatusAgendamento `json:"status"`
	CriadoEm     time.Time         `json:"dataCriacao"`
	ConfirmadoEm *time.Time        `json:"dataConfirmacao,omitempty"`
	CanceladoEm  *time.Time        `json:"dataCancelamento,omitempty"`
}

// Pendente informa se o agendamento ainda aguarda confirmação.
func (a *Agendamento) Pendente() bool {
	return a.Status == StatusPendente
}
