// Package agendamento implementa o ciclo de vida dos agendamentos de
// atendimento: criação pelo formulário, listagem, confirmação e
// cancelamento, além da confirmação simulada de pendentes antigos.
package agendamento

import (
	"regexp"
	"strings"
	"time"

	"github.com/sportgun/loja/internal/model"
)

// telefoneRegex é o padrão regional aceito: DDD com ou sem parênteses,
// 4 ou 5 dígitos no prefixo e 4 no sufixo.
var telefoneRegex = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}[\s-]?\d{4}$`)

// PedidoAgendamento é a entrada do formulário de agendamento.
type PedidoAgendamento struct {
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone"`
	Produto     string `json:"produto"`
	Data        string `json:"data"` // formato AAAA-MM-DD
	Horario     string `json:"horario"`
	Observacoes string `json:"observacoes"`
}

// validar aplica as regras do formulário: campos obrigatórios, telefone
// no padrão regional e data de hoje em diante. A data de hoje é aceita.
func validar(p PedidoAgendamento, hoje time.Time) error {
	obrigatorios := []struct {
		campo string
		valor string
	}{
		{"nome", p.Nome},
		{"telefone", p.Telefone},
		{"produto", p.Produto},
		{"data", p.Data},
		{"horario", p.Horario},
	}
	for _, o := range obrigatorios {
		if strings.TrimSpace(o.valor) == "" {
			return model.NewCampoObrigatorioError(o.campo)
		}
	}

	if !telefoneRegex.MatchString(strings.ReplaceAll(p.Telefone, " ", "")) {
		return model.NewTelefoneInvalidoError()
	}

	data, err := time.Parse("2006-01-02", p.Data)
	if err != nil {
		return model.NewDataPassadaError()
	}
	// A data do formulário é interpretada em UTC; o dia corrente é
	// comparado no mesmo fuso para que a data de hoje nunca seja
	// rejeitada.
	inicioHoje := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC)
	if data.Before(inicioHoje) {
		return model.NewDataPassadaError()
	}

	return nil
}
