package whatsapp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sportgun/loja/internal/model"
)

func builderDeTeste() *Builder {
	return NewBuilder("+55 (11) 99999-9999", "Sport Gun Imports")
}

func agendamentoDeTeste() model.Agendamento {
	return model.Agendamento{
		ID:       "agd_1756562400000_ab12cd34e",
		Nome:     "João da Silva",
		Telefone: "(27) 99876-5432",
		Produto:  "Pistola Taurus G3C",
		Data:     "2026-09-10",
		Horario:  "14:00",
		Status:   model.StatusPendente,
	}
}

// TestLinkContato verifica o link do botão flutuante.
func TestLinkContato(t *testing.T) {
	got := builderDeTeste().LinkContato()
	if got != "https://wa.me/5511999999999" {
		t.Errorf("LinkContato = %q", got)
	}
}

// TestMensagemNovoAgendamento verifica o texto enviado à loja.
func TestMensagemNovoAgendamento(t *testing.T) {
	agora := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	msg := builderDeTeste().MensagemNovoAgendamento(agendamentoDeTeste(), agora)

	wantPartes := []string{
		"*NOVO AGENDAMENTO - Sport Gun Imports*",
		"*Cliente:* João da Silva",
		"*Telefone:* (27) 99876-5432",
		"*Produto/Serviço:* Pistola Taurus G3C",
		"*Data:* 10/09/2026",
		"*Horário:* 14:00",
		"*Observações:* Nenhuma",
		"criado via site em 31/08/2026",
		"*CONFIRMAR*",
		"*CANCELAR*",
	}
	for _, parte := range wantPartes {
		if !strings.Contains(msg, parte) {
			t.Errorf("mensagem sem %q:\n%s", parte, msg)
		}
	}
}

// TestMensagemNovoAgendamento_ComObservacoes verifica que as observações
// do cliente substituem o "Nenhuma".
func TestMensagemNovoAgendamento_ComObservacoes(t *testing.T) {
	a := agendamentoDeTeste()
	a.Observacoes = "Prefiro atendimento no balcão 2"

	msg := builderDeTeste().MensagemNovoAgendamento(a, time.Now())
	if !strings.Contains(msg, "Prefiro atendimento no balcão 2") {
		t.Errorf("mensagem sem as observações:\n%s", msg)
	}
	if strings.Contains(msg, "Nenhuma") {
		t.Errorf("mensagem não deveria conter \"Nenhuma\":\n%s", msg)
	}
}

// TestLinkNovoAgendamento verifica o destino e a codificação do link.
func TestLinkNovoAgendamento(t *testing.T) {
	got := builderDeTeste().LinkNovoAgendamento(agendamentoDeTeste(), time.Now())

	if !strings.HasPrefix(got, "https://wa.me/5511999999999?text=") {
		t.Fatalf("link com prefixo inesperado: %q", got)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("link inválido: %v", err)
	}
	texto := u.Query().Get("text")
	if !strings.Contains(texto, "João da Silva") {
		t.Errorf("texto decodificado sem o nome do cliente: %q", texto)
	}
}

// TestLinkConfirmacao verifica que a confirmação vai para o telefone do
// cliente, normalizado para dígitos.
func TestLinkConfirmacao(t *testing.T) {
	got := builderDeTeste().LinkConfirmacao(agendamentoDeTeste())

	if !strings.HasPrefix(got, "https://wa.me/27998765432?text=") {
		t.Fatalf("link deveria apontar para o telefone do cliente: %q", got)
	}
	if !strings.Contains(got, url.QueryEscape("*CONFIRMADO*")) {
		t.Errorf("link sem a mensagem de confirmação: %q", got)
	}
}

// TestMensagemPedido verifica o resumo do checkout.
func TestMensagemPedido(t *testing.T) {
	itens := []model.ItemCarrinho{
		{Nome: "Pistola Taurus G3C", Preco: 4599.90, Quantidade: 2},
		{Nome: "Colete Modular", Preco: 899.00, Quantidade: 1},
	}
	agora := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	msg := builderDeTeste().MensagemPedido(itens, 10098.80, agora)

	wantPartes := []string{
		"*NOVO PEDIDO - Sport Gun Imports*",
		"• 2x Pistola Taurus G3C - R$ 9199.80",
		"• 1x Colete Modular - R$ 899.00",
		"*Total:* R$ 10098.80",
		"criado via site em 31/08/2026",
	}
	for _, parte := range wantPartes {
		if !strings.Contains(msg, parte) {
			t.Errorf("mensagem sem %q:\n%s", parte, msg)
		}
	}
}

// TestFormatarDataAgendamento verifica o formato e a passagem de datas
// fora do padrão.
func TestFormatarDataAgendamento(t *testing.T) {
	if got := formatarDataAgendamento("2026-09-10"); got != "10/09/2026" {
		t.Errorf("formatarDataAgendamento = %q", got)
	}
	if got := formatarDataAgendamento("amanhã"); got != "amanhã" {
		t.Errorf("data fora do formato deveria passar intacta, veio %q", got)
	}
}
