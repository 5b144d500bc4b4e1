// Package whatsapp monta os links wa.me e as mensagens de atendimento
// da loja: contato geral, novo agendamento, confirmação e resumo de
// pedido. O texto das mensagens segue os modelos usados pelo site.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sportgun/loja/internal/model"
)

// Builder monta links e mensagens de WhatsApp da loja.
type Builder struct {
	numeroLoja string // somente dígitos, com DDI
	nomeLoja   string
}

// NewBuilder cria um Builder. O número é normalizado para dígitos.
func NewBuilder(numeroLoja, nomeLoja string) *Builder {
	return &Builder{
		numeroLoja: somenteDigitos(numeroLoja),
		nomeLoja:   nomeLoja,
	}
}

// LinkContato é o link do botão flutuante, sem mensagem pré-preenchida.
func (b *Builder) LinkContato() string {
	return "https://wa.me/" + b.numeroLoja
}

// link monta um wa.me com a mensagem pré-preenchida.
func link(numero, mensagem string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", numero, url.QueryEscape(mensagem))
}

// LinkNovoAgendamento leva o cliente à conversa com a loja com os dados
// do agendamento recém-criado.
func (b *Builder) LinkNovoAgendamento(a model.Agendamento, agora time.Time) string {
	return link(b.numeroLoja, b.MensagemNovoAgendamento(a, agora))
}

// MensagemNovoAgendamento é o texto enviado à loja na criação.
func (b *Builder) MensagemNovoAgendamento(a model.Agendamento, agora time.Time) string {
	observacoes := a.Observacoes
	if observacoes == "" {
		observacoes = "Nenhuma"
	}

	return fmt.Sprintf(`🛒 *NOVO AGENDAMENTO - %s*

👤 *Cliente:* %s
📞 *Telefone:* %s
🔫 *Produto/Serviço:* %s
📅 *Data:* %s
⏰ *Horário:* %s
📝 *Observações:* %s

_Agendamento criado via site em %s_

Por favor, confirme este agendamento respondendo:
✅ *CONFIRMAR* - Para confirmar o agendamento
❌ *CANCELAR* - Para cancelar o agendamento`,
		b.nomeLoja, a.Nome, a.Telefone, a.Produto,
		formatarDataAgendamento(a.Data), a.Horario, observacoes,
		agora.Format("02/01/2006"))
}

// LinkConfirmacao leva à conversa com o cliente com a mensagem de
// agendamento confirmado.
func (b *Builder) LinkConfirmacao(a model.Agendamento) string {
	return link(somenteDigitos(a.Telefone), b.MensagemConfirmacao(a))
}

// MensagemConfirmacao é o texto enviado ao cliente na confirmação.
func (b *Builder) MensagemConfirmacao(a model.Agendamento) string {
	return fmt.Sprintf(`✅ *AGENDAMENTO CONFIRMADO - %s*

Olá %s!

Seu agendamento foi *CONFIRMADO*:

🔫 *Produto/Serviço:* %s
📅 *Data:* %s
⏰ *Horário:* %s

*IMPORTANTE:*
- Chegue com 15 minutos de antecedência
- Traga documentação necessária
- Em caso de impedimento, avise com antecedência

Agradecemos pela preferência! 🎯`,
		b.nomeLoja, a.Nome, a.Produto, formatarDataAgendamento(a.Data), a.Horario)
}

// LinkPedido leva à conversa com a loja com o resumo do pedido fechado.
func (b *Builder) LinkPedido(itens []model.ItemCarrinho, total float64, agora time.Time) string {
	return link(b.numeroLoja, b.MensagemPedido(itens, total, agora))
}

// MensagemPedido é o resumo do carrinho enviado à loja no checkout.
func (b *Builder) MensagemPedido(itens []model.ItemCarrinho, total float64, agora time.Time) string {
	var linhas strings.Builder
	for _, item := range itens {
		fmt.Fprintf(&linhas, "• %dx %s - R$ %.2f\n", item.Quantidade, item.Nome, item.Preco*float64(item.Quantidade))
	}

	return fmt.Sprintf(`🛒 *NOVO PEDIDO - %s*

%s
💰 *Total:* R$ %.2f

_Pedido criado via site em %s_`,
		b.nomeLoja, strings.TrimRight(linhas.String(), "\n"), total,
		agora.Format("02/01/2006"))
}

// formatarDataAgendamento converte a data AAAA-MM-DD para DD/MM/AAAA.
// Data fora do formato passa como veio.
func formatarDataAgendamento(data string) string {
	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		return data
	}
	return t.Format("02/01/2006")
}

// somenteDigitos remove tudo que não for dígito do número.
func somenteDigitos(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
