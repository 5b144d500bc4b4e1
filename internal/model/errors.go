// Package model define os modelos de domínio da loja.
package model

import "fmt"

// APIError é o formato unificado de erro da API.
// Inclui a categoria da causa e a ação sugerida ao usuário.
type APIError struct {
	Code     string // código do erro
	Message  string // mensagem do erro
	Category string // categoria: auth, validation, carrinho, agendamento, noticias, system
	Action   string // orientação ao usuário
}

// Error implementa a interface error.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Códigos de erro definidos
const (
	ErrCodeNaoAutenticado       = "NAO_AUTENTICADO"
	ErrCodeCarrinhoVazio        = "CARRINHO_VAZIO"
	ErrCodePrecoInvalido        = "PRECO_INVALIDO"
	ErrCodeCampoObrigatorio     = "CAMPO_OBRIGATORIO"
	ErrCodeTelefoneInvalido     = "TELEFONE_INVALIDO"
	ErrCodeDataPassada          = "DATA_PASSADA"
	ErrCodeAgendamentoNaoAchado = "AGENDAMENTO_NAO_ENCONTRADO"
	ErrCodeTransicaoInvalida    = "TRANSICAO_INVALIDA"
	ErrCodeSimulacaoInvalida    = "SIMULACAO_INVALIDA"
	ErrCodeRequisicaoInvalida   = "REQUISICAO_INVALIDA"
)

// NewNaoAutenticadoError gera o erro de precondição de sessão.
// loginURL aponta para o fluxo de login externo, análogo ao redirect
// do site.
func NewNaoAutenticadoError(loginURL string) *APIError {
	return &APIError{
		Code:     ErrCodeNaoAutenticado,
		Message:  "Faça login para usar o carrinho e os agendamentos.",
		Category: "auth",
		Action:   fmt.Sprintf("Acesse %s para entrar na sua conta.", loginURL),
	}
}

// NewCarrinhoVazioError gera o erro de checkout com carrinho vazio.
func NewCarrinhoVazioError() *APIError {
	return &APIError{
		Code:     ErrCodeCarrinhoVazio,
		Message:  "Seu carrinho está vazio.",
		Category: "carrinho",
		Action:   "Adicione produtos antes de finalizar a compra.",
	}
}

// NewPrecoInvalidoError gera o erro de preço fora do formato localizado.
func NewPrecoInvalidoError(texto string) *APIError {
	return &APIError{
		Code:     ErrCodePrecoInvalido,
		Message:  fmt.Sprintf("Preço em formato inválido: %q.", texto),
		Category: "validation",
		Action:   "Informe o preço no formato \"R$ 1.234,56\".",
	}
}

// NewCampoObrigatorioError gera o erro de campo ausente no agendamento.
func NewCampoObrigatorioError(campo string) *APIError {
	return &APIError{
		Code:     ErrCodeCampoObrigatorio,
		Message:  fmt.Sprintf("O campo %q é obrigatório.", campo),
		Category: "validation",
		Action:   "Preencha todos os campos obrigatórios.",
	}
}

// NewTelefoneInvalidoError gera o erro de telefone fora do padrão regional.
func NewTelefoneInvalidoError() *APIError {
	return &APIError{
		Code:     ErrCodeTelefoneInvalido,
		Message:  "Digite um telefone válido.",
		Category: "validation",
		Action:   "Use o formato (11) 99999-9999.",
	}
}

// NewDataPassadaError gera o erro de data de agendamento no passado.
func NewDataPassadaError() *APIError {
	return &APIError{
		Code:     ErrCodeDataPassada,
		Message:  "A data do agendamento deve ser hoje ou futura.",
		Category: "validation",
		Action:   "Escolha uma data a partir de hoje.",
	}
}

// NewAgendamentoNaoEncontradoError gera o erro de agendamento inexistente.
func NewAgendamentoNaoEncontradoError(id string) *APIError {
	return &APIError{
		Code:     ErrCodeAgendamentoNaoAchado,
		Message:  fmt.Sprintf("Agendamento não encontrado: %s", id),
		Category: "agendamento",
		Action:   "Confira o identificador do agendamento.",
	}
}

// NewTransicaoInvalidaError gera o erro de transição de status indefinida.
func NewTransicaoInvalidaError(de StatusAgendamento) *APIError {
	return &APIError{
		Code:     ErrCodeTransicaoInvalida,
		Message:  fmt.Sprintf("Agendamentos com status %q não podem mudar de estado.", de),
		Category: "agendamento",
		Action:   "Apenas agendamentos pendentes podem ser confirmados ou cancelados.",
	}
}

// NewSimulacaoInvalidaError gera o erro de parâmetros de financiamento.
func NewSimulacaoInvalidaError(motivo string) *APIError {
	return &APIError{
		Code:     ErrCodeSimulacaoInvalida,
		Message:  fmt.Sprintf("Parâmetros de simulação inválidos: %s.", motivo),
		Category: "validation",
		Action:   "Revise os valores informados e tente novamente.",
	}
}

// NewRequisicaoInvalidaError gera o erro de corpo de requisição malformado.
func NewRequisicaoInvalidaError() *APIError {
	return &APIError{
		Code:     ErrCodeRequisicaoInvalida,
		Message:  "Não foi possível interpretar o corpo da requisição.",
		Category: "validation",
		Action:   "Envie a requisição em JSON válido.",
	}
}
