// Package model define os modelos de domínio da loja.
package model

// Usuario são os identificadores de sessão gravados pelo fluxo de login
// externo. Este sistema apenas os lê; a única escrita é a limpeza no logout.
type Usuario struct {
	ID   string
	Nome string
}
