// Package model define os modelos de domínio da loja.
package model

// ItemCarrinho representa uma linha do carrinho de compras.
// As tags JSON seguem o esquema gravado na chave "cart" do armazenamento
// local, preservado para compatibilidade com carrinhos já persistidos.
type ItemCarrinho struct {
	ID         string  `json:"id"`
	Nome       string  `json:"name"`
	Preco      float64 `json:"price"`
	Imagem     string  `json:"image"`
	Quantidade int     `json:"quantity"`
}

// ProdutoDescritor é a entrada do caller ao adicionar um produto ao carrinho.
// PrecoTexto chega no formato localizado do site ("R$ 1.234,56").
type ProdutoDescritor struct {
	Nome       string `json:"nome"`
	PrecoTexto string `json:"preco"`
	Imagem     string `json:"imagem"`
}

// CarrinhoView é a visão do carrinho renderizada para o modal.
// Total e Itens são derivados da sequência no momento da leitura,
// nunca cacheados.
type CarrinhoView struct {
	Vazio      bool               `json:"vazio"`
	Itens      []ItemCarrinhoView `json:"itens"`
	TotalItens int                `json:"total_itens"`
	TotalPreco float64            `json:"total_preco"`

	// Mensagem é a confirmação transitória exibida ao cliente após
	// adicionar um produto. Vazia nas demais operações.
	Mensagem string `json:"mensagem,omitempty"`
}

// ItemCarrinhoView é um item do carrinho com os dados dos controles
// de incremento/decremento/remoção.
type ItemCarrinhoView struct {
	ID             string  `json:"id"`
	Nome           string  `json:"nome"`
	Preco          float64 `json:"preco"`
	PrecoFormatado string  `json:"preco_formatado"`
	Imagem         string  `json:"imagem"`
	Quantidade     int     `json:"quantidade"`
}
