// Package model define os modelos de domínio da loja.
package model

import "time"

// FonteNoticia é uma fonte de feed configurada (URL + nome de exibição).
type FonteNoticia struct {
	URL  string
	Nome string
}

// Noticia é um artigo normalizado vindo de uma fonte de feed.
// Descricao já está em texto puro (HTML removido) e truncada.
// ImagemURL fica vazia quando nenhum método da cadeia de fallback resolve
// uma imagem; a renderização substitui pelo placeholder.
type Noticia struct {
	Titulo      string
	Descricao   string
	URL         string
	ImagemURL   string
	PublicadaEm time.Time
	Fonte       string
}

// ItemFeedBruto é um item cru retornado por uma fonte, antes da
// normalização. Os campos opcionais (thumbnail, enclosure, descrição)
// são modelados explicitamente: a cadeia de resolução de imagem os
// consulta em ordem e para no primeiro sucesso.
type ItemFeedBruto struct {
	Titulo      string
	Link        string
	GUID        string
	Descricao   string // HTML cru
	Conteudo    string // HTML cru; usado quando Descricao está vazia
	Thumbnail   string
	Enclosure   string // URL do enclosure, se houver
	PublicadaEm *time.Time
}

// NoticiaCard é a visão de um artigo renderizada na grade de notícias.
type NoticiaCard struct {
	Titulo        string `json:"titulo"`
	Descricao     string `json:"descricao"`
	URL           string `json:"url"`
	ImagemURL     string `json:"imagem_url"`
	ImagemReserva string `json:"imagem_reserva"`
	Data          string `json:"data"`
	Fonte         string `json:"fonte"`
}
