// Package security reúne as proteções da aplicação.
//
// ContentSanitizerService limpa o HTML vindo dos feeds de notícias antes
// de qualquer uso: remoção completa para os textos dos cards e política
// de lista de permissão para conteúdo exibido como HTML.
package security

import (
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizerService define a interface de sanitização de conteúdo.
// Usada pelo pipeline de notícias sobre títulos e descrições dos feeds.
type ContentSanitizerService interface {
	// Sanitize devolve HTML seguro segundo a política de lista de permissão.
	// Permite p, br, a, ul, ol, li, blockquote, pre, code, strong, em e img;
	// remove script, iframe, style e todos os atributos on*.
	// O src de img só passa com esquema https. Links recebem target="_blank"
	// e rel="noopener noreferrer". Entrada vazia devolve vazio; a operação
	// é idempotente.
	Sanitize(rawHTML string) string

	// StripText remove toda marcação e devolve apenas o texto, com as
	// entidades HTML decodificadas e os espaços das bordas aparados.
	// É o que os cards de notícia usam na descrição.
	StripText(rawHTML string) string
}

// contentSanitizer implementa ContentSanitizerService com duas políticas
// do bluemonday, ambas seguras para uso concorrente.
type contentSanitizer struct {
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewContentSanitizer cria o sanitizador com as duas políticas prontas.
func NewContentSanitizer() *contentSanitizer {
	p := bluemonday.NewPolicy()

	// Tags simples permitidas, sem atributos. O que não está na lista
	// (script, iframe, style, div, form) é removido automaticamente,
	// assim como qualquer atributo on*.
	p.AllowElements(
		"p", "br", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em",
	)

	// Links: href permitido, URL relativa não, target e rel forçados.
	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	// Imagens: src apenas https, alt preservado.
	p.AllowAttrs("src").OnElements("img")
	p.AllowAttrs("alt").OnElements("img")
	p.AllowURLSchemeWithCustomPolicy("https", func(u *url.URL) bool {
		return true
	})

	return &contentSanitizer{
		policy: p,
		strict: bluemonday.StrictPolicy(),
	}
}

// Sanitize devolve HTML seguro segundo a política de lista de permissão.
func (s *contentSanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}

// StripText remove toda marcação e devolve apenas o texto.
func (s *contentSanitizer) StripText(rawHTML string) string {
	texto := s.strict.Sanitize(rawHTML)
	return strings.TrimSpace(html.UnescapeString(texto))
}
