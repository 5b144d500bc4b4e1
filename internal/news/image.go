package news

import (
	"regexp"
	"strings"

	"github.com/sportgun/loja/internal/model"
)

var (
	imgTagRegex   = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"'>]+)["']`)
	ogImageRegex  = regexp.MustCompile(`(?i)property=["']og:image["'][^>]+content=["']([^"'>]+)["']`)
	imageURLRegex = regexp.MustCompile(`(?i)(https?://[^\s"'<>]+\.(?:jpg|jpeg|png|gif|webp))`)
)

// resolverImagem resolve a imagem de um item pela cadeia de métodos, na
// ordem, parando no primeiro que encontra algo:
//
//  1. thumbnail do item
//  2. link do enclosure
//  3. primeira tag img na descrição
//  4. meta og:image na descrição
//  5. qualquer URL de imagem na descrição, pela extensão
//
// Sem resultado, devolve vazio e a renderização usa o placeholder.
func resolverImagem(item model.ItemFeedBruto) string {
	if t := strings.TrimSpace(item.Thumbnail); t != "" {
		return t
	}

	if item.Enclosure != "" {
		return item.Enclosure
	}

	if item.Descricao != "" {
		if m := imgTagRegex.FindStringSubmatch(item.Descricao); m != nil {
			return m[1]
		}
		if m := ogImageRegex.FindStringSubmatch(item.Descricao); m != nil {
			return m[1]
		}
		if m := imageURLRegex.FindStringSubmatch(item.Descricao); m != nil {
			return m[1]
		}
	}

	return ""
}

// completarURL reancora URLs sem esquema na origem do site da fonte.
// URLs já absolutas passam intactas.
func completarURL(rawURL, origem string) string {
	if rawURL == "" || strings.HasPrefix(rawURL, "http") {
		return rawURL
	}
	if strings.HasPrefix(rawURL, "/") {
		return origem + rawURL
	}
	return origem + "/" + rawURL
}
