// Package news implementa o pipeline de notícias da vitrine: busca das
// fontes especializadas, normalização, filtro temático, ordenação e
// renderização dos três cards da grade, com os artigos padrão como
// reserva quando nenhuma fonte responde.
package news

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/sportgun/loja/internal/model"
)

// Fetcher busca os itens crus de uma fonte de feed.
// Há duas implementações: a ponte rss2json (bridge.Client) e a busca
// direta com parse local (DirectFetcher). A escolha é por configuração.
type Fetcher interface {
	FetchFeed(ctx context.Context, feedURL string, count int) ([]model.ItemFeedBruto, error)
}

// SSRFValidator é a proteção contra SSRF usada na busca direta.
type SSRFValidator interface {
	ValidateURL(rawURL string) error
	NewSafeClient(timeout time.Duration, maxResponseSize int64) *http.Client
}

// DirectFetcher busca o feed direto da fonte e faz o parse localmente
// com gofeed, sem passar pela ponte rss2json.
type DirectFetcher struct {
	ssrfGuard   SSRFValidator
	logger      *slog.Logger
	timeout     time.Duration
	maxBodySize int64
}

// NewDirectFetcher cria um DirectFetcher.
func NewDirectFetcher(ssrfGuard SSRFValidator, logger *slog.Logger, timeout time.Duration, maxBodySize int64) *DirectFetcher {
	return &DirectFetcher{
		ssrfGuard:   ssrfGuard,
		logger:      logger,
		timeout:     timeout,
		maxBodySize: maxBodySize,
	}
}

// FetchFeed busca e interpreta o feed da URL informada.
func (f *DirectFetcher) FetchFeed(ctx context.Context, feedURL string, count int) ([]model.ItemFeedBruto, error) {
	if err := f.ssrfGuard.ValidateURL(feedURL); err != nil {
		f.logger.Error("validação SSRF da fonte falhou",
			slog.String("feed_url", feedURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("validação SSRF falhou: %w", err)
	}

	client := f.ssrfGuard.NewSafeClient(f.timeout, f.maxBodySize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar a requisição: %w", err)
	}
	req.Header.Set("User-Agent", "SportGun/1.0 Storefront")
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml, */*")

	resp, err := client.Do(req)
	if err != nil {
		f.logger.Error("requisição HTTP à fonte falhou",
			slog.String("feed_url", feedURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("requisição HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("a fonte retornou status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("falha ao ler o corpo da resposta: %w", err)
	}

	parser := gofeed.NewParser()
	parsedFeed, err := parser.ParseString(string(body))
	if err != nil {
		f.logger.Error("parse do feed falhou",
			slog.String("feed_url", feedURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("parse do feed falhou: %w", err)
	}

	itens := convertGofeedItems(parsedFeed.Items)
	if count > 0 && len(itens) > count {
		itens = itens[:count]
	}
	return itens, nil
}

// convertGofeedItems converte os itens do gofeed para o modelo cru.
func convertGofeedItems(items []*gofeed.Item) []model.ItemFeedBruto {
	itens := make([]model.ItemFeedBruto, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}

		bruto := model.ItemFeedBruto{
			Titulo:    item.Title,
			Link:      item.Link,
			GUID:      item.GUID,
			Descricao: item.Description,
			Conteudo:  item.Content,
		}

		if item.Image != nil {
			bruto.Thumbnail = item.Image.URL
		}
		if bruto.Thumbnail == "" {
			bruto.Thumbnail = mediaThumbnail(item)
		}

		// Primeiro enclosure de imagem; na falta, o primeiro com URL.
		for _, enc := range item.Enclosures {
			if enc == nil || enc.URL == "" {
				continue
			}
			if bruto.Enclosure == "" {
				bruto.Enclosure = enc.URL
			}
			if len(enc.Type) >= 6 && enc.Type[:6] == "image/" {
				bruto.Enclosure = enc.URL
				break
			}
		}

		if item.PublishedParsed != nil {
			t := *item.PublishedParsed
			bruto.PublicadaEm = &t
		} else if item.UpdatedParsed != nil {
			t := *item.UpdatedParsed
			bruto.PublicadaEm = &t
		}

		itens = append(itens, bruto)
	}

	return itens
}

// mediaThumbnail extrai a URL de media:thumbnail, comum em feeds WordPress.
func mediaThumbnail(item *gofeed.Item) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media["thumbnail"] {
		if url := ext.Attrs["url"]; url != "" {
			return url
		}
	}
	return ""
}
