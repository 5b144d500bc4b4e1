// Package bridge implementa o cliente da ponte RSS-para-JSON (rss2json).
// A ponte converte feeds RSS em JSON do lado do servidor, o caminho que o
// site sempre usou para as fontes que não servem o feed com CORS aberto.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sportgun/loja/internal/model"
)

const (
	// defaultEndpoint é o endpoint público da API rss2json.
	defaultEndpoint = "https://api.rss2json.com/v1/api.json"
	// pubDateLayout é o formato de data que a ponte devolve nos itens.
	pubDateLayout = "2006-01-02 15:04:05"
)

// Client é o cliente da API rss2json.
// Uma chamada converte um feed inteiro; a quantidade de itens é limitada
// pelo parâmetro count da API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	endpoint   string
}

// NewClient cria um Client. A chave de API é opcional; sem ela a ponte
// aplica os limites do plano gratuito. Endpoint vazio usa o endpoint
// público da rss2json.
func NewClient(httpClient *http.Client, logger *slog.Logger, endpoint, apiKey string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     apiKey,
		endpoint:   endpoint,
	}
}

// feedResponse é o envelope da resposta da ponte.
type feedResponse struct {
	Status string     `json:"status"`
	Items  []feedItem `json:"items"`
}

// feedItem é um item do feed na resposta da ponte.
type feedItem struct {
	Title       string `json:"title"`
	PubDate     string `json:"pubDate"`
	Link        string `json:"link"`
	GUID        string `json:"guid"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Enclosure   struct {
		Link string `json:"link"`
	} `json:"enclosure"`
}

// FetchFeed converte o feed da URL informada e devolve os itens crus.
// Resposta com status diferente de "ok" é erro; o chamador decide se
// segue com as demais fontes.
func (c *Client) FetchFeed(ctx context.Context, feedURL string, count int) ([]model.ItemFeedBruto, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("falha ao interpretar o endpoint da ponte: %w", err)
	}

	q := reqURL.Query()
	q.Set("rss_url", feedURL)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar a requisição HTTP: %w", err)
	}
	req.Header.Set("User-Agent", "SportGun/1.0 Storefront")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("falha ao chamar a ponte rss2json",
			slog.String("error", err.Error()),
			slog.String("feed_url", feedURL),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("a ponte rss2json retornou status de erro",
			slog.Int("http_status", resp.StatusCode),
			slog.String("feed_url", feedURL),
		)
		return nil, fmt.Errorf("a ponte rss2json retornou status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler o corpo da resposta: %w", err)
	}

	var parsed feedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error("falha ao interpretar a resposta da ponte rss2json",
			slog.String("error", err.Error()),
			slog.String("feed_url", feedURL),
		)
		return nil, fmt.Errorf("falha ao interpretar o JSON da resposta: %w", err)
	}

	if parsed.Status != "ok" {
		return nil, fmt.Errorf("a ponte rss2json retornou status %q", parsed.Status)
	}

	itens := make([]model.ItemFeedBruto, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		itens = append(itens, model.ItemFeedBruto{
			Titulo:      it.Title,
			Link:        it.Link,
			GUID:        it.GUID,
			Descricao:   it.Description,
			Conteudo:    it.Content,
			Thumbnail:   it.Thumbnail,
			Enclosure:   it.Enclosure.Link,
			PublicadaEm: parsePubDate(it.PubDate),
		})
	}

	return itens, nil
}

// parsePubDate interpreta a data no formato da ponte.
// Data ausente ou malformada vira nil; o pipeline trata como mais antiga.
func parsePubDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(pubDateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
