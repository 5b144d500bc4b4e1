package bridge

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestClient cria um cliente apontando para um servidor de teste.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewClient(ts.Client(), newTestLogger(), ts.URL, "chave-teste")
	return c, ts
}

// TestFetchFeed_Sucesso verifica o mapeamento de uma resposta bem formada.
func TestFetchFeed_Sucesso(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"status": "ok",
			"items": [
				{
					"title": "Exército publica nova portaria",
					"pubDate": "2026-08-30 14:33:13",
					"link": "https://infoarmas.com.br/portaria",
					"guid": "https://infoarmas.com.br/?p=123",
					"thumbnail": "https://infoarmas.com.br/capa.jpg",
					"description": "<p>Resumo da portaria</p>",
					"content": "<p>Texto completo</p>",
					"enclosure": {"link": "https://infoarmas.com.br/anexo.jpg"}
				}
			]
		}`)
	})

	itens, err := client.FetchFeed(context.Background(), "https://infoarmas.com.br/feed/", 10)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(itens) != 1 {
		t.Fatalf("esperava 1 item, veio %d", len(itens))
	}

	it := itens[0]
	if it.Titulo != "Exército publica nova portaria" {
		t.Errorf("título divergente: %q", it.Titulo)
	}
	if it.GUID != "https://infoarmas.com.br/?p=123" {
		t.Errorf("GUID divergente: %q", it.GUID)
	}
	if it.Thumbnail != "https://infoarmas.com.br/capa.jpg" {
		t.Errorf("thumbnail divergente: %q", it.Thumbnail)
	}
	if it.Enclosure != "https://infoarmas.com.br/anexo.jpg" {
		t.Errorf("enclosure divergente: %q", it.Enclosure)
	}
	if it.PublicadaEm == nil {
		t.Fatal("esperava data de publicação interpretada")
	}
	want := time.Date(2026, 8, 30, 14, 33, 13, 0, time.UTC)
	if !it.PublicadaEm.Equal(want) {
		t.Errorf("esperava data %v, veio %v", want, it.PublicadaEm)
	}

	if got := gotQuery["rss_url"]; len(got) != 1 || got[0] != "https://infoarmas.com.br/feed/" {
		t.Errorf("parâmetro rss_url divergente: %v", got)
	}
	if got := gotQuery["api_key"]; len(got) != 1 || got[0] != "chave-teste" {
		t.Errorf("parâmetro api_key divergente: %v", got)
	}
	if got := gotQuery["count"]; len(got) != 1 || got[0] != "10" {
		t.Errorf("parâmetro count divergente: %v", got)
	}
}

// TestFetchFeed_StatusNaoOK verifica que status diferente de "ok" vira erro.
func TestFetchFeed_StatusNaoOK(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status": "error", "items": []}`)
	})

	_, err := client.FetchFeed(context.Background(), "https://infoarmas.com.br/feed/", 10)
	if err == nil {
		t.Fatal("esperava erro para status diferente de ok")
	}
}

// TestFetchFeed_ErroHTTP verifica que status HTTP de erro vira erro.
func TestFetchFeed_ErroHTTP(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.FetchFeed(context.Background(), "https://infoarmas.com.br/feed/", 10)
	if err == nil {
		t.Fatal("esperava erro para status HTTP 429")
	}
}

// TestFetchFeed_JSONInvalido verifica que corpo malformado vira erro.
func TestFetchFeed_JSONInvalido(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `isto não é JSON`)
	})

	_, err := client.FetchFeed(context.Background(), "https://infoarmas.com.br/feed/", 10)
	if err == nil {
		t.Fatal("esperava erro para JSON inválido")
	}
}

// TestFetchFeed_DataMalformada verifica que data inválida vira nil em vez de erro.
func TestFetchFeed_DataMalformada(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"status": "ok",
			"items": [
				{"title": "Sem data", "link": "https://example.com/a", "pubDate": "ontem"}
			]
		}`)
	})

	itens, err := client.FetchFeed(context.Background(), "https://infoarmas.com.br/feed/", 10)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(itens) != 1 {
		t.Fatalf("esperava 1 item, veio %d", len(itens))
	}
	if itens[0].PublicadaEm != nil {
		t.Errorf("esperava data nil para pubDate malformado, veio %v", itens[0].PublicadaEm)
	}
}

// TestFetchFeed_SemChaveDeAPI verifica que api_key não é enviado quando vazio.
func TestFetchFeed_SemChaveDeAPI(t *testing.T) {
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"status": "ok", "items": []}`)
	}))
	t.Cleanup(ts.Close)

	client := NewClient(ts.Client(), newTestLogger(), ts.URL, "")

	if _, err := client.FetchFeed(context.Background(), "https://infoarmas.com.br/feed/", 0); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, ok := gotQuery["api_key"]; ok {
		t.Error("api_key não deveria ser enviado quando vazio")
	}
	if _, ok := gotQuery["count"]; ok {
		t.Error("count não deveria ser enviado quando zero")
	}
}
