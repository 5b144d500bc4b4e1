package security

import (
	"strings"
	"testing"
)

// TestSanitize_TagsPermitidas verifica que as tags da lista de permissão passam.
func TestSanitize_TagsPermitidas(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "tag p permitida",
			input:        "<p>Lançamento da nova pistola</p>",
			wantContains: []string{"<p>Lançamento da nova pistola</p>"},
		},
		{
			name:         "tag a permitida",
			input:        `<a href="https://infoarmas.com.br/noticia">leia mais</a>`,
			wantContains: []string{"<a", "href", "https://infoarmas.com.br/noticia", "leia mais", "</a>"},
		},
		{
			name:         "listas permitidas",
			input:        "<ul><li>calibre .380</li><li>calibre 9mm</li></ul>",
			wantContains: []string{"<ul>", "<li>", "calibre .380", "calibre 9mm"},
		},
		{
			name:         "strong e em permitidas",
			input:        "<strong>atenção</strong> <em>novidade</em>",
			wantContains: []string{"<strong>atenção</strong>", "<em>novidade</em>"},
		},
		{
			name:         "img https permitida",
			input:        `<img src="https://infoarmas.com.br/capa.jpg" alt="capa">`,
			wantContains: []string{"<img", "https://infoarmas.com.br/capa.jpg", `alt="capa"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, deveria conter %q", tt.input, got, want)
				}
			}
		})
	}
}

// TestSanitize_TagsProibidas verifica que tags perigosas são removidas.
func TestSanitize_TagsProibidas(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name         string
		input        string
		wantAbsent   []string
		wantContains []string
	}{
		{
			name:         "script removido",
			input:        `<p>notícia</p><script>alert('xss')</script>`,
			wantAbsent:   []string{"<script", "alert"},
			wantContains: []string{"notícia"},
		},
		{
			name:       "iframe removido",
			input:      `<iframe src="https://evil.com"></iframe>`,
			wantAbsent: []string{"<iframe", "evil.com"},
		},
		{
			name:         "style removido",
			input:        `<p>texto</p><style>body{display:none}</style>`,
			wantAbsent:   []string{"<style", "display:none"},
			wantContains: []string{"texto"},
		},
		{
			name:         "div removida mantendo o conteúdo",
			input:        `<div><p>texto</p></div>`,
			wantAbsent:   []string{"<div"},
			wantContains: []string{"<p>texto</p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Sanitize(%q) = %q, não deveria conter %q", tt.input, got, absent)
				}
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, deveria conter %q", tt.input, got, want)
				}
			}
		})
	}
}

// TestSanitize_AtributosDeEvento verifica a remoção de atributos on*.
func TestSanitize_AtributosDeEvento(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name       string
		input      string
		wantAbsent []string
	}{
		{
			name:       "onclick removido",
			input:      `<p onclick="alert('xss')">texto</p>`,
			wantAbsent: []string{"onclick", "alert"},
		},
		{
			name:       "onerror removido",
			input:      `<img src="https://example.com/img.png" onerror="alert('xss')">`,
			wantAbsent: []string{"onerror", "alert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Sanitize(%q) = %q, não deveria conter %q", tt.input, got, absent)
				}
			}
		})
	}
}

// TestSanitize_ImgSomenteHTTPS verifica que img só passa com esquema https.
func TestSanitize_ImgSomenteHTTPS(t *testing.T) {
	sanitizer := NewContentSanitizer()

	seguro := sanitizer.Sanitize(`<img src="https://example.com/foto.png" alt="foto">`)
	if !strings.Contains(seguro, "https://example.com/foto.png") {
		t.Errorf("img https deveria passar, veio %q", seguro)
	}

	inseguros := []string{
		`<img src="http://example.com/foto.png">`,
		`<img src="javascript:alert('xss')">`,
		`<img src="data:image/png;base64,abc">`,
	}
	for _, input := range inseguros {
		got := sanitizer.Sanitize(input)
		if strings.Contains(got, "src=") {
			t.Errorf("Sanitize(%q) = %q, src não https deveria ser removido", input, got)
		}
	}
}

// TestSanitize_AtributosDeLink verifica target e rel forçados nos links.
func TestSanitize_AtributosDeLink(t *testing.T) {
	sanitizer := NewContentSanitizer()

	got := sanitizer.Sanitize(`<a href="https://example.com" target="_self">link</a>`)

	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("esperava target=\"_blank\", veio %q", got)
	}
	if !strings.Contains(got, "noopener") || !strings.Contains(got, "noreferrer") {
		t.Errorf("esperava rel noopener noreferrer, veio %q", got)
	}
	if strings.Contains(got, `target="_self"`) {
		t.Errorf("target=\"_self\" não deveria sobreviver: %q", got)
	}
}

// TestSanitize_Idempotente verifica que sanitizar duas vezes não altera o resultado.
func TestSanitize_Idempotente(t *testing.T) {
	sanitizer := NewContentSanitizer()

	input := `<p>texto <strong>forte</strong></p><a href="https://example.com">link</a>`

	r1 := sanitizer.Sanitize(input)
	r2 := sanitizer.Sanitize(r1)
	if r1 != r2 {
		t.Errorf("sanitização não é idempotente: %q != %q", r1, r2)
	}
}

// TestStripText verifica a remoção completa de marcação para os cards.
func TestStripText(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tags removidas",
			input: "<p>Exército publica nova <strong>portaria</strong> sobre CAC</p>",
			want:  "Exército publica nova portaria sobre CAC",
		},
		{
			name:  "script removido com o conteúdo",
			input: `texto<script>alert('xss')</script>`,
			want:  "texto",
		},
		{
			name:  "entidades decodificadas",
			input: "Ca&ccedil;a &amp; tiro",
			want:  "Caça & tiro",
		},
		{
			name:  "espaços das bordas aparados",
			input: "  <p> resumo </p>  ",
			want:  "resumo",
		},
		{
			name:  "entrada vazia",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.StripText(tt.input)
			if got != tt.want {
				t.Errorf("StripText(%q) = %q, esperava %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestContentSanitizerInterface verifica a conformidade com a interface.
func TestContentSanitizerInterface(t *testing.T) {
	var _ ContentSanitizerService = NewContentSanitizer()
}
