package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/sportgun/loja/internal/model"
)

// quaseIgual compara valores monetários com tolerância de meio centavo.
func quaseIgual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

// fakeRepo guarda o carrinho em memória, por usuário.
type fakeRepo struct {
	dados map[string][]model.ItemCarrinho
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{dados: make(map[string][]model.ItemCarrinho)}
}

func (f *fakeRepo) Load(_ context.Context, usuarioID string) ([]model.ItemCarrinho, error) {
	itens := f.dados[usuarioID]
	if itens == nil {
		return []model.ItemCarrinho{}, nil
	}
	return append([]model.ItemCarrinho(nil), itens...), nil
}

func (f *fakeRepo) Save(_ context.Context, usuarioID string, itens []model.ItemCarrinho) error {
	f.dados[usuarioID] = append([]model.ItemCarrinho(nil), itens...)
	return nil
}

// fakeMensageiro devolve um link fixo com o total embutido.
type fakeMensageiro struct {
	ultimoTotal float64
}

func (f *fakeMensageiro) LinkPedido(_ []model.ItemCarrinho, total float64, _ time.Time) string {
	f.ultimoTotal = total
	return "https://wa.me/5511999999999?text=pedido"
}

func newTestService(repo *fakeRepo) (*Service, *fakeMensageiro) {
	mensageiro := &fakeMensageiro{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewService(repo, mensageiro, logger, nil), mensageiro
}

func produto(nome, preco string) model.ProdutoDescritor {
	return model.ProdutoDescritor{Nome: nome, PrecoTexto: preco, Imagem: nome + ".jpg"}
}

// TestParsePreco verifica o parse do preço localizado.
func TestParsePreco(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"R$ 4.599,90", 4599.90, false},
		{"R$ 899,00", 899.00, false},
		{"1.234,56", 1234.56, false},
		{"R$ 12,50", 12.50, false},
		{"R$ 1.234.567,89", 1234567.89, false},
		{"", 0, true},
		{"R$ ", 0, true},
		{"grátis", 0, true},
		{"R$ -10,00", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePreco(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePreco(%q) deveria falhar, veio %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePreco(%q) erro inesperado: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreco(%q) = %v, esperava %v", tt.in, got, tt.want)
		}
	}
}

// TestGerarIDProduto verifica o determinismo e o truncamento do id.
func TestGerarIDProduto(t *testing.T) {
	a := GerarIDProduto("Pistola Taurus G3C")
	b := GerarIDProduto("Pistola Taurus G3C")
	if a != b {
		t.Errorf("mesmo nome deveria gerar o mesmo id: %q != %q", a, b)
	}
	if len(a) > 10 {
		t.Errorf("id maior que 10 caracteres: %q", a)
	}
	if GerarIDProduto("Colete Modular") == a {
		t.Error("nomes diferentes geraram o mesmo id")
	}
}

// TestAdicionar_ProdutosDistintos verifica que N produtos distintos
// viram N itens.
func TestAdicionar_ProdutosDistintos(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	nomes := []string{"Pistola Taurus G3C", "Colete Modular", "Luneta 4x32"}
	var view model.CarrinhoView
	var err error
	for _, nome := range nomes {
		view, err = svc.Adicionar(ctx, "u1", produto(nome, "R$ 100,00"))
		if err != nil {
			t.Fatalf("erro inesperado ao adicionar %q: %v", nome, err)
		}
	}

	if len(view.Itens) != len(nomes) {
		t.Fatalf("esperava %d itens, veio %d", len(nomes), len(view.Itens))
	}
	if view.TotalItens != 3 {
		t.Errorf("TotalItens = %d, esperava 3", view.TotalItens)
	}
	if view.TotalPreco != 300.00 {
		t.Errorf("TotalPreco = %v, esperava 300", view.TotalPreco)
	}
}

// TestAdicionar_MesmoProdutoIncrementa verifica o incremento de quantidade.
func TestAdicionar_MesmoProdutoIncrementa(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	p := produto("Pistola Taurus G3C", "R$ 4.599,90")
	if _, err := svc.Adicionar(ctx, "u1", p); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	view, err := svc.Adicionar(ctx, "u1", p)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(view.Itens) != 1 {
		t.Fatalf("esperava 1 item, veio %d", len(view.Itens))
	}
	if view.Itens[0].Quantidade != 2 {
		t.Errorf("quantidade = %d, esperava 2", view.Itens[0].Quantidade)
	}
	if view.TotalPreco != 9199.80 {
		t.Errorf("TotalPreco = %v, esperava 9199.80", view.TotalPreco)
	}
}

// TestAdicionar_PrecoInvalido verifica a recusa de preço malformado.
func TestAdicionar_PrecoInvalido(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.Adicionar(context.Background(), "u1", produto("Pistola", "em breve"))
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodePrecoInvalido {
		t.Fatalf("esperava APIError %s, veio %v", model.ErrCodePrecoInvalido, err)
	}
}

// TestAdicionar_MensagemDeConfirmacao devolve o aviso transitório com o
// nome do produto, como o toast do site. As demais operações não o têm.
func TestAdicionar_MensagemDeConfirmacao(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	view, err := svc.Adicionar(ctx, "u1", produto("Pistola Taurus G3C", "R$ 4.599,90"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if view.Mensagem != "Pistola Taurus G3C adicionado ao carrinho!" {
		t.Errorf("Mensagem = %q", view.Mensagem)
	}

	view, err = svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if view.Mensagem != "" {
		t.Errorf("View não deveria trazer mensagem, veio %q", view.Mensagem)
	}
}

// TestDefinirQuantidade_ZeroRemove verifica a equivalência entre zerar
// a quantidade e remover o item.
func TestDefinirQuantidade_ZeroRemove(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	view, err := svc.Adicionar(ctx, "u1", produto("Pistola Taurus G3C", "R$ 4.599,90"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	id := view.Itens[0].ID

	view, err = svc.DefinirQuantidade(ctx, "u1", id, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !view.Vazio || len(view.Itens) != 0 {
		t.Errorf("quantidade zero deveria remover o item: %+v", view)
	}
}

// TestDefinirQuantidade_Ajusta verifica o ajuste direto da quantidade.
func TestDefinirQuantidade_Ajusta(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	view, err := svc.Adicionar(ctx, "u1", produto("Colete Modular", "R$ 899,00"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	id := view.Itens[0].ID

	view, err = svc.DefinirQuantidade(ctx, "u1", id, 5)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if view.Itens[0].Quantidade != 5 {
		t.Errorf("quantidade = %d, esperava 5", view.Itens[0].Quantidade)
	}
	if view.TotalPreco != 4495.00 {
		t.Errorf("TotalPreco = %v, esperava 4495", view.TotalPreco)
	}
}

// TestDefinirQuantidade_IDDesconhecido verifica o no-op para item ausente.
func TestDefinirQuantidade_IDDesconhecido(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	view, err := svc.DefinirQuantidade(context.Background(), "u1", "inexistente", 3)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !view.Vazio {
		t.Errorf("carrinho deveria seguir vazio: %+v", view)
	}
}

// TestRemover verifica a remoção e o no-op para id ausente.
func TestRemover(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	view, err := svc.Adicionar(ctx, "u1", produto("Pistola Taurus G3C", "R$ 4.599,90"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	id := view.Itens[0].ID

	view, err = svc.Remover(ctx, "u1", "outro-id")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(view.Itens) != 1 {
		t.Fatalf("remover id ausente não deveria alterar o carrinho")
	}

	view, err = svc.Remover(ctx, "u1", id)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !view.Vazio {
		t.Errorf("carrinho deveria estar vazio: %+v", view)
	}
}

// TestCheckout_CarrinhoVazio verifica a recusa do checkout vazio.
func TestCheckout_CarrinhoVazio(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.Checkout(context.Background(), "u1")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeCarrinhoVazio {
		t.Fatalf("esperava APIError %s, veio %v", model.ErrCodeCarrinhoVazio, err)
	}
}

// TestCheckout_FechaEEsvazia verifica o link do pedido e o esvaziamento.
func TestCheckout_FechaEEsvazia(t *testing.T) {
	repo := newFakeRepo()
	svc, mensageiro := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Adicionar(ctx, "u1", produto("Pistola Taurus G3C", "R$ 4.599,90")); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, err := svc.Adicionar(ctx, "u1", produto("Colete Modular", "R$ 899,00")); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	resultado, err := svc.Checkout(ctx, "u1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !quaseIgual(resultado.Total, 5498.90) {
		t.Errorf("Total = %v, esperava 5498.90", resultado.Total)
	}
	if resultado.TotalTexto != "R$ 5498.90" {
		t.Errorf("TotalTexto = %q", resultado.TotalTexto)
	}
	if !strings.Contains(resultado.WhatsAppURL, "wa.me") {
		t.Errorf("WhatsAppURL divergente: %q", resultado.WhatsAppURL)
	}
	if !quaseIgual(mensageiro.ultimoTotal, 5498.90) {
		t.Errorf("total repassado ao mensageiro = %v", mensageiro.ultimoTotal)
	}

	view, err := svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !view.Vazio {
		t.Errorf("carrinho deveria estar vazio após o checkout: %+v", view)
	}
}
