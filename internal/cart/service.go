package cart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sportgun/loja/internal/model"
	"github.com/sportgun/loja/internal/repository"
)

// Mensageiro monta o link de WhatsApp do resumo do pedido no checkout.
type Mensageiro interface {
	LinkPedido(itens []model.ItemCarrinho, total float64, agora time.Time) string
}

// Medidor registra as métricas das operações do carrinho.
type Medidor interface {
	OperacaoCarrinho(op string)
}

// Service implementa as operações do carrinho. A sequência inteira é
// carregada, alterada e regravada a cada mutação, como o site fazia com
// o localStorage.
type Service struct {
	repo       repository.CarrinhoRepository
	mensageiro Mensageiro
	logger     *slog.Logger
	medidor    Medidor
	agora      func() time.Time
}

// NewService cria o Service do carrinho.
func NewService(repo repository.CarrinhoRepository, mensageiro Mensageiro, logger *slog.Logger, medidor Medidor) *Service {
	return &Service{
		repo:       repo,
		mensageiro: mensageiro,
		logger:     logger,
		medidor:    medidor,
		agora:      time.Now,
	}
}

// Adicionar acrescenta o produto ao carrinho. Produto com identificador
// já presente tem a quantidade incrementada; novo entra com quantidade 1.
func (s *Service) Adicionar(ctx context.Context, usuarioID string, produto model.ProdutoDescritor) (model.CarrinhoView, error) {
	if produto.Nome == "" {
		return model.CarrinhoView{}, model.NewCampoObrigatorioError("nome")
	}

	preco, err := ParsePreco(produto.PrecoTexto)
	if err != nil {
		return model.CarrinhoView{}, model.NewPrecoInvalidoError(produto.PrecoTexto)
	}

	itens, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return model.CarrinhoView{}, err
	}

	id := GerarIDProduto(produto.Nome)
	achou := false
	for i := range itens {
		if itens[i].ID == id {
			itens[i].Quantidade++
			achou = true
			break
		}
	}
	if !achou {
		itens = append(itens, model.ItemCarrinho{
			ID:         id,
			Nome:       produto.Nome,
			Preco:      preco,
			Imagem:     produto.Imagem,
			Quantidade: 1,
		})
	}

	if err := s.repo.Save(ctx, usuarioID, itens); err != nil {
		return model.CarrinhoView{}, err
	}

	s.logger.Info("produto adicionado ao carrinho",
		slog.String("usuario_id", usuarioID),
		slog.String("produto_id", id),
		slog.Bool("incremento", achou),
	)
	if s.medidor != nil {
		s.medidor.OperacaoCarrinho("adicionar")
	}

	view := montarView(itens)
	view.Mensagem = produto.Nome + " adicionado ao carrinho!"
	return view, nil
}

// Remover retira o item do carrinho. Identificador ausente é no-op.
func (s *Service) Remover(ctx context.Context, usuarioID, produtoID string) (model.CarrinhoView, error) {
	itens, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return model.CarrinhoView{}, err
	}

	restantes := itens[:0]
	for _, item := range itens {
		if item.ID != produtoID {
			restantes = append(restantes, item)
		}
	}

	if err := s.repo.Save(ctx, usuarioID, restantes); err != nil {
		return model.CarrinhoView{}, err
	}
	if s.medidor != nil {
		s.medidor.OperacaoCarrinho("remover")
	}

	return montarView(restantes), nil
}

// DefinirQuantidade ajusta a quantidade de um item. Quantidade zero ou
// negativa equivale a remover. Identificador ausente é no-op.
func (s *Service) DefinirQuantidade(ctx context.Context, usuarioID, produtoID string, quantidade int) (model.CarrinhoView, error) {
	if quantidade <= 0 {
		return s.Remover(ctx, usuarioID, produtoID)
	}

	itens, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return model.CarrinhoView{}, err
	}

	for i := range itens {
		if itens[i].ID == produtoID {
			itens[i].Quantidade = quantidade
			if err := s.repo.Save(ctx, usuarioID, itens); err != nil {
				return model.CarrinhoView{}, err
			}
			if s.medidor != nil {
				s.medidor.OperacaoCarrinho("quantidade")
			}
			break
		}
	}

	return montarView(itens), nil
}

// View monta a visão corrente do carrinho, com totais derivados.
func (s *Service) View(ctx context.Context, usuarioID string) (model.CarrinhoView, error) {
	itens, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return model.CarrinhoView{}, err
	}
	return montarView(itens), nil
}

// ResultadoCheckout é o desfecho do fechamento do pedido.
type ResultadoCheckout struct {
	Total       float64 `json:"total"`
	TotalTexto  string  `json:"total_texto"`
	WhatsAppURL string  `json:"whatsapp_url"`
}

// Checkout fecha o pedido: valida que o carrinho não está vazio, monta
// o link de WhatsApp com o resumo e esvazia o carrinho.
func (s *Service) Checkout(ctx context.Context, usuarioID string) (ResultadoCheckout, error) {
	itens, err := s.repo.Load(ctx, usuarioID)
	if err != nil {
		return ResultadoCheckout{}, err
	}
	if len(itens) == 0 {
		return ResultadoCheckout{}, model.NewCarrinhoVazioError()
	}

	total := totalPreco(itens)
	resultado := ResultadoCheckout{
		Total:       total,
		TotalTexto:  FormatarPreco(total),
		WhatsAppURL: s.mensageiro.LinkPedido(itens, total, s.agora()),
	}

	if err := s.repo.Save(ctx, usuarioID, nil); err != nil {
		return ResultadoCheckout{}, fmt.Errorf("falha ao esvaziar o carrinho: %w", err)
	}

	s.logger.Info("pedido fechado",
		slog.String("usuario_id", usuarioID),
		slog.Int("itens", len(itens)),
		slog.Float64("total", total),
	)
	if s.medidor != nil {
		s.medidor.OperacaoCarrinho("checkout")
	}

	return resultado, nil
}

// totalItens soma as quantidades de todos os itens.
func totalItens(itens []model.ItemCarrinho) int {
	total := 0
	for _, item := range itens {
		total += item.Quantidade
	}
	return total
}

// totalPreco soma preço vezes quantidade de todos os itens.
func totalPreco(itens []model.ItemCarrinho) float64 {
	total := 0.0
	for _, item := range itens {
		total += item.Preco * float64(item.Quantidade)
	}
	return total
}

// montarView deriva a visão do carrinho da sequência de itens.
func montarView(itens []model.ItemCarrinho) model.CarrinhoView {
	view := model.CarrinhoView{
		Vazio:      len(itens) == 0,
		Itens:      make([]model.ItemCarrinhoView, 0, len(itens)),
		TotalItens: totalItens(itens),
		TotalPreco: totalPreco(itens),
	}
	for _, item := range itens {
		view.Itens = append(view.Itens, model.ItemCarrinhoView{
			ID:             item.ID,
			Nome:           item.Nome,
			Preco:          item.Preco,
			PrecoFormatado: FormatarPreco(item.Preco),
			Imagem:         item.Imagem,
			Quantidade:     item.Quantidade,
		})
	}
	return view
}
