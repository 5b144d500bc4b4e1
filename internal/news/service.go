package news

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/sportgun/loja/internal/model"
)

// maxCards é o tamanho da grade de notícias.
const maxCards = 3

// descricaoMax é o limite de caracteres da descrição de um card.
const descricaoMax = 200

// Sanitizer limpa o HTML dos feeds antes da renderização.
type Sanitizer interface {
	StripText(rawHTML string) string
}

// Medidor registra as métricas do pipeline de notícias.
type Medidor interface {
	FonteBuscada(fonte string, sucesso bool)
	FallbackServido()
}

// Service executa o pipeline de notícias de ponta a ponta.
// Falha de uma fonte nunca derruba o pipeline: as demais seguem e, se
// nada sobrar, a grade recebe os artigos padrão.
type Service struct {
	fetcher       Fetcher
	sanitizer     Sanitizer
	logger        *slog.Logger
	medidor       Medidor
	fontes        []model.FonteNoticia
	itensPorFonte int
	filtroAtivo   bool
	siteOrigin    string
}

// NewService cria o Service do pipeline de notícias.
func NewService(
	fetcher Fetcher,
	sanitizer Sanitizer,
	logger *slog.Logger,
	medidor Medidor,
	fontes []model.FonteNoticia,
	itensPorFonte int,
	filtroAtivo bool,
	siteOrigin string,
) *Service {
	return &Service{
		fetcher:       fetcher,
		sanitizer:     sanitizer,
		logger:        logger,
		medidor:       medidor,
		fontes:        fontes,
		itensPorFonte: itensPorFonte,
		filtroAtivo:   filtroAtivo,
		siteOrigin:    siteOrigin,
	}
}

// BuscarCards monta a grade de notícias: busca todas as fontes, normaliza,
// filtra, ordena do mais recente para o mais antigo e corta nos três
// primeiros. Nunca retorna erro nem grade vazia.
func (s *Service) BuscarCards(ctx context.Context) []model.NoticiaCard {
	var artigos []model.Noticia

	for _, fonte := range s.fontes {
		itens, err := s.fetcher.FetchFeed(ctx, fonte.URL, s.itensPorFonte)
		if err != nil {
			s.logger.Warn("falha ao buscar a fonte de notícias",
				slog.String("fonte", fonte.Nome),
				slog.String("feed_url", fonte.URL),
				slog.String("error", err.Error()),
			)
			if s.medidor != nil {
				s.medidor.FonteBuscada(fonte.Nome, false)
			}
			continue
		}
		if s.medidor != nil {
			s.medidor.FonteBuscada(fonte.Nome, true)
		}

		for _, item := range itens {
			artigo := s.normalizar(item, fonte.Nome)
			if s.filtroAtivo && !passaFiltro(artigo.Titulo, artigo.Descricao) {
				continue
			}
			artigos = append(artigos, artigo)
		}
	}

	if len(artigos) == 0 {
		s.logger.Info("nenhuma fonte retornou artigos, servindo a grade padrão")
		if s.medidor != nil {
			s.medidor.FallbackServido()
		}
		return CardsPadrao()
	}

	// Mais recentes primeiro; artigos sem data vão para o fim.
	sort.SliceStable(artigos, func(i, j int) bool {
		return artigos[i].PublicadaEm.After(artigos[j].PublicadaEm)
	})
	if len(artigos) > maxCards {
		artigos = artigos[:maxCards]
	}

	cards := make([]model.NoticiaCard, 0, len(artigos))
	for _, artigo := range artigos {
		cards = append(cards, renderizarCard(artigo))
	}
	return cards
}

// normalizar converte um item cru em artigo pronto para a grade.
func (s *Service) normalizar(item model.ItemFeedBruto, fonteNome string) model.Noticia {
	descricaoCrua := item.Descricao
	if descricaoCrua == "" {
		descricaoCrua = item.Conteudo
	}
	descricao := truncar(s.sanitizer.StripText(descricaoCrua), descricaoMax) + "..."

	// GUID tem prioridade sobre o link; quando são iguais tanto faz.
	urlArtigo := item.GUID
	if urlArtigo == "" {
		urlArtigo = item.Link
	}
	urlArtigo = completarURL(urlArtigo, s.siteOrigin)

	artigo := model.Noticia{
		Titulo:    s.sanitizer.StripText(item.Titulo),
		Descricao: descricao,
		URL:       urlArtigo,
		ImagemURL: resolverImagem(item),
		Fonte:     fonteNome,
	}
	if item.PublicadaEm != nil {
		artigo.PublicadaEm = *item.PublicadaEm
	}
	return artigo
}

// truncar corta o texto no limite de caracteres e apara os espaços.
func truncar(texto string, limite int) string {
	runas := []rune(texto)
	if len(runas) > limite {
		runas = runas[:limite]
	}
	return strings.TrimSpace(string(runas))
}
