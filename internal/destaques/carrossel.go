// Package destaques implementa o carrossel de destaques da página
// inicial: rotação circular dos slides, avanço automático a cada cinco
// segundos e pausa/retomada, como o comportamento de hover do site.
package destaques

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sportgun/loja/internal/model"
)

// intervaloPadrao é o intervalo do avanço automático.
const intervaloPadrao = 5 * time.Second

// Slide é um destaque do carrossel.
type Slide struct {
	Titulo    string `json:"titulo"`
	Subtitulo string `json:"subtitulo"`
	ImagemURL string `json:"imagem_url"`
}

// Estado é a visão corrente do carrossel.
type Estado struct {
	Slides   []Slide `json:"slides"`
	Atual    int     `json:"atual"`
	Autoplay bool    `json:"autoplay"`
}

// SlidesPadrao são os destaques fixos da vitrine.
func SlidesPadrao() []Slide {
	return []Slide{
		{
			Titulo:    "Pistolas Importadas",
			Subtitulo: "As principais marcas com pronta entrega",
			ImagemURL: "/assets/carousel/pistolas.jpg",
		},
		{
			Titulo:    "Linha CAC Completa",
			Subtitulo: "Carabinas, munições e acessórios para o atirador",
			ImagemURL: "/assets/carousel/carabinas.jpg",
		},
		{
			Titulo:    "Equipamentos Táticos",
			Subtitulo: "Coletes, coldres e óptica profissional",
			ImagemURL: "/assets/carousel/equipamentos.jpg",
		},
	}
}

// Carrossel guarda o estado de rotação dos destaques. Seguro para uso
// concorrente; o avanço automático roda em Executar.
type Carrossel struct {
	mu        sync.Mutex
	slides    []Slide
	atual     int
	autoplay  bool
	intervalo time.Duration
	logger    *slog.Logger
}

// NewCarrossel cria o carrossel com o avanço automático ativo.
// Sem slides, usa os padrão.
func NewCarrossel(slides []Slide, logger *slog.Logger) *Carrossel {
	if len(slides) == 0 {
		slides = SlidesPadrao()
	}
	return &Carrossel{
		slides:    slides,
		autoplay:  true,
		intervalo: intervaloPadrao,
		logger:    logger,
	}
}

// Estado devolve a visão corrente.
func (c *Carrossel) Estado() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estadoLocked()
}

// Proximo avança um slide, com volta ao início após o último.
func (c *Carrossel) Proximo() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.atual = (c.atual + 1) % len(c.slides)
	return c.estadoLocked()
}

// Anterior recua um slide, com volta ao último antes do primeiro.
func (c *Carrossel) Anterior() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.atual = (c.atual - 1 + len(c.slides)) % len(c.slides)
	return c.estadoLocked()
}

// IrPara posiciona o carrossel no slide do índice informado.
func (c *Carrossel) IrPara(indice int) (Estado, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if indice < 0 || indice >= len(c.slides) {
		return Estado{}, model.NewRequisicaoInvalidaError()
	}
	c.atual = indice
	return c.estadoLocked(), nil
}

// Pausar suspende o avanço automático.
func (c *Carrossel) Pausar() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoplay = false
	return c.estadoLocked()
}

// Retomar religa o avanço automático.
func (c *Carrossel) Retomar() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoplay = true
	return c.estadoLocked()
}

// Executar roda o avanço automático até o contexto ser cancelado.
// Com o autoplay pausado o tique passa em branco.
func (c *Carrossel) Executar(ctx context.Context) {
	ticker := time.NewTicker(c.intervalo)
	defer ticker.Stop()

	c.logger.Info("carrossel de destaques iniciado",
		slog.Duration("intervalo", c.intervalo),
		slog.Int("slides", len(c.slides)),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("carrossel de destaques parado")
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.autoplay {
				c.atual = (c.atual + 1) % len(c.slides)
			}
			c.mu.Unlock()
		}
	}
}

// estadoLocked monta o Estado; o chamador segura o mutex.
func (c *Carrossel) estadoLocked() Estado {
	slides := make([]Slide, len(c.slides))
	copy(slides, c.slides)
	return Estado{
		Slides:   slides,
		Atual:    c.atual,
		Autoplay: c.autoplay,
	}
}
