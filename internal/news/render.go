package news

import (
	"fmt"
	"time"

	"github.com/sportgun/loja/internal/model"
)

// mesesPtBR são os nomes dos meses usados na data dos cards.
var mesesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// formatarData formata a data no padrão da grade ("01 de novembro de 2025").
// Data zerada vira vazio.
func formatarData(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), mesesPtBR[t.Month()-1], t.Year())
}

// renderizarCard converte um artigo normalizado no card da grade.
// Artigo sem imagem resolvida recebe o placeholder.
func renderizarCard(n model.Noticia) model.NoticiaCard {
	imagem := n.ImagemURL
	if imagem == "" {
		imagem = placeholderImagem
	}
	return model.NoticiaCard{
		Titulo:        n.Titulo,
		Descricao:     n.Descricao,
		URL:           n.URL,
		ImagemURL:     imagem,
		ImagemReserva: placeholderImagem,
		Data:          formatarData(n.PublicadaEm),
		Fonte:         n.Fonte,
	}
}
