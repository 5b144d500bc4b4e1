package news

import "github.com/sportgun/loja/internal/model"

// placeholderImagem é a imagem de reserva dos cards sem imagem resolvida.
const placeholderImagem = "https://via.placeholder.com/400x250/1F1F1F/DC2626?text=InfoArmas"

// CardsPadrao devolve os três artigos fixos exibidos quando nenhuma
// fonte retorna itens. O conteúdo é o mesmo da grade estática do site;
// o cache de cards também parte deles, para a grade nunca sair vazia.
func CardsPadrao() []model.NoticiaCard {
	return []model.NoticiaCard{
		{
			Titulo:        "Crescimento do CAC no Brasil Bate Recorde em 2025",
			Descricao:     "O número de Caçadores, Atiradores e Colecionadores (CAC) no Brasil continua crescendo, refletindo o aumento do interesse por tiro esportivo e colecionismo de armas...",
			URL:           "https://infoarmas.com.br",
			ImagemURL:     "https://via.placeholder.com/400x250/1F1F1F/DC2626?text=InfoArmas",
			ImagemReserva: placeholderImagem,
			Data:          "01 de novembro de 2025",
			Fonte:         "InfoArmas",
		},
		{
			Titulo:        "Novas Modalidades de Tiro Esportivo Ganham Destaque",
			Descricao:     "IPSC, IDPA e Steel Challenge são algumas das modalidades que vêm conquistando cada vez mais adeptos nos clubes de tiro brasileiros, promovendo competições oficiais...",
			URL:           "https://infoarmas.com.br",
			ImagemURL:     "https://via.placeholder.com/400x250/1F1F1F/DC2626?text=Tiro+Esportivo",
			ImagemReserva: placeholderImagem,
			Data:          "30 de outubro de 2025",
			Fonte:         "InfoArmas",
		},
		{
			Titulo:        "Exército Atualiza Normas para Registro de Armas CAC",
			Descricao:     "Novas diretrizes do Comando Logístico do Exército trazem mudanças importantes para o registro e renovação de CR (Certificado de Registro) para atiradores...",
			URL:           "https://infoarmas.com.br",
			ImagemURL:     "https://via.placeholder.com/400x250/1F1F1F/DC2626?text=Legisla%C3%A7%C3%A3o",
			ImagemReserva: placeholderImagem,
			Data:          "28 de outubro de 2025",
			Fonte:         "InfoArmas",
		},
	}
}
