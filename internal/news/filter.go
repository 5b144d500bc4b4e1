package news

import "strings"

// palavrasChave são os termos do universo CAC que mantêm um artigo na
// grade quando o filtro temático está ativo. A comparação é feita em
// minúsculas, com as variantes sem acento incluídas na lista.
var palavrasChave = []string{
	"arma", "pistola", "revólver", "revolver", "fuzil", "carabina",
	"espingarda", "munição", "municao", "calibre", "cac",
	"caçador", "cacador", "atirador", "colecionador",
	"tiro esportivo", "clube de tiro", "tiro desportivo",
	"ipsc", "idpa", "steel challenge",
	"exército", "exercito", "craf", "certificado de registro",
	"airsoft", "caça", "caca", "armamento", "balística", "balistica",
}

// passaFiltro informa se o artigo pertence ao universo temático da loja.
// Título e descrição são considerados.
func passaFiltro(titulo, descricao string) bool {
	texto := strings.ToLower(titulo + " " + descricao)
	for _, palavra := range palavrasChave {
		if strings.Contains(texto, palavra) {
			return true
		}
	}
	return false
}
