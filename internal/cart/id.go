package cart

import "encoding/base64"

// GerarIDProduto deriva o identificador do item do nome do produto:
// base64 padrão truncado em 10 caracteres. Nomes com o mesmo prefixo
// longo podem colidir; o comportamento é o mesmo do site e carrinhos
// gravados dependem dele.
func GerarIDProduto(nome string) string {
	id := base64.StdEncoding.EncodeToString([]byte(nome))
	if len(id) > 10 {
		id = id[:10]
	}
	return id
}
