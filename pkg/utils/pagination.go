package utils

import (
	"math"
	"strings"
)

// ItemsPerPage é o tamanho fixo de página das listagens
const ItemsPerPage = 6

// PageOffset calcula o OFFSET da página informada. Páginas menores que 1 são tratadas como 1
// e o resultado satura em math.MaxInt64, maior valor aceito pelos bancos.
func PageOffset(page int) uint64 {
	if page < 1 {
		page = 1
	}
	if uint64(page-1) > math.MaxInt64/ItemsPerPage {
		return math.MaxInt64
	}
	return uint64(page-1) * ItemsPerPage
}

// TotalPages arredonda para cima a quantidade de páginas
func TotalPages(count int64) int {
	if count <= 0 {
		return 0
	}
	return int((count + ItemsPerPage - 1) / ItemsPerPage)
}

// SearchPattern monta o padrão LIKE usado nas buscas
func SearchPattern(query string) string {
	return "%" + strings.ToUpper(query) + "%"
}
