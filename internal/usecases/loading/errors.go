package loading

import "errors"

var (
	// ErrEmptyFile é retornado quando a exportação não tem nenhum conteúdo
	ErrEmptyFile = errors.New("arquivo de vendas vazio")

	// ErrMissingHeader é retornado quando a exportação não tem linha de cabeçalho
	ErrMissingHeader = errors.New("arquivo de vendas sem cabeçalho")

	// ErrMissingColumn é retornado quando falta uma coluna obrigatória no cabeçalho
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
)
