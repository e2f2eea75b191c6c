package utils

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteIndentedJSON escreve o valor como JSON indentado com tabulação
func WriteIndentedJSON(w io.Writer, in any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "\t")
	return encoder.Encode(in)
}
