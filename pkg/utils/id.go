package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	runIDLength   = 12
)

// GenerateID gera o identificador curto de uma execução do relatório
func GenerateID() (string, error) {
	return gonanoid.Generate(runIDAlphabet, runIDLength)
}
