package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const idLength = 6

// GenerateID devolve um identificador curto alfanumérico, usado para
// correlacionar execuções de exportação
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
