package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	referenceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	ReferenceIDSize   = 16
)

// GenerateReferenceID gera um id curto para correlacionar chamadas externas nos logs
func GenerateReferenceID() (string, error) {
	return gonanoid.Generate(referenceAlphabet, ReferenceIDSize)
}
