package randomgenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/nandomoreu/mercadillo/internal/domain/contract"
)

// CodeGenerator produces hex-encoded random codes of an exact length.
type CodeGenerator struct{}

func NewCodeGenerator() contract.ICodeGenerator {
	return &CodeGenerator{}
}

var _ contract.ICodeGenerator = (*CodeGenerator)(nil)

func (cg *CodeGenerator) GenerateCode(length int) (string, error) {
	b := make([]byte, (length+1)/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return hex.EncodeToString(b)[:length], nil
}
