package uuidgen

import (
	"github.com/google/uuid"

	"github.com/nandomoreu/mercadillo/internal/domain/contract"
)

// Generator implements the contract.IUUIDGenerator interface.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

var _ contract.IUUIDGenerator = (*Generator)(nil)

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}
