package contract

// ICodeGenerator produces opaque random tokens of a fixed length.
type ICodeGenerator interface {
	GenerateCode(length int) (string, error)
}
