package contract

// IUUIDGenerator produces unique identifiers for verification-code documents.
type IUUIDGenerator interface {
	NewUUID() string
}
