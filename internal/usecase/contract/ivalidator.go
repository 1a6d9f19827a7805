package usecasecontract

// Rules is a declarative rule set mapping field names to constraint tags.
// Rule sets are explicit values passed into the validator at call time, so
// callers can be tested in isolation without process-wide schema state.
type Rules map[string]string

// IValidator checks a field set against a rule set. A failed check returns an
// error carrying structured per-field detail; nil means the set passed.
type IValidator interface {
	Validate(values map[string]string, rules Rules) error
}
