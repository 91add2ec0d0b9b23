package rules

// Messages attached by the rule helpers, exported so callers can match on
// them in tests and error-rendering layers.
const (
	FieldIsRequired    = "This field is required."
	AnyFieldIsRequired = "At least one of these fields is required."
	FieldMustBeUnset   = "This field must be empty."
	DateInFuture       = "This date may not be in the future."
)
