package negotiation

import "errors"

var (
	// ErrNilRegistry is returned when a negotiator is created without a registry.
	ErrNilRegistry = errors.New("negotiation: registry is required")

	// ErrNilStore is returned when a negotiator is created without a settings store.
	ErrNilStore = errors.New("negotiation: settings store is required")

	// ErrUnknownType is returned when a method order is saved for a type
	// the registry does not know.
	ErrUnknownType = errors.New("negotiation: unknown language type")

	// ErrStoreUnavailable is returned when the durable settings store
	// cannot be reached.
	ErrStoreUnavailable = errors.New("negotiation: settings store unavailable")

	// ErrCorruptSettings is returned when stored settings cannot be decoded.
	ErrCorruptSettings = errors.New("negotiation: stored settings are corrupt")

	// ErrInvalidConfig is returned when the environment configuration
	// cannot be parsed.
	ErrInvalidConfig = errors.New("negotiation: invalid configuration")
)
