package host

import (
	"regexp"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// DefaultMaxCharacterLength defines the default maximum character length used
// in validation of identifiers including the connection and channel identifiers.
const DefaultMaxCharacterLength = 64

// DefaultMaxPortCharacterLength defines the default maximum character length used
// in validation of port identifiers. Contract ports embed a bech32 address and
// need the extra room.
const DefaultMaxPortCharacterLength = 128

// IsValidID defines regular expression to check if the string consist of
// characters in one of the following categories only:
// - Alphanumeric
// - `.`, `_`, `+`, `-`, `#`
// - `[`, `]`, `<`, `>`
var IsValidID = regexp.MustCompile(`^[a-zA-Z0-9\.\_\+\-\#\[\]\<\>]+$`).MatchString

// ValidateFn function type to validate path and identifier bytestrings
type ValidateFn func(string) error

func defaultIdentifierValidator(id string, min, max int) error {
	if strings.TrimSpace(id) == "" {
		return errorsmod.Wrap(ErrInvalidID, "identifier cannot be blank")
	}
	// valid id MUST NOT contain "/" separator
	if strings.Contains(id, "/") {
		return errorsmod.Wrapf(ErrInvalidID, "identifier %s cannot contain separator '/'", id)
	}
	// valid id must fit the length requirements
	if len(id) < min || len(id) > max {
		return errorsmod.Wrapf(ErrInvalidID, "identifier %s has invalid length: %d, must be between %d-%d characters", id, len(id), min, max)
	}
	if !IsValidID(id) {
		return errorsmod.Wrapf(
			ErrInvalidID,
			"identifier %s must contain only alphanumeric or the following characters: '.', '_', '+', '-', '#', '[', ']', '<', '>'",
			id,
		)
	}
	return nil
}

// ConnectionIdentifierValidator performs a default validation for connection
// identifiers. A valid identifier must be between 10 and 64 characters and only
// contain alphanumeric and some allowed special characters (see IsValidID).
func ConnectionIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id, 10, DefaultMaxCharacterLength)
}

// ChannelIdentifierValidator performs a default validation for channel
// identifiers. A valid identifier must be between 8 and 64 characters and only
// contain alphanumeric and some allowed special characters (see IsValidID).
func ChannelIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id, 8, DefaultMaxCharacterLength)
}

// PortIdentifierValidator performs a default validation for port identifiers.
// A valid identifier must be between 2 and 128 characters and only contain
// alphanumeric and some allowed special characters (see IsValidID).
func PortIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id, 2, DefaultMaxPortCharacterLength)
}

// EndpointValidator validates both halves of a port/channel endpoint.
func EndpointValidator(portID, channelID string) error {
	if err := PortIdentifierValidator(portID); err != nil {
		return errorsmod.Wrap(err, "invalid port")
	}
	if err := ChannelIdentifierValidator(channelID); err != nil {
		return errorsmod.Wrap(err, "invalid channel")
	}
	return nil
}
