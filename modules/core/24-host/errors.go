package host

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the host sub-module name
const SubModuleName = "ics20host"

// Host sentinel errors
var (
	ErrInvalidID = errorsmod.Register(SubModuleName, 2, "invalid identifier")
)
