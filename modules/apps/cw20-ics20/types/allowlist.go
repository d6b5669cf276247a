package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
)

// AllowedInfo permits a cw20 contract to be forwarded over ics20 channels.
// GasLimit optionally caps the gas granted to the token transfer call.
type AllowedInfo struct {
	Contract string  `json:"contract" toml:"contract"`
	GasLimit *uint64 `json:"gas_limit,omitempty" toml:"gas_limit,omitempty"`
}

// NewAllowedInfo creates a new AllowedInfo instance
func NewAllowedInfo(contract string, gasLimit *uint64) AllowedInfo {
	return AllowedInfo{
		Contract: contract,
		GasLimit: gasLimit,
	}
}

// Validate performs a basic validation of the entry. The contract address is
// validated against the host address codec when the entry is stored.
func (ai AllowedInfo) Validate() error {
	if strings.TrimSpace(ai.Contract) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "allowed contract address cannot be blank")
	}
	if ai.GasLimit != nil && *ai.GasLimit == 0 {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "gas limit for %s must be positive when set", ai.Contract)
	}
	return nil
}

// AllowedResponse is the query result for a single contract.
type AllowedResponse struct {
	IsAllowed bool    `json:"is_allowed"`
	GasLimit  *uint64 `json:"gas_limit,omitempty"`
}
