package types

import (
	"strings"

	sdkmath "cosmossdk.io/math"
)

// NativeCoin is an amount of a native bank denomination.
type NativeCoin struct {
	Denom  string       `json:"denom"`
	Amount sdkmath.Uint `json:"amount"`
}

// Cw20Coin is an amount of a cw20 token, identified by its contract address.
type Cw20Coin struct {
	Address string       `json:"address"`
	Amount  sdkmath.Uint `json:"amount"`
}

// Amount is either a native coin or a cw20 token amount. Exactly one of the
// fields is set.
type Amount struct {
	Native *NativeCoin `json:"native,omitempty"`
	Cw20   *Cw20Coin   `json:"cw20,omitempty"`
}

// NewNativeAmount returns an Amount holding a native coin.
func NewNativeAmount(denom string, amount sdkmath.Uint) Amount {
	return Amount{Native: &NativeCoin{Denom: denom, Amount: amount}}
}

// NewCw20Amount returns an Amount holding cw20 tokens of the given contract.
func NewCw20Amount(address string, amount sdkmath.Uint) Amount {
	return Amount{Cw20: &Cw20Coin{Address: address, Amount: amount}}
}

// AmountFromParts interprets a local denomination. Denominations prefixed with
// "cw20:" refer to a cw20 contract, everything else is a native denomination.
func AmountFromParts(denom string, amount sdkmath.Uint) Amount {
	if address, found := strings.CutPrefix(denom, Cw20DenomPrefix); found {
		return NewCw20Amount(address, amount)
	}
	return NewNativeAmount(denom, amount)
}

// Denom returns the local denomination of the amount, the inverse of AmountFromParts.
func (a Amount) Denom() string {
	switch {
	case a.Cw20 != nil:
		return Cw20DenomPrefix + a.Cw20.Address
	case a.Native != nil:
		return a.Native.Denom
	default:
		return ""
	}
}

// GetAmount returns the number of units held.
func (a Amount) GetAmount() sdkmath.Uint {
	switch {
	case a.Cw20 != nil:
		return a.Cw20.Amount
	case a.Native != nil:
		return a.Native.Amount
	default:
		return sdkmath.ZeroUint()
	}
}

// IsEmpty returns true when no units are held.
func (a Amount) IsEmpty() bool {
	return a.GetAmount().IsZero()
}

// String implements fmt.Stringer
func (a Amount) String() string {
	return a.GetAmount().String() + a.Denom()
}
