package ibctesting

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// NewAddress returns a deterministic bech32 account address derived from seed.
func NewAddress(seed string) string {
	return sdk.MustBech32ifyAddressBytes(Bech32Prefix, address.Module(seed))
}

// ContractPortID returns the IBC port bound to a contract.
func ContractPortID(contract string) string {
	return "wasm." + contract
}
