package types

import (
	"cosmossdk.io/collections"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

const (
	// ModuleName defines the cw20-ics20 application name
	ModuleName = "cw20-ics20"

	// StoreKey is the store key string for the cw20-ics20 application
	StoreKey = ModuleName

	// Cw20DenomPrefix marks a local denomination as a cw20 contract token.
	// The remainder of the denomination is the token contract address.
	Cw20DenomPrefix = "cw20:"

	// TimeoutError is the error recorded when a sent packet times out
	TimeoutError = "timeout"
)

const (
	// Version defines the only ICS20 version accepted on a channel
	Version = "ics20-1"

	// Ordering defines the only channel ordering accepted on a channel
	Ordering = wasmvmtypes.Unordered

	// SendTokenReplyID is the correlation id set on every dispatched payment.
	// Replies are only requested on failure.
	SendTokenReplyID uint64 = 1337
)

var (
	// ChannelInfoKey is the prefix under which channel metadata is stored
	ChannelInfoKey = collections.NewPrefix(0)
	// ChannelStateKey is the prefix under which (channel, denom) balances are stored
	ChannelStateKey = collections.NewPrefix(1)
	// AllowListKey is the prefix under which allowed cw20 contracts are stored
	AllowListKey = collections.NewPrefix(2)
)
