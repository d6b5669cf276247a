package ibctesting

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

const (
	// Bech32Prefix is the account address prefix of every test chain
	Bech32Prefix = "cosmos"

	// ChannelIDPrefix prefixes the channel identifiers generated by a test chain
	ChannelIDPrefix = "channel-"

	// FirstConnectionID is the connection every test channel is opened on
	FirstConnectionID = "connection-0"

	DefaultChannelVersion = types.Version
)

// ChannelConfig holds the handshake parameters an endpoint proposes.
type ChannelConfig struct {
	Version string
	Order   wasmvmtypes.IBCOrder
}

// NewChannelConfig returns the channel parameters accepted by the ledger.
func NewChannelConfig() *ChannelConfig {
	return &ChannelConfig{
		Version: DefaultChannelVersion,
		Order:   types.Ordering,
	}
}
