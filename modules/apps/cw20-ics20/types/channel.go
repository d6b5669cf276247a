package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	host "github.com/cosmos/ics20-ledger/modules/core/24-host"
)

// ChannelInfo is the metadata recorded when a channel is connected. It is
// immutable once stored.
type ChannelInfo struct {
	// id of this channel
	ID string `json:"id"`
	// the remote channel/port we connect to
	CounterpartyEndpoint wasmvmtypes.IBCEndpoint `json:"counterparty_endpoint"`
	// the connection this exists on (you can use to query client/consensus info)
	ConnectionID string `json:"connection_id"`
}

// NewChannelInfo builds the ChannelInfo of a connected channel.
func NewChannelInfo(channel wasmvmtypes.IBCChannel) ChannelInfo {
	return ChannelInfo{
		ID:                   channel.Endpoint.ChannelID,
		CounterpartyEndpoint: channel.CounterpartyEndpoint,
		ConnectionID:         channel.ConnectionID,
	}
}

// Validate performs a basic validation of the channel identifiers.
func (ci ChannelInfo) Validate() error {
	if err := host.ChannelIdentifierValidator(ci.ID); err != nil {
		return errorsmod.Wrap(err, "invalid channel id")
	}
	if err := host.EndpointValidator(ci.CounterpartyEndpoint.PortID, ci.CounterpartyEndpoint.ChannelID); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty endpoint")
	}
	if err := host.ConnectionIdentifierValidator(ci.ConnectionID); err != nil {
		return errorsmod.Wrap(err, "invalid connection id")
	}
	return nil
}

// ChannelState is the ledger entry of a single (channel, denom) pair.
type ChannelState struct {
	// amount sent out over the channel that has not been redeemed yet
	Outstanding sdkmath.Uint `json:"outstanding"`
	// lifetime amount successfully sent out over the channel
	TotalSent sdkmath.Uint `json:"total_sent"`
}

// NewChannelState returns an empty ledger entry.
func NewChannelState() ChannelState {
	return ChannelState{
		Outstanding: sdkmath.ZeroUint(),
		TotalSent:   sdkmath.ZeroUint(),
	}
}

// ChannelResponse is the read-only projection of a channel and its balances.
type ChannelResponse struct {
	// Information on the channel's connection
	Info ChannelInfo `json:"info"`
	// How many tokens we currently have pending over this channel
	Balances []Amount `json:"balances"`
	// The total number of tokens that have been sent over this channel
	// (even if many have been returned, so balance is low)
	TotalSent []Amount `json:"total_sent"`
}

// EnforceOrderAndVersion checks the handshake preconditions of a channel. The
// counterparty version is only checked when it is known.
func EnforceOrderAndVersion(channel wasmvmtypes.IBCChannel, counterpartyVersion string, hasCounterpartyVersion bool) error {
	if channel.Version != Version {
		return errorsmod.Wrapf(ErrInvalidVersion, "expected %s, got %s", Version, channel.Version)
	}
	if hasCounterpartyVersion && counterpartyVersion != Version {
		return errorsmod.Wrapf(ErrInvalidVersion, "invalid counterparty version: expected %s, got %s", Version, counterpartyVersion)
	}
	if channel.Order != Ordering {
		return errorsmod.Wrapf(ErrOnlyUnorderedChannel, "expected %s channel, got %s", Ordering, channel.Order)
	}
	return nil
}
