package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// GetChannelInfo returns the metadata of a connected channel.
func (k Keeper) GetChannelInfo(ctx context.Context, channelID string) (types.ChannelInfo, bool) {
	info, err := k.ChannelInfos.Get(ctx, channelID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ChannelInfo{}, false
		}
		panic(err)
	}

	return info, true
}

// HasChannel returns true if the channel has been connected.
func (k Keeper) HasChannel(ctx context.Context, channelID string) bool {
	has, err := k.ChannelInfos.Has(ctx, channelID)
	if err != nil {
		panic(err)
	}
	return has
}

// SetChannelInfo stores the metadata of a connected channel.
func (k Keeper) SetChannelInfo(ctx context.Context, info types.ChannelInfo) error {
	return k.ChannelInfos.Set(ctx, info.ID, info)
}

// IterateChannelInfos iterates over all connected channels in channel id order.
func (k Keeper) IterateChannelInfos(ctx context.Context, cb func(info types.ChannelInfo) bool) error {
	return k.ChannelInfos.Walk(ctx, nil, func(_ string, info types.ChannelInfo) (bool, error) {
		return cb(info), nil
	})
}

// ConnectChannel registers a channel whose handshake completed. The recorded
// metadata never changes afterwards, so a channel can only be connected once.
func (k Keeper) ConnectChannel(ctx context.Context, channel wasmvmtypes.IBCChannel) (types.ChannelInfo, error) {
	info := types.NewChannelInfo(channel)
	if err := info.Validate(); err != nil {
		return types.ChannelInfo{}, err
	}

	if k.HasChannel(ctx, info.ID) {
		return types.ChannelInfo{}, errorsmod.Wrapf(types.ErrChannelAlreadyExists, "channel %s", info.ID)
	}

	if err := k.SetChannelInfo(ctx, info); err != nil {
		return types.ChannelInfo{}, err
	}

	k.Logger(ctx).Info("channel connected", "channel-id", info.ID, "counterparty-port", info.CounterpartyEndpoint.PortID, "counterparty-channel", info.CounterpartyEndpoint.ChannelID, "connection-id", info.ConnectionID)

	return info, nil
}
