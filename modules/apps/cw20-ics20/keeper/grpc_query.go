package keeper

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/ics20-ledger/internal/validate"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// Channel returns the metadata of a connected channel together with its
// outstanding balances and lifetime totals. Zero amounts are omitted and both
// lists are ordered by denomination.
func (k Keeper) Channel(ctx context.Context, channelID string) (*types.ChannelResponse, error) {
	if err := validate.GRPCRequest(channelID); err != nil {
		return nil, err
	}

	info, found := k.GetChannelInfo(ctx, channelID)
	if !found {
		return nil, status.Error(codes.NotFound, types.ErrChannelNotFound.Wrapf("channel %s", channelID).Error())
	}

	balances := []types.Amount{}
	totalSent := []types.Amount{}
	if err := k.IterateChannelStates(ctx, channelID, func(denom string, state types.ChannelState) bool {
		if !state.Outstanding.IsZero() {
			balances = append(balances, types.AmountFromParts(denom, state.Outstanding))
		}
		if !state.TotalSent.IsZero() {
			totalSent = append(totalSent, types.AmountFromParts(denom, state.TotalSent))
		}
		return false
	}); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.ChannelResponse{
		Info:      info,
		Balances:  balances,
		TotalSent: totalSent,
	}, nil
}

// ListChannels returns the metadata of every connected channel.
func (k Keeper) ListChannels(ctx context.Context) ([]types.ChannelInfo, error) {
	channels := []types.ChannelInfo{}
	if err := k.IterateChannelInfos(ctx, func(info types.ChannelInfo) bool {
		channels = append(channels, info)
		return false
	}); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return channels, nil
}

// Allowed reports whether a cw20 contract is on the allow list.
func (k Keeper) Allowed(ctx context.Context, contract string) (*types.AllowedResponse, error) {
	if strings.TrimSpace(contract) == "" {
		return nil, status.Error(codes.InvalidArgument, "contract address cannot be empty")
	}

	allowed, found := k.GetAllowed(ctx, contract)
	if !found {
		return &types.AllowedResponse{IsAllowed: false}, nil
	}

	return &types.AllowedResponse{
		IsAllowed: true,
		GasLimit:  allowed.GasLimit,
	}, nil
}

// ListAllowed returns every allow list entry.
func (k Keeper) ListAllowed(ctx context.Context) ([]types.AllowedInfo, error) {
	allowList := []types.AllowedInfo{}
	if err := k.IterateAllowed(ctx, func(allowed types.AllowedInfo) bool {
		allowList = append(allowList, allowed)
		return false
	}); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return allowList, nil
}
