package keeper

import (
	"context"
	"errors"
	"math/big"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// maxBalance is the largest balance a ledger entry may hold (2^128 - 1).
var maxBalance = sdkmath.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// GetChannelState returns the ledger entry of denom on the given channel.
func (k Keeper) GetChannelState(ctx context.Context, channelID, denom string) (types.ChannelState, bool) {
	state, err := k.ChannelStates.Get(ctx, collections.Join(channelID, denom))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ChannelState{}, false
		}
		panic(err)
	}

	return state, true
}

// SetChannelState stores the ledger entry of denom on the given channel.
func (k Keeper) SetChannelState(ctx context.Context, channelID, denom string, state types.ChannelState) error {
	return k.ChannelStates.Set(ctx, collections.Join(channelID, denom), state)
}

// IterateChannelStates iterates over the ledger entries of a channel in denom order
// and performs a callback function. Iteration stops when the callback returns true.
func (k Keeper) IterateChannelStates(ctx context.Context, channelID string, cb func(denom string, state types.ChannelState) bool) error {
	return k.ChannelStates.Walk(ctx, collections.NewPrefixedPairRange[string, string](channelID), func(key collections.Pair[string, string], state types.ChannelState) (bool, error) {
		return cb(key.K2(), state), nil
	})
}

// ReserveOnReceive redeems amount of denom from the outstanding balance of the
// channel. Nothing is written if the balance cannot cover the amount.
func (k Keeper) ReserveOnReceive(ctx context.Context, channelID, denom string, amount sdkmath.Uint) error {
	state, found := k.GetChannelState(ctx, channelID, denom)
	if !found {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "%s was never sent over %s", denom, channelID)
	}

	if state.Outstanding.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "requested %s, outstanding %s%s", amount, state.Outstanding, denom)
	}

	state.Outstanding = state.Outstanding.Sub(amount)

	return k.SetChannelState(ctx, channelID, denom, state)
}

// ReleaseOnAck credits amount of denom to the outstanding balance of the
// channel once a sent packet is acknowledged or timed out. The lifetime total
// only grows when the transfer succeeded.
func (k Keeper) ReleaseOnAck(ctx context.Context, channelID, denom string, amount sdkmath.Uint, success bool) error {
	state, found := k.GetChannelState(ctx, channelID, denom)
	if !found {
		state = types.NewChannelState()
	}

	state.Outstanding = addBalance(state.Outstanding, amount)
	if success {
		state.TotalSent = addBalance(state.TotalSent, amount)
	}

	return k.SetChannelState(ctx, channelID, denom, state)
}

// RestoreOutstanding returns a reservation made by ReserveOnReceive whose
// payment could not be delivered.
func (k Keeper) RestoreOutstanding(ctx context.Context, channelID, denom string, amount sdkmath.Uint) error {
	state, found := k.GetChannelState(ctx, channelID, denom)
	if !found {
		state = types.NewChannelState()
	}

	state.Outstanding = addBalance(state.Outstanding, amount)

	return k.SetChannelState(ctx, channelID, denom, state)
}

// addBalance panics if the sum no longer fits a ledger balance.
func addBalance(balance, amount sdkmath.Uint) sdkmath.Uint {
	sum := balance.Add(amount)
	if sum.GT(maxBalance) {
		panic(errorsmod.Wrapf(ibcerrors.ErrLogic, "ledger balance overflow: %s + %s", balance, amount))
	}
	return sum
}
