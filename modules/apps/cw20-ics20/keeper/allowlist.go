package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// SetAllowed stores an allow list entry, replacing any entry for the same contract.
func (k Keeper) SetAllowed(ctx context.Context, allowed types.AllowedInfo) error {
	if err := allowed.Validate(); err != nil {
		return err
	}

	if _, err := k.addressCodec.StringToBytes(allowed.Contract); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "invalid contract address %s: %v", allowed.Contract, err)
	}

	return k.AllowList.Set(ctx, allowed.Contract, allowed)
}

// GetAllowed returns the allow list entry of a cw20 contract.
func (k Keeper) GetAllowed(ctx context.Context, contract string) (types.AllowedInfo, bool) {
	allowed, err := k.AllowList.Get(ctx, contract)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.AllowedInfo{}, false
		}
		panic(err)
	}

	return allowed, true
}

// IterateAllowed iterates over the allow list in contract address order.
func (k Keeper) IterateAllowed(ctx context.Context, cb func(allowed types.AllowedInfo) bool) error {
	return k.AllowList.Walk(ctx, nil, func(_ string, allowed types.AllowedInfo) (bool, error) {
		return cb(allowed), nil
	})
}

// CheckGasLimit returns the gas ceiling for paying out amount. Native coins
// have none. Cw20 tokens must be on the allow list and use its gas limit.
func (k Keeper) CheckGasLimit(ctx context.Context, amount types.Amount) (*uint64, error) {
	if amount.Cw20 == nil {
		return nil, nil
	}

	contract := amount.Cw20.Address
	if _, err := k.addressCodec.StringToBytes(contract); err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "invalid contract address %s: %v", contract, err)
	}

	allowed, found := k.GetAllowed(ctx, contract)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrNotOnAllowList, "contract %s", contract)
	}

	return allowed.GasLimit, nil
}
