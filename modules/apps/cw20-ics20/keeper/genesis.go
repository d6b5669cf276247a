package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// InitGenesis initializes the module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	for _, channel := range data.Channels {
		if err := k.SetChannelInfo(ctx, channel); err != nil {
			return err
		}
	}

	for _, entry := range data.ChannelStates {
		if err := k.SetChannelState(ctx, entry.ChannelID, entry.Denom, entry.State); err != nil {
			return err
		}
	}

	for _, allowed := range data.AllowList {
		if err := k.SetAllowed(ctx, allowed); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the module state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesisState()

	if err := k.IterateChannelInfos(ctx, func(info types.ChannelInfo) bool {
		genState.Channels = append(genState.Channels, info)
		return false
	}); err != nil {
		return nil, err
	}

	if err := k.ChannelStates.Walk(ctx, nil, func(key collections.Pair[string, string], state types.ChannelState) (bool, error) {
		genState.ChannelStates = append(genState.ChannelStates, types.ChannelStateEntry{
			ChannelID: key.K1(),
			Denom:     key.K2(),
			State:     state,
		})
		return false, nil
	}); err != nil {
		return nil, err
	}

	if err := k.IterateAllowed(ctx, func(allowed types.AllowedInfo) bool {
		genState.AllowList = append(genState.AllowList, allowed)
		return false
	}); err != nil {
		return nil, err
	}

	return genState, nil
}
