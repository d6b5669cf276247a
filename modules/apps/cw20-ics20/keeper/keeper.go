package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// Keeper defines the cw20-ics20 voucher ledger keeper
type Keeper struct {
	addressCodec address.Codec

	// state management
	Schema collections.Schema
	// ChannelInfos is a map of channelID to the metadata recorded when the channel connected
	ChannelInfos collections.Map[string, types.ChannelInfo]
	// ChannelStates is a map of (channelID, denom) to the balance ledger entry
	ChannelStates collections.Map[collections.Pair[string, string], types.ChannelState]
	// AllowList is a map of cw20 contract address to the entry permitting it
	AllowList collections.Map[string, types.AllowedInfo]
}

// NewKeeper creates a new Keeper instance
func NewKeeper(storeService corestore.KVStoreService, addressCodec address.Codec) Keeper {
	if addressCodec == nil {
		panic(errors.New("address codec must not be nil"))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		addressCodec:  addressCodec,
		ChannelInfos:  collections.NewMap(sb, types.ChannelInfoKey, "channel_infos", collections.StringKey, types.ChannelInfoValueCodec),
		ChannelStates: collections.NewMap(sb, types.ChannelStateKey, "channel_states", collections.PairKeyCodec(collections.StringKey, collections.StringKey), types.ChannelStateValueCodec),
		AllowList:     collections.NewMap(sb, types.AllowListKey, "allow_list", collections.StringKey, types.AllowedInfoValueCodec),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}
