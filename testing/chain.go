package ibctesting

import (
	"fmt"
	"testing"

	storetypes "cosmossdk.io/store/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ics20 "github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/keeper"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
	"github.com/cosmos/ics20-ledger/testing/mock"
)

// TestChain is an in-process chain running the cw20-ics20 ledger on its own
// store. Every chain is bound to a single contract port.
type TestChain struct {
	testing.TB

	Coordinator *Coordinator
	ChainID     string
	PortID      string

	StoreKey *storetypes.KVStoreKey
	Keeper   keeper.Keeper
	Module   ics20.IBCModule
	Logger   *mock.MockLogger

	// SenderAccount is a valid account address on this chain
	SenderAccount string

	ctx           sdk.Context
	nextChannelID uint64
	nextSequence  map[string]uint64
}

// NewTestChain initializes a new test chain with an empty store.
func NewTestChain(tb testing.TB, coord *Coordinator, chainID string) *TestChain {
	tb.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	testCtx := testutil.DefaultContextWithDB(tb, storeKey, storetypes.NewTransientStoreKey("transient_test"))

	logger := mock.NewMockLogger()
	k := keeper.NewKeeper(runtime.NewKVStoreService(storeKey), addresscodec.NewBech32Codec(Bech32Prefix))

	return &TestChain{
		TB:            tb,
		Coordinator:   coord,
		ChainID:       chainID,
		PortID:        ContractPortID(NewAddress(chainID + "/contract")),
		StoreKey:      storeKey,
		Keeper:        k,
		Module:        ics20.NewIBCModule(k),
		Logger:        logger,
		SenderAccount: NewAddress(chainID + "/sender"),
		ctx:           testCtx.Ctx.WithChainID(chainID).WithLogger(logger),
		nextSequence:  make(map[string]uint64),
	}
}

// GetContext returns the current context for the chain. Every call starts
// with an empty event manager, state is shared between calls.
func (chain *TestChain) GetContext() sdk.Context {
	return chain.ctx.WithEventManager(sdk.NewEventManager())
}

// NextChannelID returns a fresh channel identifier on this chain.
func (chain *TestChain) NextChannelID() string {
	channelID := fmt.Sprintf("%s%d", ChannelIDPrefix, chain.nextChannelID)
	chain.nextChannelID++
	return channelID
}

// NextSequence returns the next packet sequence sent over the given channel.
func (chain *TestChain) NextSequence(channelID string) uint64 {
	chain.nextSequence[channelID]++
	return chain.nextSequence[channelID]
}

// AllowCw20 puts a cw20 contract on the allow list of the chain.
func (chain *TestChain) AllowCw20(contract string, gasLimit *uint64) {
	chain.Helper()
	if err := chain.Keeper.SetAllowed(chain.GetContext(), types.NewAllowedInfo(contract, gasLimit)); err != nil {
		chain.Fatalf("failed to allow %s: %v", contract, err)
	}
}
