package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

func (suite *KeeperTestSuite) TestGenesis() {
	gasLimit := uint64(1234567)
	suite.fund(ucosm, 987654321)
	suite.chainA.AllowCw20(suite.cw20Contract, &gasLimit)

	ctx := suite.chainA.GetContext()
	genesis, err := suite.chainA.Keeper.ExportGenesis(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(genesis.Validate())

	suite.Require().Len(genesis.Channels, 1)
	suite.Require().Equal([]types.ChannelStateEntry{{
		ChannelID: suite.localChannel(),
		Denom:     ucosm,
		State:     types.ChannelState{Outstanding: sdkmath.NewUint(987654321), TotalSent: sdkmath.NewUint(987654321)},
	}}, genesis.ChannelStates)
	suite.Require().Len(genesis.AllowList, 1)

	// import into a fresh chain
	suite.SetupTest()
	chain := suite.chainB

	ctx = chain.GetContext()
	genesis.Channels[0].ID = "channel-8"
	genesis.ChannelStates[0].ChannelID = "channel-8"
	suite.Require().NoError(chain.Keeper.InitGenesis(ctx, genesis))

	exported, err := chain.Keeper.ExportGenesis(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(exported.Channels, 2)
	suite.Require().Equal(genesis.ChannelStates, exported.ChannelStates)
	suite.Require().Equal(genesis.AllowList, exported.AllowList)
}

func (suite *KeeperTestSuite) TestGenesisAfterRefund() {
	ctx := suite.chainA.GetContext()
	channelID := suite.localChannel()

	// a timeout with no earlier successful acknowledgement
	suite.Require().NoError(suite.chainA.Keeper.ReleaseOnAck(ctx, channelID, ucosm, sdkmath.NewUint(500), false))

	genesis, err := suite.chainA.Keeper.ExportGenesis(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(genesis.Validate())

	suite.SetupTest()
	ctx = suite.chainA.GetContext()
	suite.Require().NoError(suite.chainA.Keeper.InitGenesis(ctx, genesis))

	state, found := suite.chainA.Keeper.GetChannelState(ctx, channelID, ucosm)
	suite.Require().True(found)
	suite.Require().Equal(sdkmath.NewUint(500).String(), state.Outstanding.String())
	suite.Require().True(state.TotalSent.IsZero())
}

func (suite *KeeperTestSuite) TestInitGenesis() {
	var genesis *types.GenesisState

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: default genesis",
			func() {},
			nil,
		},
		{
			"failure: invalid genesis",
			func() {
				genesis.ChannelStates = []types.ChannelStateEntry{{ChannelID: "channel-3", Denom: ucosm, State: types.NewChannelState()}}
			},
			types.ErrChannelNotFound,
		},
		{
			"failure: allow list entry with invalid address",
			func() {
				genesis.AllowList = []types.AllowedInfo{types.NewAllowedInfo("cosmos1invalid", nil)}
			},
			ibcerrors.ErrInvalidAddress,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			genesis = types.DefaultGenesisState()
			tc.malleate()

			err := suite.chainA.Keeper.InitGenesis(suite.chainA.GetContext(), genesis)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
