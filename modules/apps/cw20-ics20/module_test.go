package ics20_test

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
	ics20 "github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

func (suite *TransferTestSuite) TestDefaultGenesis() {
	am := ics20.NewAppModule(suite.chainA.Keeper)

	bz := am.DefaultGenesis(nil)
	suite.Require().JSONEq(`{"channels":[],"channel_states":[],"allow_list":[]}`, string(bz))
	suite.Require().NoError(am.ValidateGenesis(nil, nil, bz))
}

func (suite *TransferTestSuite) TestValidateGenesis() {
	am := ics20.NewAppModule(suite.chainA.Keeper)

	testCases := []struct {
		name   string
		bz     string
		expErr error
	}{
		{
			"unknown channel", `{"channels":[],"channel_states":[{"channel_id":"channel-0","denom":"ucosm","state":{"outstanding":"1","total_sent":"1"}}],"allow_list":[]}`, types.ErrChannelNotFound,
		},
		{
			"blank allow list contract", `{"channels":[],"channel_states":[],"allow_list":[{"contract":""}]}`, ibcerrors.ErrInvalidAddress,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := am.ValidateGenesis(nil, nil, json.RawMessage(tc.bz))
			suite.Require().ErrorIs(err, tc.expErr)
		})
	}

	suite.Require().ErrorContains(am.ValidateGenesis(nil, nil, json.RawMessage("genesis")), "failed to unmarshal")
}

// TestGenesisRoundTrip exports the ledger of chainA and imports it on a fresh chain.
func (suite *TransferTestSuite) TestGenesisRoundTrip() {
	gasLimit := uint64(50000)
	cw20Denom := types.Cw20DenomPrefix + suite.cw20Contract

	suite.coordinator.Setup(suite.path)
	suite.chainA.AllowCw20(suite.cw20Contract, &gasLimit)
	suite.sendAcknowledged(ucosm, 1000)
	suite.sendAcknowledged(cw20Denom, 500)

	timedOut := types.NewTransferPacket(sdkmath.NewUint(100), ucosm, suite.chainA.SenderAccount, suite.receiver)
	_, err := suite.path.EndpointA.TimeoutPacket(suite.path.EndpointA.NewPacket(timedOut))
	suite.Require().NoError(err)

	am := ics20.NewAppModule(suite.chainA.Keeper)
	exported := am.ExportGenesis(suite.chainA.GetContext(), nil)
	suite.Require().NoError(am.ValidateGenesis(nil, nil, exported))

	// chainB already holds its side of the channel, start from an empty chain
	suite.SetupTest()
	imported := ics20.NewAppModule(suite.chainA.Keeper)
	suite.Require().NotPanics(func() {
		imported.InitGenesis(suite.chainA.GetContext(), nil, exported)
	})

	suite.requireState(ucosm, 1100, 1000)
	suite.requireState(cw20Denom, 500, 500)

	allowed, found := suite.chainA.Keeper.GetAllowed(suite.chainA.GetContext(), suite.cw20Contract)
	suite.Require().True(found)
	suite.Require().Equal(&gasLimit, allowed.GasLimit)

	suite.Require().JSONEq(string(exported), string(imported.ExportGenesis(suite.chainA.GetContext(), nil)))

	suite.Require().Panics(func() {
		imported.InitGenesis(suite.chainA.GetContext(), nil, json.RawMessage("genesis"))
	})
}
