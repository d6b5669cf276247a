package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
	ibctesting "github.com/cosmos/ics20-ledger/testing"
)

func (suite *KeeperTestSuite) TestSetAllowed() {
	var allowed types.AllowedInfo
	gasLimit := uint64(1234567)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: with gas limit",
			func() {
				allowed.GasLimit = &gasLimit
			},
			nil,
		},
		{
			"success: without gas limit",
			func() {},
			nil,
		},
		{
			"failure: invalid contract address",
			func() {
				allowed.Contract = "wasm1invalid"
			},
			ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: blank contract address",
			func() {
				allowed.Contract = " "
			},
			ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: zero gas limit",
			func() {
				zero := uint64(0)
				allowed.GasLimit = &zero
			},
			ibcerrors.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			allowed = types.NewAllowedInfo(suite.cw20Contract, nil)
			tc.malleate()

			ctx := suite.chainA.GetContext()
			err := suite.chainA.Keeper.SetAllowed(ctx, allowed)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				stored, found := suite.chainA.Keeper.GetAllowed(ctx, suite.cw20Contract)
				suite.Require().True(found)
				suite.Require().Equal(allowed, stored)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)

				_, found := suite.chainA.Keeper.GetAllowed(ctx, allowed.Contract)
				suite.Require().False(found)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestCheckGasLimit() {
	var amount types.Amount
	gasLimit := uint64(1234567)

	testCases := []struct {
		name        string
		malleate    func()
		expGasLimit *uint64
		expErr      error
	}{
		{
			"success: native coins have no gas limit",
			func() {
				amount = types.NewNativeAmount(ucosm, sdkmath.NewUint(100))
			},
			nil,
			nil,
		},
		{
			"success: allowed cw20 with gas limit",
			func() {
				suite.chainA.AllowCw20(suite.cw20Contract, &gasLimit)
			},
			&gasLimit,
			nil,
		},
		{
			"success: allowed cw20 without gas limit",
			func() {
				suite.chainA.AllowCw20(suite.cw20Contract, nil)
			},
			nil,
			nil,
		},
		{
			"failure: cw20 not on allow list",
			func() {},
			nil,
			types.ErrNotOnAllowList,
		},
		{
			"failure: invalid cw20 address",
			func() {
				amount = types.NewCw20Amount("not-an-address", sdkmath.NewUint(100))
			},
			nil,
			ibcerrors.ErrInvalidAddress,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			amount = types.NewCw20Amount(suite.cw20Contract, sdkmath.NewUint(100))
			tc.malleate()

			limit, err := suite.chainA.Keeper.CheckGasLimit(suite.chainA.GetContext(), amount)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(tc.expGasLimit, limit)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Nil(limit)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestIterateAllowed() {
	other := ibctesting.NewAddress("other-token")
	suite.chainA.AllowCw20(suite.cw20Contract, nil)

	ctx := suite.chainA.GetContext()
	suite.Require().NoError(suite.chainA.Keeper.SetAllowed(ctx, types.NewAllowedInfo(other, nil)))

	var contracts []string
	err := suite.chainA.Keeper.IterateAllowed(ctx, func(allowed types.AllowedInfo) bool {
		contracts = append(contracts, allowed.Contract)
		return false
	})
	suite.Require().NoError(err)
	suite.Require().ElementsMatch([]string{suite.cw20Contract, other}, contracts)
}
