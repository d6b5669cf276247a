package keeper

import (
	"encoding/json"
	"errors"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/internal/events"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/internal/telemetry"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// BuildTransferMsg returns the sub message paying amount out to recipient.
// Native coins are sent through the bank module, cw20 tokens through a
// transfer call on the token contract. The caller is only called back when the
// payment fails.
func BuildTransferMsg(amount types.Amount, recipient string, gasLimit *uint64, payload []byte) wasmvmtypes.SubMsg {
	var msg wasmvmtypes.CosmosMsg
	if amount.Cw20 != nil {
		transfer, err := json.Marshal(types.Cw20ExecuteMsg{
			Transfer: &types.Cw20TransferMsg{
				Recipient: recipient,
				Amount:    amount.Cw20.Amount,
			},
		})
		if err != nil {
			panic(err)
		}

		msg = wasmvmtypes.CosmosMsg{
			Wasm: &wasmvmtypes.WasmMsg{
				Execute: &wasmvmtypes.ExecuteMsg{
					ContractAddr: amount.Cw20.Address,
					Msg:          transfer,
					Funds:        []wasmvmtypes.Coin{},
				},
			},
		}
	} else {
		msg = wasmvmtypes.CosmosMsg{
			Bank: &wasmvmtypes.BankMsg{
				Send: &wasmvmtypes.SendMsg{
					ToAddress: recipient,
					Amount: []wasmvmtypes.Coin{{
						Denom:  amount.Native.Denom,
						Amount: amount.Native.Amount.String(),
					}},
				},
			},
		}
	}

	return wasmvmtypes.SubMsg{
		ID:       types.SendTokenReplyID,
		Payload:  payload,
		Msg:      msg,
		GasLimit: gasLimit,
		ReplyOn:  wasmvmtypes.ReplyError,
	}
}

// OnReply handles the result of a dispatched payment. Successful payments need
// no handling. A failed payment replaces the provisional success acknowledgement
// with an error acknowledgement, and when it paid out a received packet the
// redeemed amount is returned to the outstanding balance.
func (k Keeper) OnReply(ctx sdk.Context, reply wasmvmtypes.Reply) (*wasmvmtypes.Response, error) {
	if reply.ID != types.SendTokenReplyID {
		return nil, errorsmod.Wrapf(types.ErrUnknownReplyID, "reply id %d", reply.ID)
	}

	if reply.Result.Err == "" {
		return &wasmvmtypes.Response{}, nil
	}

	if len(reply.Payload) > 0 {
		args, err := types.UnmarshalReplyArgs(reply.Payload)
		if err != nil {
			return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "cannot unmarshal reply payload: %v", err)
		}

		if err := k.RestoreOutstanding(ctx, args.Channel, args.Denom, args.Amount); err != nil {
			return nil, err
		}
	}

	k.Logger(ctx).Error("dispatched payment failed", "reply-id", reply.ID, "error", reply.Result.Err)
	events.EmitDispatchFailureEvent(ctx, reply.ID, reply.Result.Err)
	telemetry.ReportDispatchFailure(reply.ID)

	ack := types.NewErrorAcknowledgement(errors.New(reply.Result.Err))
	return &wasmvmtypes.Response{
		Data: ack.Acknowledgement(),
	}, nil
}
