package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// OnRecvPacket redeems the voucher carried by a received packet. The voucher
// must name a token this chain sent out over the packet's source endpoint and
// the channel must have enough outstanding balance to cover it. The returned
// sub message pays the redeemed amount to the receiver.
//
// Any error returned must lead to an error acknowledgement with every state
// change discarded.
func (k Keeper) OnRecvPacket(ctx sdk.Context, packet wasmvmtypes.IBCPacket, data types.TransferPacket) (types.Amount, wasmvmtypes.SubMsg, error) {
	// tokens originating on the remote chain look like "ucosm", tokens
	// originating on this chain like "port/channel/ucosm"
	denom, err := types.ParseVoucherDenom(data.Denom, packet.Src)
	if err != nil {
		return types.Amount{}, wasmvmtypes.SubMsg{}, err
	}

	channelID := packet.Dest.ChannelID
	if err := k.ReserveOnReceive(ctx, channelID, denom, data.Amount); err != nil {
		return types.Amount{}, wasmvmtypes.SubMsg{}, err
	}

	toSend := types.AmountFromParts(denom, data.Amount)
	gasLimit, err := k.CheckGasLimit(ctx, toSend)
	if err != nil {
		return types.Amount{}, wasmvmtypes.SubMsg{}, err
	}

	args := types.ReplyArgs{
		Channel: channelID,
		Denom:   denom,
		Amount:  data.Amount,
	}

	return toSend, BuildTransferMsg(toSend, data.Receiver, gasLimit, args.GetBytes()), nil
}

// OnAcknowledgementPacket settles a packet sent over the channel. A successful
// acknowledgement credits the ledger, an error acknowledgement refunds the sender.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, packet wasmvmtypes.IBCPacket, data types.TransferPacket, ack types.Acknowledgement) ([]wasmvmtypes.SubMsg, error) {
	switch resp := ack.Response.(type) {
	case *types.Acknowledgement_Result:
		if err := k.ReleaseOnAck(ctx, packet.Src.ChannelID, data.Denom, data.Amount, true); err != nil {
			return nil, err
		}

		k.Logger(ctx).Info("successfully handled ICS-20 packet acknowledgement", "sequence", packet.Sequence, "src-channel", packet.Src.ChannelID, "denom", data.Denom, "amount", data.Amount.String())
		return nil, nil
	case *types.Acknowledgement_Error:
		refund, err := k.refundPacketToken(ctx, packet, data)
		if err != nil {
			return nil, err
		}

		k.Logger(ctx).Info("refunding ICS-20 packet after error acknowledgement", "sequence", packet.Sequence, "src-channel", packet.Src.ChannelID, "error", resp.Error)
		return []wasmvmtypes.SubMsg{refund}, nil
	default:
		panic(fmt.Errorf("expected one of [%T, %T], got %T", &types.Acknowledgement_Result{}, &types.Acknowledgement_Error{}, ack.Response))
	}
}

// OnTimeoutPacket refunds the sender of a packet that timed out.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, packet wasmvmtypes.IBCPacket, data types.TransferPacket) (wasmvmtypes.SubMsg, error) {
	refund, err := k.refundPacketToken(ctx, packet, data)
	if err != nil {
		return wasmvmtypes.SubMsg{}, err
	}

	k.Logger(ctx).Info("refunding ICS-20 packet after timeout", "sequence", packet.Sequence, "src-channel", packet.Src.ChannelID)
	return refund, nil
}

// refundPacketToken restores the outstanding balance of a packet that did not
// arrive and returns the payment of its tokens to the original sender.
func (k Keeper) refundPacketToken(ctx sdk.Context, packet wasmvmtypes.IBCPacket, data types.TransferPacket) (wasmvmtypes.SubMsg, error) {
	toSend := types.AmountFromParts(data.Denom, data.Amount)
	gasLimit, err := k.CheckGasLimit(ctx, toSend)
	if err != nil {
		return wasmvmtypes.SubMsg{}, errorsmod.Wrapf(err, "unable to refund %s to %s", toSend, data.Sender)
	}

	if err := k.ReleaseOnAck(ctx, packet.Src.ChannelID, data.Denom, data.Amount, false); err != nil {
		return wasmvmtypes.SubMsg{}, err
	}

	return BuildTransferMsg(toSend, data.Sender, gasLimit, nil), nil
}
