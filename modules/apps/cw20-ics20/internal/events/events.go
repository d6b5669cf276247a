package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// PacketAttributes returns the response attributes describing a processed
// transfer packet. Received packets report the local denomination.
func PacketAttributes(action string, packetData types.TransferPacket, denom string, ackErr error) []wasmvmtypes.EventAttribute {
	attributes := []wasmvmtypes.EventAttribute{
		{Key: types.AttributeKeyAction, Value: action},
		{Key: types.AttributeKeySender, Value: packetData.Sender},
		{Key: types.AttributeKeyReceiver, Value: packetData.Receiver},
		{Key: types.AttributeKeyDenom, Value: denom},
		{Key: types.AttributeKeyAmount, Value: packetData.Amount.String()},
		{Key: types.AttributeKeyAckSuccess, Value: strconv.FormatBool(ackErr == nil)},
	}

	if ackErr != nil {
		attributes = append(attributes, wasmvmtypes.EventAttribute{Key: types.AttributeKeyAckError, Value: ackErr.Error()})
	}

	return attributes
}

// ReceiveFailureAttributes returns the response attributes of a receive that
// was rejected. Nothing about the packet is echoed back since it may not decode.
func ReceiveFailureAttributes(ackErr error) []wasmvmtypes.EventAttribute {
	return []wasmvmtypes.EventAttribute{
		{Key: types.AttributeKeyAction, Value: types.ActionReceive},
		{Key: types.AttributeKeyAckSuccess, Value: strconv.FormatBool(false)},
		{Key: types.AttributeKeyAckError, Value: ackErr.Error()},
	}
}

// EmitPacketEvent emits a fungible token packet event carrying the given response attributes.
func EmitPacketEvent(ctx sdk.Context, attributes []wasmvmtypes.EventAttribute) {
	eventAttributes := make([]sdk.Attribute, 0, len(attributes))
	for _, attr := range attributes {
		eventAttributes = append(eventAttributes, sdk.NewAttribute(attr.Key, attr.Value))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			eventAttributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnTimeoutEvent emits a timeout event in the OnTimeoutPacket callback
func EmitOnTimeoutEvent(ctx sdk.Context, packetData types.TransferPacket) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTimeout,
			sdk.NewAttribute(types.AttributeKeyReceiver, packetData.Sender),
			sdk.NewAttribute(types.AttributeKeyDenom, packetData.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, packetData.Amount.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitChannelConnectEvent emits an event when a channel is registered
func EmitChannelConnectEvent(ctx sdk.Context, info types.ChannelInfo) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeChannelConnect,
			sdk.NewAttribute(types.AttributeKeyChannelID, info.ID),
			sdk.NewAttribute(types.AttributeKeyCounterparty, info.CounterpartyEndpoint.PortID+"/"+info.CounterpartyEndpoint.ChannelID),
			sdk.NewAttribute(types.AttributeKeyConnectionID, info.ConnectionID),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitDispatchFailureEvent emits an event when a dispatched payment reported failure
func EmitDispatchFailureEvent(ctx sdk.Context, replyID uint64, errMsg string) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeDispatchFailure,
			sdk.NewAttribute(types.AttributeKeyReplyID, strconv.FormatUint(replyID, 10)),
			sdk.NewAttribute(types.AttributeKeyAckError, errMsg),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}
