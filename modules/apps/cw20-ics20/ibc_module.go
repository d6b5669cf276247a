package ics20

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/internal/events"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/internal/telemetry"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/keeper"
	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// IBCModule implements the ICS20 entry points of the voucher ledger given the keeper.
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// OnChanOpen implements the channel open handshake step. Only unordered ics20-1
// channels are accepted.
func (IBCModule) OnChanOpen(_ sdk.Context, msg wasmvmtypes.IBCChannelOpenMsg) error {
	counterpartyVersion, ok := msg.GetCounterVersion()
	return types.EnforceOrderAndVersion(msg.GetChannel(), counterpartyVersion, ok)
}

// OnChanConnect records the channel once the handshake completed.
func (im IBCModule) OnChanConnect(ctx sdk.Context, msg wasmvmtypes.IBCChannelConnectMsg) (*wasmvmtypes.IBCBasicResponse, error) {
	channel := msg.GetChannel()
	counterpartyVersion, ok := msg.GetCounterVersion()
	if err := types.EnforceOrderAndVersion(channel, counterpartyVersion, ok); err != nil {
		return nil, err
	}

	info, err := im.keeper.ConnectChannel(ctx, channel)
	if err != nil {
		return nil, err
	}

	events.EmitChannelConnectEvent(ctx, info)

	return &wasmvmtypes.IBCBasicResponse{
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyAction, Value: types.EventTypeChannelConnect},
			{Key: types.AttributeKeyChannelID, Value: info.ID},
		},
	}, nil
}

// OnChanClose rejects closing a channel. Vouchers may still be outstanding on
// the counterparty and no recovery of those funds exists.
func (IBCModule) OnChanClose(_ sdk.Context, msg wasmvmtypes.IBCChannelCloseMsg) error {
	return errorsmod.Wrapf(types.ErrChannelCloseUnsupported, "channel %s", msg.GetChannel().Endpoint.ChannelID)
}

// OnRecvPacket redeems a voucher sent back by the counterparty. It never
// returns an error: a packet that cannot be processed is answered with an error
// acknowledgement and leaves no state behind.
func (im IBCModule) OnRecvPacket(ctx sdk.Context, msg wasmvmtypes.IBCPacketReceiveMsg) wasmvmtypes.IBCReceiveResponse {
	packet := msg.Packet

	res, err := im.recvPacket(ctx, packet)
	if err != nil {
		im.keeper.Logger(ctx).Error("failed to handle ICS-20 packet", "sequence", packet.Sequence, "src-channel", packet.Src.ChannelID, "dst-channel", packet.Dest.ChannelID, "error", err.Error())

		attributes := events.ReceiveFailureAttributes(err)
		events.EmitPacketEvent(ctx, attributes)
		telemetry.ReportOnRecvPacket(packet, "", sdkmath.ZeroUint(), false)

		return wasmvmtypes.IBCReceiveResponse{
			Acknowledgement: types.NewErrorAcknowledgement(err).Acknowledgement(),
			Attributes:      attributes,
		}
	}

	return res
}

func (im IBCModule) recvPacket(ctx sdk.Context, packet wasmvmtypes.IBCPacket) (wasmvmtypes.IBCReceiveResponse, error) {
	data, err := types.UnmarshalPacketData(packet.Data)
	if err != nil {
		return wasmvmtypes.IBCReceiveResponse{}, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	amount, payment, err := im.keeper.OnRecvPacket(cacheCtx, packet, data)
	if err != nil {
		return wasmvmtypes.IBCReceiveResponse{}, err
	}
	writeFn()

	im.keeper.Logger(ctx).Info("successfully handled ICS-20 packet", "sequence", packet.Sequence, "dst-channel", packet.Dest.ChannelID, "amount", amount.String(), "receiver", data.Receiver)

	attributes := events.PacketAttributes(types.ActionReceive, data, amount.Denom(), nil)
	events.EmitPacketEvent(ctx, attributes)
	telemetry.ReportOnRecvPacket(packet, amount.Denom(), amount.GetAmount(), true)

	return wasmvmtypes.IBCReceiveResponse{
		Acknowledgement: types.NewSuccessAcknowledgement().Acknowledgement(),
		Messages:        []wasmvmtypes.SubMsg{payment},
		Attributes:      attributes,
	}, nil
}

// OnAcknowledgementPacket settles a packet sent out over the channel. State is
// only written when the acknowledgement is processed without error.
func (im IBCModule) OnAcknowledgementPacket(ctx sdk.Context, msg wasmvmtypes.IBCPacketAckMsg) (*wasmvmtypes.IBCBasicResponse, error) {
	ack, err := types.UnmarshalAcknowledgement(msg.Acknowledgement.Data)
	if err != nil {
		return nil, err
	}

	if err := ack.ValidateBasic(); err != nil {
		return nil, err
	}

	data, err := types.UnmarshalPacketData(msg.OriginalPacket.Data)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	refunds, err := im.keeper.OnAcknowledgementPacket(cacheCtx, msg.OriginalPacket, data, ack)
	if err != nil {
		return nil, err
	}
	writeFn()

	var ackErr error
	if !ack.Success() {
		ackErr = errors.New(ack.GetError())
	}

	attributes := events.PacketAttributes(types.ActionAcknowledge, data, data.Denom, ackErr)
	events.EmitPacketEvent(ctx, attributes)
	telemetry.ReportOnAcknowledgementPacket(msg.OriginalPacket, data.Denom, ack.Success())

	return &wasmvmtypes.IBCBasicResponse{
		Messages:   refunds,
		Attributes: attributes,
	}, nil
}

// OnTimeoutPacket refunds the sender of a packet that timed out, exactly as for
// an error acknowledgement.
func (im IBCModule) OnTimeoutPacket(ctx sdk.Context, msg wasmvmtypes.IBCPacketTimeoutMsg) (*wasmvmtypes.IBCBasicResponse, error) {
	data, err := types.UnmarshalPacketData(msg.Packet.Data)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	refund, err := im.keeper.OnTimeoutPacket(cacheCtx, msg.Packet, data)
	if err != nil {
		return nil, err
	}
	writeFn()

	attributes := events.PacketAttributes(types.ActionAcknowledge, data, data.Denom, errors.New(types.TimeoutError))
	events.EmitPacketEvent(ctx, attributes)
	events.EmitOnTimeoutEvent(ctx, data)
	telemetry.ReportOnTimeoutPacket(msg.Packet, data.Denom)

	return &wasmvmtypes.IBCBasicResponse{
		Messages:   []wasmvmtypes.SubMsg{refund},
		Attributes: attributes,
	}, nil
}

// Reply handles the callback of a payment dispatched by this module.
func (im IBCModule) Reply(ctx sdk.Context, reply wasmvmtypes.Reply) (*wasmvmtypes.Response, error) {
	cacheCtx, writeFn := ctx.CacheContext()
	res, err := im.keeper.OnReply(cacheCtx, reply)
	if err != nil {
		return nil, err
	}
	writeFn()

	return res, nil
}
