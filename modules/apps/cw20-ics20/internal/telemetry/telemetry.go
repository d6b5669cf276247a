package telemetry

import (
	"strconv"

	"github.com/hashicorp/go-metrics"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/telemetry"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
	coremetrics "github.com/cosmos/ics20-ledger/modules/core/metrics"
)

func ReportOnRecvPacket(packet wasmvmtypes.IBCPacket, denom string, amount sdkmath.Uint, success bool) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, packet.Src.PortID),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, packet.Src.ChannelID),
		telemetry.NewLabel(coremetrics.LabelDestinationPort, packet.Dest.PortID),
		telemetry.NewLabel(coremetrics.LabelDestinationChannel, packet.Dest.ChannelID),
		telemetry.NewLabel(coremetrics.LabelSuccess, strconv.FormatBool(success)),
	}

	if success && amount.LTE(sdkmath.NewUint(1<<63-1)) {
		telemetry.SetGaugeWithLabels(
			[]string{"ibc", types.ModuleName, "packet", "receive"},
			float32(amount.Uint64()),
			[]metrics.Label{telemetry.NewLabel(coremetrics.LabelDenom, denom)},
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "receive"},
		1,
		labels,
	)
}

func ReportOnAcknowledgementPacket(packet wasmvmtypes.IBCPacket, denom string, success bool) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "acknowledge"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, packet.Src.PortID),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, packet.Src.ChannelID),
			telemetry.NewLabel(coremetrics.LabelDenom, denom),
			telemetry.NewLabel(coremetrics.LabelSuccess, strconv.FormatBool(success)),
		},
	)
}

func ReportOnTimeoutPacket(packet wasmvmtypes.IBCPacket, denom string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "timeout"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, packet.Src.PortID),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, packet.Src.ChannelID),
			telemetry.NewLabel(coremetrics.LabelDenom, denom),
			telemetry.NewLabel(coremetrics.LabelTimeoutType, "packet"),
		},
	)
}

func ReportDispatchFailure(replyID uint64) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "dispatch", "failure"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelReplyID, strconv.FormatUint(replyID, 10)),
		},
	)
}
