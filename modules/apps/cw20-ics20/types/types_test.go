package types_test

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

const (
	remotePort    = "transfer"
	remoteChannel = "channel-1234"
	localPort     = "wasm.cosmos14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9s4hmalr"
	localChannel  = "channel-9"
	connectionID  = "connection-2"

	sender   = "cosmos1zedxv25ah8fksmg2lzrndrpkvsjqgk4zt5ff7n"
	receiver = "wasm1fucynrfkrt684pm8jrt8la5h2csvs5cnldcgqc"
)

var remoteEndpoint = wasmvmtypes.IBCEndpoint{PortID: remotePort, ChannelID: remoteChannel}

func mockChannel(order wasmvmtypes.IBCOrder, version string) wasmvmtypes.IBCChannel {
	return wasmvmtypes.IBCChannel{
		Endpoint:             wasmvmtypes.IBCEndpoint{PortID: localPort, ChannelID: localChannel},
		CounterpartyEndpoint: remoteEndpoint,
		Order:                order,
		Version:              version,
		ConnectionID:         connectionID,
	}
}
