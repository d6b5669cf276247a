package ibctesting

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// Endpoint represents one side of a channel and drives the ledger of its chain
// through the handshake and the packet lifecycle.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint

	PortID       string
	ChannelID    string
	ConnectionID string

	ChannelConfig *ChannelConfig
}

// NewEndpoint constructs a new endpoint without the counterparty.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewEndpoint(chain *TestChain, channelConfig *ChannelConfig) *Endpoint {
	return &Endpoint{
		Chain:         chain,
		PortID:        chain.PortID,
		ConnectionID:  FirstConnectionID,
		ChannelConfig: channelConfig,
	}
}

// NewDefaultEndpoint constructs a new endpoint using default values.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewDefaultEndpoint(chain *TestChain) *Endpoint {
	return NewEndpoint(chain, NewChannelConfig())
}

// IBCEndpoint returns the port and channel of the endpoint.
func (endpoint *Endpoint) IBCEndpoint() wasmvmtypes.IBCEndpoint {
	return wasmvmtypes.IBCEndpoint{
		PortID:    endpoint.PortID,
		ChannelID: endpoint.ChannelID,
	}
}

// IBCChannel returns the channel as seen from this endpoint.
func (endpoint *Endpoint) IBCChannel() wasmvmtypes.IBCChannel {
	return wasmvmtypes.IBCChannel{
		Endpoint:             endpoint.IBCEndpoint(),
		CounterpartyEndpoint: endpoint.Counterparty.IBCEndpoint(),
		Order:                endpoint.ChannelConfig.Order,
		Version:              endpoint.ChannelConfig.Version,
		ConnectionID:         endpoint.ConnectionID,
	}
}

// ChanOpenInit starts the handshake on this endpoint.
func (endpoint *Endpoint) ChanOpenInit() error {
	if endpoint.ChannelID == "" {
		endpoint.ChannelID = endpoint.Chain.NextChannelID()
	}

	return endpoint.Chain.Module.OnChanOpen(endpoint.Chain.GetContext(), wasmvmtypes.IBCChannelOpenMsg{
		OpenInit: &wasmvmtypes.IBCOpenInit{Channel: endpoint.IBCChannel()},
	})
}

// ChanOpenTry answers the counterparty's ChanOpenInit.
func (endpoint *Endpoint) ChanOpenTry() error {
	if endpoint.ChannelID == "" {
		endpoint.ChannelID = endpoint.Chain.NextChannelID()
	}

	return endpoint.Chain.Module.OnChanOpen(endpoint.Chain.GetContext(), wasmvmtypes.IBCChannelOpenMsg{
		OpenTry: &wasmvmtypes.IBCOpenTry{
			Channel:             endpoint.IBCChannel(),
			CounterpartyVersion: endpoint.Counterparty.ChannelConfig.Version,
		},
	})
}

// ChanOpenAck completes the handshake on the initiating endpoint.
func (endpoint *Endpoint) ChanOpenAck() (*wasmvmtypes.IBCBasicResponse, error) {
	return endpoint.Chain.Module.OnChanConnect(endpoint.Chain.GetContext(), wasmvmtypes.IBCChannelConnectMsg{
		OpenAck: &wasmvmtypes.IBCOpenAck{
			Channel:             endpoint.IBCChannel(),
			CounterpartyVersion: endpoint.Counterparty.ChannelConfig.Version,
		},
	})
}

// ChanOpenConfirm completes the handshake on the answering endpoint.
func (endpoint *Endpoint) ChanOpenConfirm() (*wasmvmtypes.IBCBasicResponse, error) {
	return endpoint.Chain.Module.OnChanConnect(endpoint.Chain.GetContext(), wasmvmtypes.IBCChannelConnectMsg{
		OpenConfirm: &wasmvmtypes.IBCOpenConfirm{Channel: endpoint.IBCChannel()},
	})
}

// ChanCloseInit attempts to close the channel on this endpoint.
func (endpoint *Endpoint) ChanCloseInit() error {
	return endpoint.Chain.Module.OnChanClose(endpoint.Chain.GetContext(), wasmvmtypes.IBCChannelCloseMsg{
		CloseInit: &wasmvmtypes.IBCCloseInit{Channel: endpoint.IBCChannel()},
	})
}

// NewPacket returns a packet carrying data from this endpoint to its counterparty.
func (endpoint *Endpoint) NewPacket(data types.TransferPacket) wasmvmtypes.IBCPacket {
	return wasmvmtypes.IBCPacket{
		Data:     data.GetBytes(),
		Src:      endpoint.IBCEndpoint(),
		Dest:     endpoint.Counterparty.IBCEndpoint(),
		Sequence: endpoint.Chain.NextSequence(endpoint.ChannelID),
		Timeout: wasmvmtypes.IBCTimeout{
			Block: &wasmvmtypes.IBCTimeoutBlock{Revision: 1, Height: 1000},
		},
	}
}

// RecvPacket delivers a packet sent by the counterparty to this endpoint.
func (endpoint *Endpoint) RecvPacket(packet wasmvmtypes.IBCPacket) wasmvmtypes.IBCReceiveResponse {
	return endpoint.Chain.Module.OnRecvPacket(endpoint.Chain.GetContext(), wasmvmtypes.IBCPacketReceiveMsg{
		Packet:  packet,
		Relayer: endpoint.Chain.SenderAccount,
	})
}

// AcknowledgePacket delivers the counterparty's acknowledgement of a packet sent by this endpoint.
func (endpoint *Endpoint) AcknowledgePacket(packet wasmvmtypes.IBCPacket, ack []byte) (*wasmvmtypes.IBCBasicResponse, error) {
	return endpoint.Chain.Module.OnAcknowledgementPacket(endpoint.Chain.GetContext(), wasmvmtypes.IBCPacketAckMsg{
		Acknowledgement: wasmvmtypes.IBCAcknowledgement{Data: ack},
		OriginalPacket:  packet,
		Relayer:         endpoint.Chain.SenderAccount,
	})
}

// TimeoutPacket reports that a packet sent by this endpoint timed out.
func (endpoint *Endpoint) TimeoutPacket(packet wasmvmtypes.IBCPacket) (*wasmvmtypes.IBCBasicResponse, error) {
	return endpoint.Chain.Module.OnTimeoutPacket(endpoint.Chain.GetContext(), wasmvmtypes.IBCPacketTimeoutMsg{
		Packet:  packet,
		Relayer: endpoint.Chain.SenderAccount,
	})
}

// SendAcknowledged records a transfer from this endpoint that
// the counterparty acknowledged successfully, funding the outstanding balance.
func (endpoint *Endpoint) SendAcknowledged(data types.TransferPacket) (wasmvmtypes.IBCPacket, error) {
	packet := endpoint.NewPacket(data)
	_, err := endpoint.AcknowledgePacket(packet, types.NewSuccessAcknowledgement().Acknowledgement())
	return packet, err
}
