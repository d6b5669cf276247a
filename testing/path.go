package ibctesting

import (
	"github.com/stretchr/testify/require"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

// Path contains two endpoints representing two chains connected over IBC
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs an endpoint for each chain using the default values
// for the endpoints. Each endpoint is updated to have a pointer to the
// counterparty endpoint.
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewDefaultEndpoint(chainA)
	endpointB := NewDefaultEndpoint(chainB)

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}

// SetChannelOrdered sets the channel order for both endpoints to ORDERED.
func (path *Path) SetChannelOrdered() {
	path.EndpointA.ChannelConfig.Order = wasmvmtypes.Ordered
	path.EndpointB.ChannelConfig.Order = wasmvmtypes.Ordered
}

// Setup runs the full channel handshake between the two endpoints.
func (path *Path) Setup() {
	t := path.EndpointA.Chain

	require.NoError(t, path.EndpointA.ChanOpenInit())
	require.NoError(t, path.EndpointB.ChanOpenTry())

	_, err := path.EndpointA.ChanOpenAck()
	require.NoError(t, err)

	_, err = path.EndpointB.ChanOpenConfirm()
	require.NoError(t, err)
}

// RelayPacket delivers a packet to its destination endpoint and hands the
// resulting acknowledgement back to the sending endpoint.
func (path *Path) RelayPacket(packet wasmvmtypes.IBCPacket) (wasmvmtypes.IBCReceiveResponse, *wasmvmtypes.IBCBasicResponse, error) {
	src, dst := path.EndpointA, path.EndpointB
	if packet.Src == path.EndpointB.IBCEndpoint() {
		src, dst = path.EndpointB, path.EndpointA
	}

	recvRes := dst.RecvPacket(packet)
	ackRes, err := src.AcknowledgePacket(packet, recvRes.Acknowledgement)
	return recvRes, ackRes, err
}
