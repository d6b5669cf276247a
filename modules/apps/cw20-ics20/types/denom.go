package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

// ParseVoucherDenom returns the local denomination encoded in a voucher denomination
// received from remote. Only vouchers of tokens this chain sent out over exactly the
// remote endpoint are accepted: the denomination must have the form
// {remotePort}/{remoteChannel}/{localDenom}.
//
// Native tokens of the remote chain, e.g. "ucosm", carry no prefix and are rejected.
func ParseVoucherDenom(voucherDenom string, remote wasmvmtypes.IBCEndpoint) (string, error) {
	split := strings.SplitN(voucherDenom, "/", 3)
	if len(split) != 3 {
		return "", errorsmod.Wrapf(ErrNoForeignTokens, "denom %s", voucherDenom)
	}

	if split[0] != remote.PortID {
		return "", errorsmod.Wrapf(ErrFromOtherPort, "port %s", split[0])
	}

	if split[1] != remote.ChannelID {
		return "", errorsmod.Wrapf(ErrFromOtherChannel, "channel %s", split[1])
	}

	return split[2], nil
}

// VoucherDenom returns the denomination under which the counterparty of the given
// port and channel tracks baseDenom.
func VoucherDenom(portID, channelID, baseDenom string) string {
	return fmt.Sprintf("%s/%s/%s", portID, channelID, baseDenom)
}
