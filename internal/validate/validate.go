package validate

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	host "github.com/cosmos/ics20-ledger/modules/core/24-host"
)

// GRPCRequest validates that the channelID of a query request is a valid identifier.
func GRPCRequest(channelID string) error {
	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}
