package types

import (
	errorsmod "cosmossdk.io/errors"
)

// cw20-ics20 sentinel errors
var (
	ErrAmountOverflow          = errorsmod.Register(ModuleName, 2, "amount overflow")
	ErrInvalidVersion          = errorsmod.Register(ModuleName, 3, "invalid ICS20 version")
	ErrOnlyUnorderedChannel    = errorsmod.Register(ModuleName, 4, "only supports unordered channels")
	ErrNoForeignTokens         = errorsmod.Register(ModuleName, 5, "only accepts tokens that originate on this chain, not native tokens of remote chain")
	ErrFromOtherPort           = errorsmod.Register(ModuleName, 6, "parsed port from denom doesn't match packet")
	ErrFromOtherChannel        = errorsmod.Register(ModuleName, 7, "parsed channel from denom doesn't match packet")
	ErrInsufficientFunds       = errorsmod.Register(ModuleName, 8, "insufficient funds to redeem voucher on channel")
	ErrNotOnAllowList          = errorsmod.Register(ModuleName, 9, "cw20 token is not on the allow list")
	ErrUnknownReplyID          = errorsmod.Register(ModuleName, 10, "unknown reply id")
	ErrChannelNotFound         = errorsmod.Register(ModuleName, 11, "channel not found")
	ErrChannelAlreadyExists    = errorsmod.Register(ModuleName, 12, "channel already exists")
	ErrChannelCloseUnsupported = errorsmod.Register(ModuleName, 13, "closing a cw20-ics20 channel is not supported")
	ErrInvalidAcknowledgement  = errorsmod.Register(ModuleName, 14, "invalid acknowledgement")
	ErrInvalidAmount           = errorsmod.Register(ModuleName, 15, "invalid token amount")
	ErrInvalidDenom            = errorsmod.Register(ModuleName, 16, "invalid denomination")
)
