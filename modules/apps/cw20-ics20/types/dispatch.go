package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
)

// Cw20ExecuteMsg is the subset of the cw20 execute API used to pay out tokens.
type Cw20ExecuteMsg struct {
	Transfer *Cw20TransferMsg `json:"transfer,omitempty"`
}

// Cw20TransferMsg moves amount tokens from the caller to recipient.
type Cw20TransferMsg struct {
	Recipient string       `json:"recipient"`
	Amount    sdkmath.Uint `json:"amount"`
}

// ReplyArgs is attached as payload to the payment dispatched for a received
// packet. It identifies the ledger entry to restore when the payment fails.
type ReplyArgs struct {
	Channel string       `json:"channel"`
	Denom   string       `json:"denom"`
	Amount  sdkmath.Uint `json:"amount"`
}

// GetBytes returns the JSON encoding of the reply arguments.
func (ra ReplyArgs) GetBytes() []byte {
	bz, err := json.Marshal(ra)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalReplyArgs decodes the payload of a reply.
func UnmarshalReplyArgs(bz []byte) (ReplyArgs, error) {
	var args ReplyArgs
	if err := json.Unmarshal(bz, &args); err != nil {
		return ReplyArgs{}, err
	}
	return args, nil
}
