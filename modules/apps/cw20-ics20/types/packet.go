package types

import (
	"encoding/json"
	"math"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
)

// maxWireAmountBits is the width of the amount field on the wire (Uint128).
const maxWireAmountBits = 128

// TransferPacket defines the ICS20 packet data. It is compatible with the JSON
// serialization of FungibleTokenPacketData, minus the memo.
type TransferPacket struct {
	// amount of tokens to transfer is encoded as a string, but limited to u64 max
	Amount sdkmath.Uint `json:"amount"`
	// the token denomination to be transferred
	Denom string `json:"denom"`
	// the recipient address on the destination chain
	Receiver string `json:"receiver"`
	// the sender address
	Sender string `json:"sender"`
}

// transferPacketJSON is the wire form of TransferPacket, the amount is parsed
// separately so that malformed amounts produce a typed error.
type transferPacketJSON struct {
	Amount   string `json:"amount"`
	Denom    string `json:"denom"`
	Receiver string `json:"receiver"`
	Sender   string `json:"sender"`
}

// NewTransferPacket constructs a new TransferPacket instance
func NewTransferPacket(amount sdkmath.Uint, denom, sender, receiver string) TransferPacket {
	return TransferPacket{
		Amount:   amount,
		Denom:    denom,
		Receiver: receiver,
		Sender:   sender,
	}
}

// Validate rejects amounts outside of the 64-bit range.
func (p TransferPacket) Validate() error {
	if p.Amount.GT(sdkmath.NewUint(math.MaxUint64)) {
		return errorsmod.Wrapf(ErrAmountOverflow, "amount %s exceeds %d", p.Amount, uint64(math.MaxUint64))
	}
	return nil
}

// GetBytes returns the sorted JSON encoding of the packet data.
func (p TransferPacket) GetBytes() []byte {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(bz)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *TransferPacket) UnmarshalJSON(bz []byte) error {
	var raw transferPacketJSON
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}

	amount, ok := new(big.Int).SetString(raw.Amount, 10)
	if !ok || amount.Sign() < 0 {
		return errorsmod.Wrapf(ErrInvalidAmount, "unable to parse transfer amount (%s) into an unsigned integer", raw.Amount)
	}
	if amount.BitLen() > maxWireAmountBits {
		return errorsmod.Wrapf(ErrAmountOverflow, "amount %s exceeds %d bits", raw.Amount, maxWireAmountBits)
	}

	*p = TransferPacket{
		Amount:   sdkmath.NewUintFromBigInt(amount),
		Denom:    raw.Denom,
		Receiver: raw.Receiver,
		Sender:   raw.Sender,
	}
	return nil
}

// UnmarshalPacketData decodes and validates ICS20 packet data.
func UnmarshalPacketData(bz []byte) (TransferPacket, error) {
	var data TransferPacket
	if err := json.Unmarshal(bz, &data); err != nil {
		if errorsmod.IsOf(err, ErrAmountOverflow, ErrInvalidAmount) {
			return TransferPacket{}, err
		}
		return TransferPacket{}, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "cannot unmarshal ICS-20 transfer packet data: %s", err)
	}

	if err := data.Validate(); err != nil {
		return TransferPacket{}, err
	}

	return data, nil
}
