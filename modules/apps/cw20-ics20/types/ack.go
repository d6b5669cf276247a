package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
)

const (
	// AckResultKey is the JSON key of a successful acknowledgement
	AckResultKey = "result"
	// AckErrorKey is the JSON key of an error acknowledgement
	AckErrorKey = "error"
)

// successResult is the opaque result written for every successful receive.
var successResult = []byte("1")

// Acknowledgement is the generic ICS acknowledgement. It is either a Result
// carrying opaque bytes or an Error carrying a message, and it is encoded as a
// JSON object holding exactly one of the keys "result" or "error".
type Acknowledgement struct {
	Response isAcknowledgement_Response
}

type isAcknowledgement_Response interface {
	isAcknowledgement_Response()
}

// Acknowledgement_Result is the success variant of an Acknowledgement.
type Acknowledgement_Result struct {
	Result []byte
}

// Acknowledgement_Error is the failure variant of an Acknowledgement.
type Acknowledgement_Error struct {
	Error string
}

func (*Acknowledgement_Result) isAcknowledgement_Response() {}
func (*Acknowledgement_Error) isAcknowledgement_Response()  {}

// NewResultAcknowledgement returns a new instance of Acknowledgement using an Acknowledgement_Result
// type in the Response field.
func NewResultAcknowledgement(result []byte) Acknowledgement {
	return Acknowledgement{
		Response: &Acknowledgement_Result{
			Result: result,
		},
	}
}

// NewSuccessAcknowledgement returns the canonical success acknowledgement.
func NewSuccessAcknowledgement() Acknowledgement {
	return NewResultAcknowledgement(successResult)
}

// NewErrorAcknowledgement returns a new instance of Acknowledgement using an Acknowledgement_Error
// type in the Response field. The error description is kept verbatim so the
// counterparty can surface it to the sender.
func NewErrorAcknowledgement(err error) Acknowledgement {
	return Acknowledgement{
		Response: &Acknowledgement_Error{
			Error: err.Error(),
		},
	}
}

// GetResult returns the result bytes, nil for an error acknowledgement.
func (ack Acknowledgement) GetResult() []byte {
	if res, ok := ack.Response.(*Acknowledgement_Result); ok {
		return res.Result
	}
	return nil
}

// GetError returns the error message, empty for a result acknowledgement.
func (ack Acknowledgement) GetError() string {
	if res, ok := ack.Response.(*Acknowledgement_Error); ok {
		return res.Error
	}
	return ""
}

// Success returns true if the acknowledgement is the result variant.
func (ack Acknowledgement) Success() bool {
	_, ok := ack.Response.(*Acknowledgement_Result)
	return ok
}

// ValidateBasic performs a basic validation of the acknowledgement
func (ack Acknowledgement) ValidateBasic() error {
	switch ack.Response.(type) {
	case *Acknowledgement_Result, *Acknowledgement_Error:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidAcknowledgement, "unsupported acknowledgement response field type %T", ack.Response)
	}
}

// Acknowledgement returns the JSON encoding of the acknowledgement.
func (ack Acknowledgement) Acknowledgement() []byte {
	bz, err := json.Marshal(ack)
	if err != nil {
		panic(err)
	}
	return bz
}

// MarshalJSON implements json.Marshaler
func (ack Acknowledgement) MarshalJSON() ([]byte, error) {
	switch resp := ack.Response.(type) {
	case *Acknowledgement_Result:
		result := resp.Result
		if result == nil {
			result = []byte{}
		}
		return json.Marshal(map[string][]byte{AckResultKey: result})
	case *Acknowledgement_Error:
		return json.Marshal(map[string]string{AckErrorKey: resp.Error})
	default:
		return nil, errorsmod.Wrapf(ErrInvalidAcknowledgement, "unsupported acknowledgement response field type %T", ack.Response)
	}
}

// UnmarshalJSON implements json.Unmarshaler
func (ack *Acknowledgement) UnmarshalJSON(bz []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bz, &fields); err != nil {
		return err
	}
	if len(fields) != 1 {
		return errorsmod.Wrapf(ErrInvalidAcknowledgement, "expected exactly one of %q or %q, got %d fields", AckResultKey, AckErrorKey, len(fields))
	}

	if raw, ok := fields[AckResultKey]; ok {
		var result []byte
		if err := json.Unmarshal(raw, &result); err != nil {
			return err
		}
		ack.Response = &Acknowledgement_Result{Result: result}
		return nil
	}

	if raw, ok := fields[AckErrorKey]; ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		ack.Response = &Acknowledgement_Error{Error: msg}
		return nil
	}

	return errorsmod.Wrapf(ErrInvalidAcknowledgement, "expected exactly one of %q or %q", AckResultKey, AckErrorKey)
}

// UnmarshalAcknowledgement decodes an acknowledgement written by the counterparty.
func UnmarshalAcknowledgement(bz []byte) (Acknowledgement, error) {
	var ack Acknowledgement
	if err := json.Unmarshal(bz, &ack); err != nil {
		return Acknowledgement{}, errorsmod.Wrapf(ibcerrors.ErrUnknownRequest, "cannot unmarshal ICS-20 transfer packet acknowledgement: %v", err)
	}
	return ack, nil
}
