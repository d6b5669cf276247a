package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

var (
	// ChannelInfoValueCodec encodes ChannelInfo store values
	ChannelInfoValueCodec collcodec.ValueCodec[ChannelInfo] = jsonValueCodec[ChannelInfo]{name: "ChannelInfo"}
	// ChannelStateValueCodec encodes ChannelState store values
	ChannelStateValueCodec collcodec.ValueCodec[ChannelState] = jsonValueCodec[ChannelState]{name: "ChannelState"}
	// AllowedInfoValueCodec encodes AllowedInfo store values
	AllowedInfoValueCodec collcodec.ValueCodec[AllowedInfo] = jsonValueCodec[AllowedInfo]{name: "AllowedInfo"}
)

// jsonValueCodec stores values with their JSON encoding, the same form in which
// they are exported in genesis and returned by queries.
type jsonValueCodec[T any] struct {
	name string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("%s: %w", c.ValueType(), err)
	}
	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (c jsonValueCodec[T]) ValueType() string {
	return ModuleName + "/" + c.name
}
