package ibctesting

import (
	"errors"
	"slices"

	testifysuite "github.com/stretchr/testify/suite"

	abci "github.com/cometbft/cometbft/abci/types"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/ics20-ledger/modules/apps/cw20-ics20/types"
)

// ParseChannelIDFromEvents parses events emitted from a channel connect and
// returns the registered channel identifier.
func ParseChannelIDFromEvents(events []abci.Event) (string, error) {
	for _, ev := range events {
		if ev.Type == types.EventTypeChannelConnect {
			if attribute, found := attributeByKey(ev.Attributes, types.AttributeKeyChannelID); found {
				return attribute.Value, nil
			}
		}
	}
	return "", errors.New("channel identifier event attribute not found")
}

// ParseAckErrorFromEvents returns the error recorded by the first fungible token
// packet event that reports one.
func ParseAckErrorFromEvents(events []abci.Event) (string, error) {
	for _, ev := range events {
		if ev.Type == types.EventTypePacket {
			if attribute, found := attributeByKey(ev.Attributes, types.AttributeKeyAckError); found {
				return attribute.Value, nil
			}
		}
	}
	return "", errors.New("acknowledgement error event attribute not found")
}

// AttributeValue returns the value of the response attribute with the given key.
func AttributeValue(attributes []wasmvmtypes.EventAttribute, key string) (string, bool) {
	idx := slices.IndexFunc(attributes, func(a wasmvmtypes.EventAttribute) bool { return a.Key == key })
	if idx == -1 {
		return "", false
	}
	return attributes[idx].Value, true
}

// AssertEvents requires every expected event to be emitted. An emitted event
// matches when it has the same type and exactly the expected attributes, in any
// order. The indexed flag of an attribute is ignored.
func AssertEvents(suite *testifysuite.Suite, expected, actual []abci.Event) {
	for _, want := range expected {
		found := slices.ContainsFunc(actual, func(got abci.Event) bool {
			return matchesEvent(want, got)
		})
		suite.Require().True(found, "event %s with attributes %v not emitted", want.Type, want.Attributes)
	}
}

func matchesEvent(want, got abci.Event) bool {
	if want.Type != got.Type || len(want.Attributes) != len(got.Attributes) {
		return false
	}

	for _, attr := range want.Attributes {
		value, found := attributeByKey(got.Attributes, attr.Key)
		if !found || value.Value != attr.Value {
			return false
		}
	}
	return true
}

func attributeByKey(attributes []abci.EventAttribute, key string) (abci.EventAttribute, bool) {
	idx := slices.IndexFunc(attributes, func(a abci.EventAttribute) bool { return a.Key == key })
	if idx == -1 {
		return abci.EventAttribute{}, false
	}
	return attributes[idx], true
}
