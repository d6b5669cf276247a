package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ics20-ledger/internal/errors"
)

// ChannelStateEntry is the genesis form of a single ledger entry.
type ChannelStateEntry struct {
	ChannelID string       `json:"channel_id"`
	Denom     string       `json:"denom"`
	State     ChannelState `json:"state"`
}

// GenesisState defines the cw20-ics20 genesis state
type GenesisState struct {
	Channels      []ChannelInfo       `json:"channels"`
	ChannelStates []ChannelStateEntry `json:"channel_states"`
	AllowList     []AllowedInfo       `json:"allow_list"`
}

// NewGenesisState creates a new cw20-ics20 GenesisState instance.
func NewGenesisState(channels []ChannelInfo, states []ChannelStateEntry, allowList []AllowedInfo) *GenesisState {
	return &GenesisState{
		Channels:      channels,
		ChannelStates: states,
		AllowList:     allowList,
	}
}

// DefaultGenesisState returns a GenesisState with no channels and an empty allow list.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState([]ChannelInfo{}, []ChannelStateEntry{}, []AllowedInfo{})
}

// WithAllowList returns a copy of the genesis state with the given entries
// added to the allow list. Entries for a contract already listed replace it.
func (gs GenesisState) WithAllowList(entries []AllowedInfo) *GenesisState {
	index := make(map[string]int, len(gs.AllowList))
	allowList := make([]AllowedInfo, 0, len(gs.AllowList)+len(entries))
	for _, entry := range append(append([]AllowedInfo{}, gs.AllowList...), entries...) {
		if i, found := index[entry.Contract]; found {
			allowList[i] = entry
			continue
		}
		index[entry.Contract] = len(allowList)
		allowList = append(allowList, entry)
	}

	gs.AllowList = allowList
	return &gs
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	channels := make(map[string]bool, len(gs.Channels))
	for i, channel := range gs.Channels {
		if err := channel.Validate(); err != nil {
			return errorsmod.Wrapf(err, "invalid channel at index %d", i)
		}
		if channels[channel.ID] {
			return errorsmod.Wrapf(ErrChannelAlreadyExists, "duplicate channel %s", channel.ID)
		}
		channels[channel.ID] = true
	}

	seen := make(map[string]bool, len(gs.ChannelStates))
	for i, entry := range gs.ChannelStates {
		if !channels[entry.ChannelID] {
			return errorsmod.Wrapf(ErrChannelNotFound, "channel state at index %d references unknown channel %s", i, entry.ChannelID)
		}
		if entry.Denom == "" {
			return errorsmod.Wrapf(ErrInvalidDenom, "channel state at index %d has an empty denom", i)
		}
		if isNilUint(entry.State.Outstanding) || isNilUint(entry.State.TotalSent) {
			return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "channel state at index %d has no amounts", i)
		}
		key := fmt.Sprintf("%s/%s", entry.ChannelID, entry.Denom)
		if seen[key] {
			return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "duplicate channel state %s", key)
		}
		seen[key] = true
	}

	contracts := make(map[string]bool, len(gs.AllowList))
	for i, allowed := range gs.AllowList {
		if err := allowed.Validate(); err != nil {
			return errorsmod.Wrapf(err, "invalid allow list entry at index %d", i)
		}
		if contracts[allowed.Contract] {
			return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "duplicate allow list entry %s", allowed.Contract)
		}
		contracts[allowed.Contract] = true
	}

	return nil
}

func isNilUint(u sdkmath.Uint) bool {
	return u == sdkmath.Uint{}
}
