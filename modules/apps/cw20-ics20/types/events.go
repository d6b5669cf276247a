package types

// cw20-ics20 events
const (
	EventTypePacket          = "fungible_token_packet"
	EventTypeTimeout         = "timeout"
	EventTypeChannelConnect  = "channel_connect"
	EventTypeDispatchFailure = "dispatch_failure"

	AttributeKeyAction       = "action"
	AttributeKeySender       = "sender"
	AttributeKeyReceiver     = "receiver"
	AttributeKeyDenom        = "denom"
	AttributeKeyAmount       = "amount"
	AttributeKeyAckSuccess   = "success"
	AttributeKeyAckError     = "error"
	AttributeKeyChannelID    = "channel_id"
	AttributeKeyCounterparty = "counterparty"
	AttributeKeyConnectionID = "connection_id"
	AttributeKeyReplyID      = "reply_id"

	ActionReceive     = "receive"
	ActionAcknowledge = "acknowledge"
)
