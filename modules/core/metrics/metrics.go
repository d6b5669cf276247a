package metrics

// Prometheus metric labels.
const (
	LabelSourcePort         = "source_port"
	LabelSourceChannel      = "source_channel"
	LabelDestinationPort    = "destination_port"
	LabelDestinationChannel = "destination_channel"
	LabelDenom              = "denom"
	LabelSuccess            = "success"
	LabelTimeoutType        = "timeout_type"
	LabelReplyID            = "reply_id"
)
