package ports

// Topics published on swap state transitions.
const (
	TopicSwapCreated   = "swap.created"
	TopicSwapAccepted  = "swap.accepted"
	TopicSwapCancelled = "swap.cancelled"
)

// SwapEvent is the message published to the observability collaborator when a
// swap changes state.
type SwapEvent struct {
	Id        string
	Topic     string
	SwapId    uint64
	Timestamp int64
}

// SwapPublisher defines the methods of the external collaborator notified
// about swap state transitions. Publishing is best-effort: a failure must
// never undo an already committed transition.
type SwapPublisher interface {
	Publish(event SwapEvent) error
}
