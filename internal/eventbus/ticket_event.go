package eventbus

type TicketEventType string

const (
	TicketEventPushed TicketEventType = "Pushed"
)

// PushedTicket 一条成功创建的外部工单
type PushedTicket struct {
	Summary     string
	Description string
	Key         string
	URL         string
}

type TicketEvent struct {
	Type    TicketEventType
	Tickets []PushedTicket
}

func (e TicketEvent) EventType() TicketEventType { return e.Type }

type TicketEventHandler = Handler[TicketEvent]
type TicketEventBus = Bus[TicketEventType, TicketEvent]

func NewTicketEventBus() *TicketEventBus {
	return NewBus[TicketEventType, TicketEvent]()
}
