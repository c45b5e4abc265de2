package eventbus

type PlanEventType string

const (
	PlanEventGenerated PlanEventType = "Generated"
	PlanEventRefined   PlanEventType = "Refined"
)

type PlanEvent struct {
	Type    PlanEventType
	PlanID  uint
	TraceID string
	Source  string // structured, mapping, free_text, refined
}

func (e PlanEvent) EventType() PlanEventType { return e.Type }

type PlanEventHandler = Handler[PlanEvent]
type PlanEventBus = Bus[PlanEventType, PlanEvent]

func NewPlanEventBus() *PlanEventBus {
	return NewBus[PlanEventType, PlanEvent]()
}
