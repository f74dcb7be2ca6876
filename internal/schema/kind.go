package schema

// Kind is the closed set of record kinds the validator distinguishes.
type Kind int

const (
	// KindUnrecognized covers every type the validator does not check, and a missing type.
	KindUnrecognized Kind = iota
	// KindEvent is a single schema.org Event.
	KindEvent
	// KindEventSeries is a schema.org EventSeries, optionally listing sub-events.
	KindEventSeries
)

// String returns the schema.org type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "Event"
	case KindEventSeries:
		return "EventSeries"
	case KindUnrecognized:
		return "Unrecognized"
	default:
		return "Unrecognized"
	}
}

// KindOf resolves the declared type of r.
func KindOf(r Record) Kind {
	switch r.TypeName() {
	case "Event":
		return KindEvent
	case "EventSeries":
		return KindEventSeries
	default:
		return KindUnrecognized
	}
}
