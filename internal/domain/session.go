package domain

// Step is the wizard position of an in-progress booking session
type Step int

const (
	StepSelectService Step = 0
	StepSelectSlot    Step = 1
	StepEnterDetails  Step = 2
)

// Valid returns true for a known wizard step
func (s Step) Valid() bool {
	return s >= StepSelectService && s <= StepEnterDetails
}

// String returns the step name used in logs and API payloads
func (s Step) String() string {
	switch s {
	case StepSelectService:
		return "select_service"
	case StepSelectSlot:
		return "select_slot"
	case StepEnterDetails:
		return "enter_details"
	default:
		return "unknown"
	}
}
