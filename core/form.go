package core

// FormState is one step of the certificate form.
type FormState int

const (
	StateNoEventSelected FormState = iota
	StateEventSelected
	StateNameEntered
	StateSuccess
	StateErrorNoEvent
	StateErrorNameNotFound
	StateErrorRender
)

var formStateNames = [...]string{
	StateNoEventSelected:   "no_event_selected",
	StateEventSelected:     "event_selected",
	StateNameEntered:       "name_entered",
	StateSuccess:           "success",
	StateErrorNoEvent:      "error_no_event",
	StateErrorNameNotFound: "error_name_not_found",
	StateErrorRender:       "error_render",
}

func (s FormState) String() string {
	if s < 0 || int(s) >= len(formStateNames) {
		return "unknown"
	}
	return formStateNames[s]
}

// Form owns the UI state of a single submission. Every mutation goes through
// one of the named transitions below; fields are never assigned from outside.
//
// With no events configured the form behaves like the basic variant and the
// event check is skipped.
type Form struct {
	events map[string]struct{} // allowed event labels (empty = basic variant)
	state  FormState
	event  string
	name   string
}

// NewForm starts in StateNoEventSelected.
func NewForm(events []string) *Form {
	allowed := make(map[string]struct{}, len(events))
	for _, e := range events {
		allowed[e] = struct{}{}
	}
	return &Form{events: allowed, state: StateNoEventSelected}
}

// RequiresEvent reports whether this is the extended (event-selecting) variant.
func (f *Form) RequiresEvent() bool { return len(f.events) > 0 }

// SelectEvent picks an event label. Unknown or empty labels leave the form
// without a selection.
func (f *Form) SelectEvent(event string) {
	if _, ok := f.events[event]; !ok {
		f.event = ""
		f.state = StateNoEventSelected
		return
	}
	f.event = event
	f.state = StateEventSelected
}

// EnterName records the raw submission exactly as typed.
func (f *Form) EnterName(name string) {
	f.name = name
	f.state = StateNameEntered
}

// Submit runs the checks in order: event first (extended variant only), then
// roster membership. A nil error means the form is waiting for Complete.
func (f *Form) Submit(r Roster) error {
	if f.RequiresEvent() && f.event == "" {
		f.state = StateErrorNoEvent
		return ErrNoEvent
	}
	if !r.Contains(f.name) {
		f.state = StateErrorNameNotFound
		return ErrNameNotFound
	}
	f.state = StateNameEntered
	return nil
}

// Complete closes an accepted submission with the render outcome.
func (f *Form) Complete(renderErr error) {
	if renderErr != nil {
		f.state = StateErrorRender
		return
	}
	f.state = StateSuccess
}

// Back returns to the start, dropping the selected event and the name.
func (f *Form) Back() {
	f.event = ""
	f.name = ""
	f.state = StateNoEventSelected
}

func (f *Form) State() FormState { return f.state }
func (f *Form) Event() string    { return f.event }
func (f *Form) Name() string     { return f.name }
