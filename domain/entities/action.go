package entities

// ActionType represents the interaction a generated step performs
type ActionType string

const (
	ActionClick         ActionType = "click"
	ActionTypeText      ActionType = "type"
	ActionHover         ActionType = "hover"
	ActionScroll        ActionType = "scroll"
	ActionAssertVisible ActionType = "assert-visible"
	ActionWait          ActionType = "wait"
	ActionWaitClick     ActionType = "wait-click"
)

// ActionOption describes an action for selection prompts
type ActionOption struct {
	Type        ActionType
	Icon        string
	Label       string
	Description string
}

// Actions lists every supported action in prompt order
var Actions = []ActionOption{
	{ActionClick, "[CLICK]", "Click", "Simulate a mouse click on the element"},
	{ActionTypeText, "[TYPE]", "Type", "Enter text into an input field"},
	{ActionHover, "[HOVER]", "Hover", "Hover over the element"},
	{ActionScroll, "[SCROLL]", "ScrollIntoView", "Scroll element into view"},
	{ActionAssertVisible, "[ASSERT]", "Assert Visible", "Assert that element is visible"},
	{ActionWait, "[WAIT]", "Wait", "Wait for element to be ready (no action)"},
	{ActionWaitClick, "[WAIT+CLICK]", "Wait & Click", "Wait for element then click"},
}

// ParseActionType converts a user-provided action name into an ActionType
func ParseActionType(s string) (ActionType, bool) {
	for _, a := range Actions {
		if string(a.Type) == s {
			return a.Type, true
		}
	}
	return "", false
}

// WaitState is the condition asserted before the action runs
type WaitState string

const (
	WaitNone    WaitState = "None"
	WaitVisible WaitState = "be.visible"
	WaitExist   WaitState = "exist"
	WaitEnabled WaitState = "be.enabled"
)

// WaitStates lists the wait states in prompt order
var WaitStates = []WaitState{WaitNone, WaitVisible, WaitExist, WaitEnabled}

// ParseWaitState converts a user-provided wait name into a WaitState
func ParseWaitState(s string) (WaitState, bool) {
	for _, w := range WaitStates {
		if string(w) == s {
			return w, true
		}
	}
	return "", false
}

// Step is one recorded interaction in the generated user flow
type Step struct {
	Accessor string
	Locator  Locator
	Action   ActionType
	Wait     WaitState
	Force    bool
	Multiple bool
	Text     string // Only used by ActionTypeText
}

// GeneratedCode holds the source written for a single step
type GeneratedCode struct {
	PageObject string
	Step       string
}
