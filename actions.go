package main

// ActionDefinition defines an action with its default keybindings and description
type ActionDefinition struct {
	Name        string
	Keys        []string
	Description string
}

// actionDefinitions contains all action definitions with default keybindings and descriptions
var actionDefinitions = []ActionDefinition{
	{"quit", []string{"Escape", "KeyQ"}, "Quit application"},
	{"help", []string{"Shift+Slash"}, "Show/hide help"},
	{"info", []string{"KeyI"}, "Show/hide info display"},
	{"next", []string{"ArrowRight", "Space", "KeyN"}, "Next image"},
	{"previous", []string{"ArrowLeft", "Backspace", "KeyP"}, "Previous image"},
	{"random", []string{"KeyR"}, "Random image"},
	{"delete", []string{"Delete", "KeyX"}, "Remove image from the list (file is kept)"},
	{"reset_view", []string{"KeyF", "Key0"}, "Fit image to window"},
	{"zoom_in", []string{"Equal", "Shift+Equal"}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, "Zoom out"},
	{"fullscreen", []string{"Enter", "KeyZ"}, "Toggle fullscreen"},
	{"cycle_sort", []string{"Shift+KeyS"}, "Cycle sort method (Entry/Natural/Simple)"},
}

// ActionExecutor provides centralized action execution logic
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface.
// It returns false for unknown actions.
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions) bool {
	switch action {
	case "quit":
		inputActions.Quit()
	case "help":
		inputActions.ToggleHelp()
	case "info":
		inputActions.ToggleInfo()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "random":
		inputActions.NavigateRandom()
	case "delete":
		inputActions.DeleteCurrent()
	case "reset_view":
		inputActions.ResetView()
	case "zoom_in":
		inputActions.ZoomIn()
	case "zoom_out":
		inputActions.ZoomOut()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "cycle_sort":
		inputActions.CycleSortMethod()
	default:
		return false
	}

	return true
}

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keys := make([]string, len(action.Keys))
		copy(keys, action.Keys)
		keybindings[action.Name] = keys
	}
	return keybindings
}
