package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category    Category
	Message     string
	Explanation string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Runtime (E100-E119)

	"E101": {
		Category:    CategoryRuntime,
		Message:     "Root element not found",
		Explanation: "Mount could not find the element the view is attached to.",
	},
	"E102": {
		Category:    CategoryRuntime,
		Message:     "Unknown demo",
		Explanation: "The requested demo application does not exist.",
	},

	// Configuration (E120-E139)

	"E120": {
		Category:    CategoryConfig,
		Message:     "Invalid configuration file",
		Explanation: "tagr.json could not be read or parsed.",
	},
	"E121": {
		Category:    CategoryConfig,
		Message:     "Configuration file not found",
		Explanation: "No tagr.json was found in the directory or any of its parents.",
	},
	"E122": {
		Category:    CategoryConfig,
		Message:     "Invalid port",
		Explanation: "The inspector port must be between 0 and 65535.",
	},
	"E123": {
		Category:    CategoryConfig,
		Message:     "Invalid log level",
		Explanation: "The log level must be one of debug, info, warn or error.",
	},

	// Inspector protocol (E140-E159)

	"E140": {
		Category:    CategoryProtocol,
		Message:     "Inspector failed to start",
		Explanation: "The inspector HTTP server could not listen on the configured address.",
	},
	"E141": {
		Category:    CategoryProtocol,
		Message:     "Invalid inspector command",
		Explanation: "The websocket message is not a valid command.",
	},
	"E142": {
		Category:    CategoryProtocol,
		Message:     "Node not found",
		Explanation: "The node path does not address a node of the inspected document.",
	},

	// Command line (E160-E179)

	"E160": {
		Category:    CategoryCLI,
		Message:     "Invalid flag value",
		Explanation: "A command line flag has a value the command cannot use.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template Template) {
	registry[code] = template
}
