// Package errors provides structured, actionable error messages for the tagr
// command line tools.
//
// Each error has a unique code (e.g., "E101") registered with a category, a
// short message and a longer explanation. Callers add detail and a
// suggestion, then print the error with Format:
//
//	err := errors.New("E101").
//	    WithDetail(`No element matches "#app"`).
//	    WithSuggestion(`Add <div id="app"></div> to the page`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Root element not found
//	//
//	//   Mount could not find the element the view is attached to.
//	//
//	//   No element matches "#app"
//	//
//	//   Hint: Add <div id="app"></div> to the page
//
// # Error Categories
//
//   - runtime: binding engine failures surfaced to the caller
//   - config: tagr.json loading and validation
//   - protocol: inspector commands and websocket traffic
//   - cli: command line usage
package errors
