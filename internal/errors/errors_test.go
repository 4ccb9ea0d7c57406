package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"root not found", "E101", "Root element not found", CategoryRuntime},
		{"config error", "E120", "Invalid configuration file", CategoryConfig},
		{"protocol error", "E141", "Invalid inspector command", CategoryProtocol},
		{"unknown error code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "demo %q not found", "chess")
	if err.Message != `demo "chess" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestError_Error(t *testing.T) {
	err := New("E101").WithDetail(`no element matches "#app"`)
	want := `E101: Root element not found: no element matches "#app"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &Error{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E101") != nil {
		t.Error("FromError(nil) should return nil")
	}

	base := stderrors.New("boom")
	wrapped := FromError(base, "E140")
	if wrapped.Code != "E140" || !stderrors.Is(wrapped, base) {
		t.Errorf("expected E140 wrapping base, got %v", wrapped)
	}

	existing := New("E122")
	if got := FromError(fmt.Errorf("context: %w", existing), "E120"); got != existing {
		t.Errorf("expected the existing *Error to be returned, got %v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("E101").
		WithDetail(`No element matches "#app"`).
		WithSuggestion(`Add <div id="app"></div> to the page`).
		WithExample("tagr.MustMount(doc, \"#app\", view)").
		Format()

	for _, want := range []string{
		"ERROR E101: Root element not found",
		"Mount could not find the element the view is attached to.",
		`No element matches "#app"`,
		`Hint: Add <div id="app"></div> to the page`,
		"Example:",
		"    tagr.MustMount",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() must not emit ANSI codes when colors are disabled")
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, fmt.Errorf("load: %w", New("E121")))
	if !strings.Contains(buf.String(), "ERROR E121: Configuration file not found") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 40), 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line %q longer than 20", l)
		}
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
}

func TestRegistry(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 || codes[0] != "E101" {
		t.Fatalf("expected sorted codes starting at E101, got %v", codes)
	}
	Register("E900", Template{Category: CategoryCLI, Message: "custom"})
	if tpl, ok := GetTemplate("E900"); !ok || tpl.Message != "custom" {
		t.Errorf("expected registered template, got %+v %v", tpl, ok)
	}
}
