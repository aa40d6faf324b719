package session

import (
	"context"
	"fmt"
	"strings"
)

// LengthPreset selects how verbose the requested summary should be.
type LengthPreset string

const (
	PresetShort    LengthPreset = "short"
	PresetMedium   LengthPreset = "medium"
	PresetDetailed LengthPreset = "detailed"

	DefaultPreset = PresetMedium
)

// Presets lists the selectable options in display order.
var Presets = []LengthPreset{PresetShort, PresetMedium, PresetDetailed}

// ParsePreset validates a user supplied preset name.
func ParsePreset(value string) (LengthPreset, error) {
	preset := LengthPreset(strings.ToLower(strings.TrimSpace(value)))
	if !preset.Valid() {
		return "", fmt.Errorf("unknown length preset %q (want short, medium or detailed)", value)
	}
	return preset, nil
}

// Valid reports whether p is one of the three presets.
func (p LengthPreset) Valid() bool {
	switch p {
	case PresetShort, PresetMedium, PresetDetailed:
		return true
	}
	return false
}

// Directive is the instruction appended to the text for this preset.
func (p LengthPreset) Directive() string {
	switch p {
	case PresetShort:
		return "Summarize the text above in 1-2 sentences."
	case PresetDetailed:
		return "Summarize the key points of the text above in detail."
	default:
		return "Summarize the text above in 3-4 sentences."
	}
}

// BuildPayload joins the raw input and the preset directive into the single
// text blob sent to the service.
func BuildPayload(input string, preset LengthPreset) string {
	return input + "\n\n" + preset.Directive()
}

// State is the mutable record behind one summarization session.
type State struct {
	InputText    string       `json:"inputText"`
	LengthPreset LengthPreset `json:"lengthPreset"`
	IsSubmitting bool         `json:"isSubmitting"`
	LastError    string       `json:"lastError"`
	LastSummary  string       `json:"lastSummary"`
}

// View is the presentation contract derived from State.
type View struct {
	CanSubmit   bool           `json:"canSubmit"`
	SubmitLabel string         `json:"submitLabel"`
	ShowError   bool           `json:"showError"`
	ShowResult  bool           `json:"showResult"`
	Presets     []LengthPreset `json:"presets"`
}

const (
	SubmitLabelIdle = "Summarize"
	SubmitLabelBusy = "Summarizing..."

	CopiedNotice = "Summary copied to clipboard!"
)

// ViewOf derives the presentation contract for s.
func ViewOf(s State) View {
	label := SubmitLabelIdle
	if s.IsSubmitting {
		label = SubmitLabelBusy
	}
	presets := make([]LengthPreset, len(Presets))
	copy(presets, Presets)
	return View{
		CanSubmit:   !s.IsSubmitting && strings.TrimSpace(s.InputText) != "",
		SubmitLabel: label,
		ShowError:   s.LastError != "",
		ShowResult:  s.LastSummary != "",
		Presets:     presets,
	}
}

// Clipboard receives copied summaries.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier tells the user an action completed.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }
