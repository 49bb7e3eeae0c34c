// Package dialog builds parameterized popup dialogs as typed document
// trees serialized to toolkit markup, and drives their modal display
// through a caller-supplied Renderer.
package dialog

import (
	"errors"
	"fmt"
	"time"
)

// ButtonSet names one of the fixed button combinations.
type ButtonSet string

const (
	ButtonsOK               ButtonSet = "OK"
	ButtonsOKCancel         ButtonSet = "OKCancel"
	ButtonsYesNo            ButtonSet = "YesNo"
	ButtonsYesNoCancel      ButtonSet = "YesNoCancel"
	ButtonsRetryCancel      ButtonSet = "RetryCancel"
	ButtonsAbortRetryIgnore ButtonSet = "AbortRetryIgnore"
	// ButtonsCustom uses the caller-supplied label list instead of a
	// predefined combination.
	ButtonsCustom ButtonSet = "Custom"
)

var buttonLabels = map[ButtonSet][]string{
	ButtonsOK:               {"OK"},
	ButtonsOKCancel:         {"OK", "Cancel"},
	ButtonsYesNo:            {"Yes", "No"},
	ButtonsYesNoCancel:      {"Yes", "No", "Cancel"},
	ButtonsRetryCancel:      {"Retry", "Cancel"},
	ButtonsAbortRetryIgnore: {"Abort", "Retry", "Ignore"},
}

// Colors is the fixed set of brush names accepted for dialog styling.
// The set is enumerated at compile time and checked strictly; no
// platform introspection happens at call time.
var Colors = map[string]bool{
	"Black": true, "White": true, "Gray": true, "DimGray": true,
	"LightGray": true, "Silver": true, "Red": true, "DarkRed": true,
	"Green": true, "DarkGreen": true, "Blue": true, "SteelBlue": true,
	"Navy": true, "Orange": true, "Gold": true, "Yellow": true,
	"Purple": true, "Teal": true, "Transparent": true,
}

// Fonts is the fixed set of font families accepted for dialog text.
var Fonts = map[string]bool{
	"Segoe UI": true, "Arial": true, "Calibri": true, "Consolas": true,
	"Tahoma": true, "Verdana": true, "Times New Roman": true,
	"Courier New": true,
}

// Documented defaults.
const (
	DefaultCornerRadius    = 15
	DefaultContentFontSize = 12
	DefaultTitleFontSize   = 14
	DefaultFontFamily      = "Segoe UI"
)

var (
	// ErrArrayContent is returned when the content payload is an array
	// or slice, which the dialog cannot render.
	ErrArrayContent = errors.New("array content is not supported")
)

// UnsupportedContentError reports a content payload of an unrenderable
// type.
type UnsupportedContentError struct {
	TypeName string
}

func (e *UnsupportedContentError) Error() string {
	return fmt.Sprintf("unsupported content type %s", e.TypeName)
}

// Spec is a full dialog description: content payload plus style and
// behavior options. Build once per popup; a Spec is not reused across
// invocations.
type Spec struct {
	Title   string
	Content any

	TitleColor      string
	ContentColor    string
	ButtonColor     string
	BackgroundColor string
	BorderColor     string

	FontFamily      string
	TitleFontSize   float64
	ContentFontSize float64

	CornerRadius int
	Shadow       bool

	Buttons       ButtonSet
	CustomButtons []string

	// Timeout closes the dialog automatically. The close check runs on
	// a fixed one second poll, so sub-second timeouts round up.
	Timeout time.Duration
	Sound   bool

	// ReturnButton makes Show return the label of the activated button.
	ReturnButton bool

	OnLoaded func()
	OnClosed func()

	pollInterval time.Duration
}

// Option mutates a Spec during construction.
type Option func(*Spec)

// New builds a dialog Spec for the given title and content payload with
// the documented defaults applied.
func New(title string, content any, opts ...Option) *Spec {
	s := &Spec{
		Title:           title,
		Content:         content,
		TitleColor:      "White",
		ContentColor:    "White",
		ButtonColor:     "White",
		BackgroundColor: "Black",
		BorderColor:     "DimGray",
		FontFamily:      DefaultFontFamily,
		TitleFontSize:   DefaultTitleFontSize,
		ContentFontSize: DefaultContentFontSize,
		CornerRadius:    DefaultCornerRadius,
		Shadow:          true,
		Buttons:         ButtonsOK,
		pollInterval:    time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func WithTitleColor(c string) Option { return func(s *Spec) { s.TitleColor = c } }

func WithContentColor(c string) Option { return func(s *Spec) { s.ContentColor = c } }

func WithButtonColor(c string) Option { return func(s *Spec) { s.ButtonColor = c } }

func WithBackgroundColor(c string) Option { return func(s *Spec) { s.BackgroundColor = c } }

func WithBorderColor(c string) Option { return func(s *Spec) { s.BorderColor = c } }

func WithFontFamily(f string) Option { return func(s *Spec) { s.FontFamily = f } }

func WithTitleFontSize(v float64) Option { return func(s *Spec) { s.TitleFontSize = v } }

func WithContentFontSize(v float64) Option { return func(s *Spec) { s.ContentFontSize = v } }

func WithCornerRadius(r int) Option { return func(s *Spec) { s.CornerRadius = r } }

func WithShadow(on bool) Option { return func(s *Spec) { s.Shadow = on } }

func WithButtons(b ButtonSet) Option { return func(s *Spec) { s.Buttons = b } }

// WithCustomButtons replaces the predefined sets with the given labels.
func WithCustomButtons(labels ...string) Option {
	return func(s *Spec) {
		s.Buttons = ButtonsCustom
		s.CustomButtons = labels
	}
}

func WithTimeout(d time.Duration) Option { return func(s *Spec) { s.Timeout = d } }

func WithSound() Option { return func(s *Spec) { s.Sound = true } }

func WithReturnButton() Option { return func(s *Spec) { s.ReturnButton = true } }

func WithOnLoaded(fn func()) Option { return func(s *Spec) { s.OnLoaded = fn } }

func WithOnClosed(fn func()) Option { return func(s *Spec) { s.OnClosed = fn } }

// Validate checks all enumerated options against their fixed sets.
func (s *Spec) Validate() error {
	for _, c := range []struct{ name, val string }{
		{"title color", s.TitleColor},
		{"content color", s.ContentColor},
		{"button color", s.ButtonColor},
		{"background color", s.BackgroundColor},
		{"border color", s.BorderColor},
	} {
		if !Colors[c.val] {
			return fmt.Errorf("invalid %s %q", c.name, c.val)
		}
	}

	if !Fonts[s.FontFamily] {
		return fmt.Errorf("invalid font family %q", s.FontFamily)
	}
	if s.TitleFontSize <= 0 || s.ContentFontSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if s.CornerRadius < 0 {
		return fmt.Errorf("corner radius must not be negative")
	}

	if s.Buttons == ButtonsCustom {
		if len(s.CustomButtons) == 0 {
			return fmt.Errorf("custom button set requires at least one label")
		}
		for _, l := range s.CustomButtons {
			if l == "" {
				return fmt.Errorf("custom button labels must not be empty")
			}
		}
	} else if _, ok := buttonLabels[s.Buttons]; !ok {
		return fmt.Errorf("invalid button set %q", s.Buttons)
	}

	return nil
}

// ButtonLabels returns the labels the dialog will render, in order.
func (s *Spec) ButtonLabels() []string {
	if s.Buttons == ButtonsCustom {
		return s.CustomButtons
	}
	return buttonLabels[s.Buttons]
}
