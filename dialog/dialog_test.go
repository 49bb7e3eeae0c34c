package dialog

import (
	"errors"
	"strings"
	"testing"
)

func TestArrayContentRejected(t *testing.T) {
	payloads := []any{
		[]string{"a", "b"},
		[3]int{1, 2, 3},
		[]struct{ X int }{{1}},
	}

	for _, p := range payloads {
		s := New("Title", p)
		if _, err := s.Build(); !errors.Is(err, ErrArrayContent) {
			t.Errorf("content %T: err = %v, want ErrArrayContent", p, err)
		}
	}
}

func TestUnsupportedContentNamesType(t *testing.T) {
	s := New("Title", 42)
	_, err := s.Build()

	var uerr *UnsupportedContentError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want UnsupportedContentError", err)
	}
	if uerr.TypeName != "int" {
		t.Errorf("TypeName = %q, want int", uerr.TypeName)
	}
	if !strings.Contains(err.Error(), "int") {
		t.Errorf("message %q does not name the type", err)
	}
}

func TestNilContentRejected(t *testing.T) {
	if _, err := New("Title", nil).Build(); err == nil {
		t.Fatal("nil content accepted")
	}
}

func TestStringContentSingleTextElement(t *testing.T) {
	doc, err := New("Notice", "maintenance at 22:00").Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	body := doc.Window.Content.Child.(StackPanel)
	var texts []TextBlock
	for _, n := range body.Children {
		if tb, ok := n.(TextBlock); ok && tb.FontWeight != "Bold" {
			texts = append(texts, tb)
		}
	}
	if len(texts) != 1 {
		t.Fatalf("got %d content text elements, want 1", len(texts))
	}
	if texts[0].Text != "maintenance at 22:00" {
		t.Errorf("Text = %q", texts[0].Text)
	}
	if texts[0].FontSize != DefaultContentFontSize {
		t.Errorf("FontSize = %v, want default %v", texts[0].FontSize, DefaultContentFontSize)
	}
}

func TestRecordContentRowsInFieldOrder(t *testing.T) {
	payload := struct {
		Hostname string
		Uptime   string
		RAM      int
	}{"ws042", "3d4h", 32}

	doc, err := New("System", payload).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	body := doc.Window.Content.Child.(StackPanel)
	var names []string
	for _, n := range body.Children {
		b, ok := n.(Border)
		if !ok {
			continue
		}
		pair := b.Child.(StackPanel)
		names = append(names, pair.Children[0].(TextBlock).Text)
	}

	want := []string{"Hostname", "Uptime", "RAM"}
	if len(names) != len(want) {
		t.Fatalf("got %d rows %v, want %d", len(names), names, len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("row %d = %q, want %q (declaration order)", i, names[i], want[i])
		}
	}
}

func TestDefaults(t *testing.T) {
	s := New("T", "c")

	if s.CornerRadius != 15 {
		t.Errorf("CornerRadius = %d, want 15", s.CornerRadius)
	}
	if s.ContentFontSize != 12 {
		t.Errorf("ContentFontSize = %v, want 12", s.ContentFontSize)
	}
	if s.Buttons != ButtonsOK {
		t.Errorf("Buttons = %q, want OK", s.Buttons)
	}
}

func TestValidateRejectsUnknownStyle(t *testing.T) {
	cases := []*Spec{
		New("T", "c", WithTitleColor("Chartreuse4")),
		New("T", "c", WithFontFamily("Comic Sans MS")),
		New("T", "c", WithButtons(ButtonSet("Maybe"))),
		New("T", "c", WithCustomButtons()),
		New("T", "c", WithCustomButtons("OK", "")),
		New("T", "c", WithContentFontSize(0)),
	}
	for i, s := range cases {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: invalid spec passed validation", i)
		}
	}
}

func TestButtonLabels(t *testing.T) {
	tests := []struct {
		set  ButtonSet
		want []string
	}{
		{ButtonsOK, []string{"OK"}},
		{ButtonsYesNoCancel, []string{"Yes", "No", "Cancel"}},
		{ButtonsAbortRetryIgnore, []string{"Abort", "Retry", "Ignore"}},
	}
	for _, tt := range tests {
		got := New("T", "c", WithButtons(tt.set)).ButtonLabels()
		if len(got) != len(tt.want) {
			t.Errorf("%s: labels = %v", tt.set, got)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s[%d] = %q, want %q", tt.set, i, got[i], tt.want[i])
			}
		}
	}

	custom := New("T", "c", WithCustomButtons("Install", "Postpone"))
	got := custom.ButtonLabels()
	if len(got) != 2 || got[0] != "Install" || got[1] != "Postpone" {
		t.Errorf("custom labels = %v", got)
	}
}

func TestMarkupEscapesContent(t *testing.T) {
	doc, err := New("T", `<Button Content="pwned"/>`).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	markup, err := doc.Markup()
	if err != nil {
		t.Fatalf("Markup: %v", err)
	}
	if strings.Contains(markup, `<Button Content="pwned"/>`) {
		t.Error("content spliced into markup unescaped")
	}
	if !strings.Contains(markup, "&lt;Button") {
		t.Errorf("content not escaped:\n%s", markup)
	}
}

func TestMarkupShape(t *testing.T) {
	doc, err := New("Notice", "hello",
		WithButtons(ButtonsYesNo),
		WithShadow(true),
	).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	markup, err := doc.Markup()
	if err != nil {
		t.Fatalf("Markup: %v", err)
	}

	for _, want := range []string{
		`WindowStyle="None"`,
		`ResizeMode="NoResize"`,
		`CornerRadius="15"`,
		`<Border.Effect>`,
		`<DropShadowEffect`,
		`Content="Yes"`,
		`Content="No"`,
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing %s:\n%s", want, markup)
		}
	}
}
