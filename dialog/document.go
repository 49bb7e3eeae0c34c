package dialog

import (
	"encoding/xml"
	"fmt"
)

const presentationNamespace = "http://schemas.microsoft.com/winfx/2006/xaml/presentation"

// Node is one element of the dialog document tree.
type Node interface {
	node()
}

// TextBlock is a single run of text.
type TextBlock struct {
	XMLName      xml.Name `xml:"TextBlock"`
	Text         string   `xml:"Text,attr"`
	FontFamily   string   `xml:"FontFamily,attr,omitempty"`
	FontSize     float64  `xml:"FontSize,attr,omitempty"`
	FontWeight   string   `xml:"FontWeight,attr,omitempty"`
	Foreground   string   `xml:"Foreground,attr,omitempty"`
	TextWrapping string   `xml:"TextWrapping,attr,omitempty"`
	Margin       string   `xml:"Margin,attr,omitempty"`
}

func (TextBlock) node() {}

// Button is a clickable dialog button.
type Button struct {
	XMLName    xml.Name `xml:"Button"`
	Content    string   `xml:"Content,attr"`
	FontFamily string   `xml:"FontFamily,attr,omitempty"`
	FontSize   float64  `xml:"FontSize,attr,omitempty"`
	Foreground string   `xml:"Foreground,attr,omitempty"`
	Background string   `xml:"Background,attr,omitempty"`
	MinWidth   int      `xml:"MinWidth,attr,omitempty"`
	Margin     string   `xml:"Margin,attr,omitempty"`
}

func (Button) node() {}

// StackPanel stacks child nodes vertically or horizontally.
type StackPanel struct {
	XMLName             xml.Name `xml:"StackPanel"`
	Orientation         string   `xml:"Orientation,attr,omitempty"`
	HorizontalAlignment string   `xml:"HorizontalAlignment,attr,omitempty"`
	Margin              string   `xml:"Margin,attr,omitempty"`
	Children            []Node
}

func (StackPanel) node() {}

// DropShadowEffect is the window shadow.
type DropShadowEffect struct {
	XMLName     xml.Name `xml:"DropShadowEffect"`
	BlurRadius  int      `xml:"BlurRadius,attr"`
	ShadowDepth int      `xml:"ShadowDepth,attr"`
	Opacity     float64  `xml:"Opacity,attr"`
}

// BorderEffect is the property element wrapping a border's effect.
type BorderEffect struct {
	XMLName xml.Name `xml:"Border.Effect"`
	Shadow  DropShadowEffect
}

// Border draws a background and outline around a single child.
type Border struct {
	XMLName         xml.Name      `xml:"Border"`
	Background      string        `xml:"Background,attr,omitempty"`
	BorderBrush     string        `xml:"BorderBrush,attr,omitempty"`
	BorderThickness string        `xml:"BorderThickness,attr,omitempty"`
	CornerRadius    int           `xml:"CornerRadius,attr,omitempty"`
	Padding         string        `xml:"Padding,attr,omitempty"`
	Margin          string        `xml:"Margin,attr,omitempty"`
	Effect          *BorderEffect
	Child           Node
}

func (Border) node() {}

// Window is the document root: a modal, non-resizable window with no
// native chrome.
type Window struct {
	XMLName               xml.Name `xml:"Window"`
	Xmlns                 string   `xml:"xmlns,attr"`
	Title                 string   `xml:"Title,attr"`
	WindowStyle           string   `xml:"WindowStyle,attr"`
	ResizeMode            string   `xml:"ResizeMode,attr"`
	AllowsTransparency    bool     `xml:"AllowsTransparency,attr"`
	Background            string   `xml:"Background,attr"`
	SizeToContent         string   `xml:"SizeToContent,attr"`
	WindowStartupLocation string   `xml:"WindowStartupLocation,attr"`
	Topmost               bool     `xml:"Topmost,attr"`
	Content               *Border
}

// Document is a fully built dialog description ready for a Renderer.
type Document struct {
	Window  Window
	Buttons []string
}

// Markup serializes the document to toolkit markup. All text travels
// through the XML encoder, so payload content cannot break out of the
// document structure.
func (d *Document) Markup() (string, error) {
	out, err := xml.MarshalIndent(&d.Window, "", "    ")
	if err != nil {
		return "", fmt.Errorf("serialize dialog document: %w", err)
	}
	return string(out), nil
}

// Build validates the Spec and assembles its document tree.
func (s *Spec) Build() (*Document, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	text, rows, err := normalizeContent(s.Content)
	if err != nil {
		return nil, err
	}

	body := &StackPanel{}

	if s.Title != "" {
		body.Children = append(body.Children, TextBlock{
			Text:       s.Title,
			FontFamily: s.FontFamily,
			FontSize:   s.TitleFontSize,
			FontWeight: "Bold",
			Foreground: s.TitleColor,
			Margin:     "0,0,0,10",
		})
	}

	if rows == nil {
		body.Children = append(body.Children, TextBlock{
			Text:         text,
			FontFamily:   s.FontFamily,
			FontSize:     s.ContentFontSize,
			Foreground:   s.ContentColor,
			TextWrapping: "Wrap",
		})
	} else {
		for _, row := range rows {
			body.Children = append(body.Children, Border{
				BorderBrush:     s.BorderColor,
				BorderThickness: "0,0,0,1",
				Padding:         "0,2,0,2",
				Child: StackPanel{
					Orientation: "Horizontal",
					Children: []Node{
						TextBlock{
							Text:       row.Name,
							FontFamily: s.FontFamily,
							FontSize:   s.ContentFontSize,
							FontWeight: "Bold",
							Foreground: s.ContentColor,
							Margin:     "0,0,10,0",
						},
						TextBlock{
							Text:       row.Value,
							FontFamily: s.FontFamily,
							FontSize:   s.ContentFontSize,
							Foreground: s.ContentColor,
						},
					},
				},
			})
		}
	}

	labels := s.ButtonLabels()
	buttonRow := &StackPanel{
		Orientation:         "Horizontal",
		HorizontalAlignment: "Center",
		Margin:              "0,15,0,0",
	}
	for _, label := range labels {
		buttonRow.Children = append(buttonRow.Children, Button{
			Content:    label,
			FontFamily: s.FontFamily,
			FontSize:   s.ContentFontSize,
			Foreground: s.ButtonColor,
			Background: "Transparent",
			MinWidth:   80,
			Margin:     "5,0,5,0",
		})
	}
	body.Children = append(body.Children, *buttonRow)

	root := &Border{
		Background:      s.BackgroundColor,
		BorderBrush:     s.BorderColor,
		BorderThickness: "1",
		CornerRadius:    s.CornerRadius,
		Padding:         "20",
		Margin:          "25",
		Child:           *body,
	}
	if s.Shadow {
		root.Effect = &BorderEffect{
			Shadow: DropShadowEffect{BlurRadius: 20, ShadowDepth: 0, Opacity: 0.6},
		}
	}

	return &Document{
		Window: Window{
			Xmlns:                 presentationNamespace,
			Title:                 s.Title,
			WindowStyle:           "None",
			ResizeMode:            "NoResize",
			AllowsTransparency:    true,
			Background:            "Transparent",
			SizeToContent:         "WidthAndHeight",
			WindowStartupLocation: "CenterScreen",
			Topmost:               true,
			Content:               root,
		},
		Buttons: labels,
	}, nil
}
