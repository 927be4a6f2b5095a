package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/emergencyhelp/internal/platform/icons"
)

// markup accumulates writes and keeps the first error, so component bodies
// read top to bottom without an error check per element.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// open writes a start tag with attribute pairs given as name, value.
func (m *markup) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.raw(" " + attrs[i] + `="`)
		m.text(attrs[i+1])
		m.raw(`"`)
	}
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// element writes a start tag, escaped content and the end tag.
func (m *markup) element(tag, content string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(content)
	m.close(tag)
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// component adapts a markup body to templ.Component.
func component(body func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		body(ctx, m)
		return m.err
	})
}

// icon writes a decorative reference into the Lucide sprite.
func (m *markup) icon(id icons.ID) {
	m.open("svg", "class", "icon icon-"+string(id), "aria-hidden", "true")
	m.open("use", "href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))
	m.close("use")
	m.close("svg")
}

// iconLink writes an anchor whose label follows an icon.
func (m *markup) iconLink(id icons.ID, label string, attrs ...string) {
	m.open("a", attrs...)
	m.icon(id)
	m.text(label)
	m.close("a")
}

// iconButton writes a button whose label follows an icon.
func (m *markup) iconButton(id icons.ID, label string, attrs ...string) {
	m.open("button", attrs...)
	m.icon(id)
	m.text(label)
	m.close("button")
}
