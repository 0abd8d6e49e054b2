package shapes

import "strings"

// Text draws a string inside its box. "{Column}" placeholders are bound
// to the shape's record first, then to its properties.
type Text struct {
	Base
	Box
	Text string
}

func (t *Text) Kind() Kind      { return KindText }
func (t *Text) IsDirty() bool   { return t.isDirty() || anyDirty(t.TopLeft, t.BottomRight) }
func (t *Text) Draw(r Renderer) { r.DrawText(t) }

func (t *Text) Invalidate() {
	t.invalidate()
	invalidateAll(t.TopLeft, t.BottomRight)
}

func (t *Text) SetText(text string) {
	t.Text = text
	t.dirty = true
}

// BoundText returns Text with placeholders resolved. Unknown placeholders
// are left as written.
func (t *Text) BoundText() string {
	if !strings.Contains(t.Text, "{") {
		return t.Text
	}
	var sb strings.Builder
	rest := t.Text
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			sb.WriteString(rest)
			break
		}
		end += open
		sb.WriteString(rest[:open])
		key := rest[open+1 : end]
		if v, ok := t.lookup(key); ok {
			sb.WriteString(v)
		} else {
			sb.WriteString(rest[open : end+1])
		}
		rest = rest[end+1:]
	}
	return sb.String()
}

func (t *Text) lookup(key string) (string, bool) {
	if v, ok := t.record.Value(key); ok {
		return v, true
	}
	return t.Property(key)
}
