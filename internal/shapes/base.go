package shapes

import (
	"maps"

	"github.com/inamate/core2d/internal/typeid"
)

// Base carries the fields common to every shape variant.
type Base struct {
	id         string
	name       string
	style      *Style
	state      StateFlags
	owner      string
	properties map[string]string
	record     *Record
	isStroked  bool
	isFilled   bool
	dirty      bool
}

func newBase(name string, style *Style, state StateFlags, isStroked, isFilled bool) Base {
	return Base{
		id:        typeid.NewShapeID(),
		name:      name,
		style:     style,
		state:     state,
		isStroked: isStroked,
		isFilled:  isFilled,
		dirty:     true,
	}
}

func (b *Base) base() *Base { return b }

func (b *Base) ID() string        { return b.id }
func (b *Base) Name() string      { return b.name }
func (b *Base) Style() *Style     { return b.style }
func (b *Base) Owner() string     { return b.owner }
func (b *Base) Record() *Record   { return b.record }
func (b *Base) IsStroked() bool   { return b.isStroked }
func (b *Base) IsFilled() bool    { return b.isFilled }
func (b *Base) State() StateFlags { return b.state }

func (b *Base) SetName(name string) {
	b.name = name
	b.dirty = true
}

func (b *Base) SetStyle(style *Style) {
	b.style = style
	b.dirty = true
}

func (b *Base) SetState(state StateFlags) {
	b.state = state
	b.dirty = true
}

func (b *Base) HasState(flag StateFlags) bool {
	return b.state.Has(flag)
}

// SetOwner stores the owning container's id. The link never keeps the owner alive.
func (b *Base) SetOwner(ownerID string) {
	b.owner = ownerID
}

func (b *Base) SetRecord(record *Record) {
	b.record = record
	b.dirty = true
}

func (b *Base) SetStroked(v bool) {
	b.isStroked = v
	b.dirty = true
}

func (b *Base) SetFilled(v bool) {
	b.isFilled = v
	b.dirty = true
}

func (b *Base) Property(name string) (string, bool) {
	v, ok := b.properties[name]
	return v, ok
}

func (b *Base) SetProperty(name, value string) {
	if b.properties == nil {
		b.properties = make(map[string]string)
	}
	b.properties[name] = value
	b.dirty = true
}

// Properties returns a copy of the key/value properties.
func (b *Base) Properties() map[string]string {
	return maps.Clone(b.properties)
}

func (b *Base) MarkDirty() { b.dirty = true }

func (b *Base) isDirty() bool { return b.dirty }

func (b *Base) invalidate() { b.dirty = false }

// copyFrom copies everything except the id.
func (b *Base) copyFrom(src *Base) {
	b.name = src.name
	b.style = src.style
	b.state = src.state
	b.owner = src.owner
	b.properties = maps.Clone(src.properties)
	b.record = src.record
	b.isStroked = src.isStroked
	b.isFilled = src.isFilled
	b.dirty = true
}
