package shapes

import "strings"

// StateFlags is the shape state bitset.
type StateFlags int

const (
	Default    StateFlags = 0
	Visible    StateFlags = 1 << 0
	Printable  StateFlags = 1 << 1
	Locked     StateFlags = 1 << 2
	Size       StateFlags = 1 << 3
	Thickness  StateFlags = 1 << 4
	Connector  StateFlags = 1 << 5
	None       StateFlags = 1 << 6
	Standalone StateFlags = 1 << 7
	Input      StateFlags = 1 << 8
	Output     StateFlags = 1 << 9
)

// DefaultShapeState is assigned to top-level shapes created by the factory.
const DefaultShapeState = Visible | Printable | Standalone

var flagNames = []struct {
	flag StateFlags
	name string
}{
	{Visible, "Visible"},
	{Printable, "Printable"},
	{Locked, "Locked"},
	{Size, "Size"},
	{Thickness, "Thickness"},
	{Connector, "Connector"},
	{None, "None"},
	{Standalone, "Standalone"},
	{Input, "Input"},
	{Output, "Output"},
}

func (f StateFlags) Has(flag StateFlags) bool {
	return f&flag == flag
}

func (f StateFlags) String() string {
	if f == Default {
		return "Default"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
