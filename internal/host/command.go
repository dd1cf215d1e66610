// Package host defines the messages the window chrome sends to the host
// windowing system. Commands are requests: the host may ignore or delay
// them and nothing waits for the resulting window state.
package host

import "fmt"

// Direction identifies the window edge or corner a resize starts from.
type Direction int

const (
	// North is the top edge.
	North Direction = iota
	// South is the bottom edge.
	South
	// East is the right edge.
	East
	// West is the left edge.
	West
	// NorthEast is the top-right corner.
	NorthEast
	// NorthWest is the top-left corner.
	NorthWest
	// SouthEast is the bottom-right corner.
	SouthEast
	// SouthWest is the bottom-left corner.
	SouthWest
)

var directionNames = [...]string{
	North:     "North",
	South:     "South",
	East:      "East",
	West:      "West",
	NorthEast: "NorthEast",
	NorthWest: "NorthWest",
	SouthEast: "SouthEast",
	SouthWest: "SouthWest",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// HasNorth reports whether a resize in this direction moves the top edge.
func (d Direction) HasNorth() bool { return d == North || d == NorthEast || d == NorthWest }

// HasSouth reports whether a resize in this direction moves the bottom edge.
func (d Direction) HasSouth() bool { return d == South || d == SouthEast || d == SouthWest }

// HasEast reports whether a resize in this direction moves the right edge.
func (d Direction) HasEast() bool { return d == East || d == NorthEast || d == SouthEast }

// HasWest reports whether a resize in this direction moves the left edge.
func (d Direction) HasWest() bool { return d == West || d == NorthWest || d == SouthWest }

// Command is a fire-and-forget message for the host windowing system.
type Command interface {
	command()
	String() string
}

// BeginResize asks the host to start an interactive resize from Dir.
type BeginResize struct {
	Dir Direction
}

// BeginDrag asks the host to start an interactive window move.
type BeginDrag struct{}

// Close asks the host to close the window.
type Close struct{}

// SetMaximized asks the host to maximize or restore the window.
type SetMaximized struct {
	Maximized bool
}

// SetMinimized asks the host to minimize or un-minimize the window.
type SetMinimized struct {
	Minimized bool
}

func (BeginResize) command()  {}
func (BeginDrag) command()    {}
func (Close) command()        {}
func (SetMaximized) command() {}
func (SetMinimized) command() {}

func (c BeginResize) String() string  { return "BeginResize(" + c.Dir.String() + ")" }
func (BeginDrag) String() string      { return "BeginDrag" }
func (Close) String() string          { return "Close" }
func (c SetMaximized) String() string { return fmt.Sprintf("SetMaximized(%t)", c.Maximized) }
func (c SetMinimized) String() string { return fmt.Sprintf("SetMinimized(%t)", c.Minimized) }
