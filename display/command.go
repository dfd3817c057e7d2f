package display

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/layout"
)

// CommandKind identifies the variant of a display command.
type CommandKind uint8

// Kinds of display commands.
const (
	RectangleKind CommandKind = iota
)

func (k CommandKind) String() string {
	if k == RectangleKind {
		return "rect"
	}
	return "?"
}

// Command is a paint operation. The set of commands is closed: it is
// implemented by the types of this package only.
type Command interface {
	Kind() CommandKind
	String() string
	isCommand()
}

// RectangleCmd fills a rectangle with a color.
type RectangleCmd struct {
	Rect  layout.Rect
	Color style.Color
}

var _ Command = RectangleCmd{}

// Kind is RectangleKind.
func (RectangleCmd) Kind() CommandKind { return RectangleKind }

func (RectangleCmd) isCommand() {}

func (cmd RectangleCmd) String() string {
	r := cmd.Rect
	return fmt.Sprintf("rect %g %g %g %g %s", r.X, r.Y, r.Width, r.Height, cmd.Color)
}

// List is a first-in, first-out queue of display commands. The zero value is
// an empty list.
type List struct {
	commands []Command
}

// Len returns the number of commands in the list.
func (l *List) Len() int {
	return len(l.commands)
}

// Empty is true if there are no more commands.
func (l *List) Empty() bool {
	return len(l.commands) == 0
}

// Push appends a command to the end of the list.
func (l *List) Push(cmd Command) {
	l.commands = append(l.commands, cmd)
}

// Front returns the first command without removing it. If the list is empty,
// Front returns false.
func (l *List) Front() (Command, bool) {
	if l.Empty() {
		return nil, false
	}
	return l.commands[0], true
}

// Pop removes and returns the first command. If the list is empty, Pop
// returns false.
func (l *List) Pop() (Command, bool) {
	cmd, ok := l.Front()
	if ok {
		l.commands[0] = nil
		l.commands = l.commands[1:]
	}
	return cmd, ok
}

// Commands returns a copy of the remaining commands, in order.
func (l *List) Commands() []Command {
	c := make([]Command, len(l.commands))
	copy(c, l.commands)
	return c
}

// String prints one command per line.
func (l *List) String() string {
	var b strings.Builder
	for _, cmd := range l.commands {
		b.WriteString(cmd.String())
		b.WriteByte('\n')
	}
	return b.String()
}
