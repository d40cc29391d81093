package domain

// Command is a lifecycle action applied to a set of nodes.
type Command string

const (
	CommandStart  Command = "start"
	CommandStop   Command = "stop"
	CommandReset  Command = "reset"
	CommandUpdate Command = "update"
)

// ParseCommand converts a command name into a Command.
func ParseCommand(s string) (Command, error) {
	c := Command(s)
	if !c.Valid() {
		return "", ErrUnknownCommand.WithDetails(s)
	}
	return c, nil
}

// Valid reports whether c is one of the known command kinds.
func (c Command) Valid() bool {
	switch c {
	case CommandStart, CommandStop, CommandReset, CommandUpdate:
		return true
	}
	return false
}

// NeedsFirmware reports whether the command ships a firmware image.
func (c Command) NeedsFirmware() bool {
	return c == CommandUpdate
}

func (c Command) String() string {
	return string(c)
}
