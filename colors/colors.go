package colors

// COLOR is an ANSI escape sequence selecting a terminal color.
type COLOR string

const (
	RESET COLOR = "\033[0m"

	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	WHITE  COLOR = "\033[37m"
	GREY   COLOR = "\033[90m"

	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_CYAN   COLOR = "\033[1;36m"

	ORANGE COLOR = "\033[38;5;208m"
)

// Enabled controls whether the printers emit escape sequences at all.
// The CLI turns it off when NO_COLOR is set.
var Enabled = true

func (c COLOR) prefix() string {
	if !Enabled {
		return ""
	}
	return string(c)
}

func (c COLOR) suffix() string {
	if !Enabled {
		return ""
	}
	return string(RESET)
}
