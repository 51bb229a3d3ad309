package interview

import "strings"

// Command is a recognized control token. The controller branches on this
// closed enumeration, never on raw strings.
type Command string

const (
	// CommandNone marks input that is an answer, not a command.
	CommandNone     Command = ""
	CommandNext     Command = "next"
	CommandEnd      Command = "end"
	CommandFeedback Command = "feedback"
	CommandHelp     Command = "help"
	CommandRepeat   Command = "repeat"
)

// UserInput is the tagged result of classifying one raw utterance: either a
// control command or a free-text answer.
type UserInput struct {
	Command Command
	Answer  string
}

// IsCommand reports whether the input is a control token rather than an answer.
func (in UserInput) IsCommand() bool {
	return in.Command != CommandNone
}

// ClassifyInput decides once, case-insensitively, whether the raw utterance is
// a control command or an answer. Commands are matched on the whole trimmed
// input only; an answer that merely mentions a token stays an answer.
func ClassifyInput(raw string) UserInput {
	trimmed := strings.TrimSpace(raw)

	switch trimLower(trimmed) {
	case "next", "skip":
		return UserInput{Command: CommandNext}
	case "end":
		return UserInput{Command: CommandEnd}
	case "feedback":
		return UserInput{Command: CommandFeedback}
	case "help":
		return UserInput{Command: CommandHelp}
	case "repeat":
		return UserInput{Command: CommandRepeat}
	default:
		return UserInput{Answer: trimmed}
	}
}

func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
