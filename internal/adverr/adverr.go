// Package adverr defines the error taxonomy used throughout the adventure
// engine. All player-facing failures are represented as values of a single
// error type carrying a game-facing message distinct from the Go Error()
// text, the way internal/tqerrors does it in the teacher engine; this package
// generalizes that to the closed set of kinds the command pipeline needs.
package adverr

import "fmt"

// Kind distinguishes the broad category of an interpreter failure. Handlers
// and the top-level engine loop both switch on Kind to decide things like
// whether a death sequence should follow.
type Kind int

const (
	// KindNone is the zero value; never set on a real error.
	KindNone Kind = iota

	// KindParse covers unknown words, ambiguous references, incomplete
	// sentences, and misused words caught before any world state is touched.
	KindParse

	// KindReferent covers objects that are not visible, not held, or not a
	// container/not open when a command requires one of those.
	KindReferent

	// KindAction covers objects that cannot be taken/moved/opened, an owner
	// resisting, or exceeding inventory capacity.
	KindAction

	// KindLogic covers actions that are impossible in the current world
	// state, such as closing something that is not open.
	KindLogic

	// KindLight covers actions that require sight and the room is dark.
	KindLight

	// KindGameEnd covers death and victory.
	KindGameEnd
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindReferent:
		return "ReferentError"
	case KindAction:
		return "ActionError"
	case KindLogic:
		return "LogicError"
	case KindLight:
		return "LightError"
	case KindGameEnd:
		return "GameEnd"
	default:
		return "UnknownError"
	}
}

// Error is an error caused by an attempt to parse or execute a player
// command. It carries both a human-readable message meant for the player's
// transcript and a Kind used by callers that need to branch on the category
// of failure (e.g. the engine runs its game-end handling only for
// KindGameEnd).
type Error struct {
	kind  Kind
	human string
	wrap  error
}

func (e *Error) Error() string {
	if e.wrap != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.human, e.wrap)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.human)
}

// Unwrap gives the error that e wraps, if any.
func (e *Error) Unwrap() error {
	return e.wrap
}

// Kind returns the category of the failure.
func (e *Error) Kind() Kind {
	return e.kind
}

// GameMessage is the text that should be shown to the player.
func (e *Error) GameMessage() string {
	return e.human
}

// New returns a new *Error of the given kind with the given player-facing
// message.
func New(kind Kind, message string) error {
	return &Error{kind: kind, human: message}
}

// Newf is like New but builds the message with fmt.Sprintf.
func Newf(kind Kind, format string, a ...interface{}) error {
	return &Error{kind: kind, human: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps cause, carrying its own game-facing
// message independent of cause's.
func Wrap(kind Kind, cause error, message string) error {
	return &Error{kind: kind, human: message, wrap: cause}
}

// GameMessage extracts the player-facing message from err. If err is not an
// *Error, err.Error() is returned unchanged, the same fallback tqerrors.
// GameMessage uses.
func GameMessage(err error) string {
	if err == nil {
		return ""
	}
	if adv, ok := err.(*Error); ok {
		return adv.GameMessage()
	}
	return err.Error()
}

// KindOf extracts the Kind of err. Returns KindNone if err is not an *Error.
func KindOf(err error) Kind {
	if adv, ok := err.(*Error); ok {
		return adv.kind
	}
	return KindNone
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
