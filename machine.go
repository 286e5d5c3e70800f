package umlaut

import "unicode"

type machineState uint8

const (
	outside machineState = iota
	inside
)

// transition is the outcome of feeding one character to the state machine.
type transition uint8

const (
	transitionExternal transition = iota // outside → outside
	transitionEntered                    // outside → inside
	transitionInternal                   // inside → inside
	transitionExited                     // inside → outside
)

func (t transition) String() string {
	switch t {
	case transitionExternal:
		return "external"
	case transitionEntered:
		return "entered"
	case transitionInternal:
		return "internal"
	case transitionExited:
		return "exited"
	}
	return "<unknown>"
}

// stateMachine splits a character stream into words and non-words.
//
// A word is only closed by a non-word character, so clients have to
// feed a trailing non-word character to get the last word of a stream.
type stateMachine struct {
	state machineState
	word  *Word
	last  transition
}

func newStateMachine() *stateMachine {
	return &stateMachine{}
}

func isWordConstituent(r rune) bool {
	return unicode.IsLetter(r)
}

func (m *stateMachine) transition(r rune) transition {
	constituent := isWordConstituent(r)
	switch {
	case m.state == outside && constituent:
		m.state = inside
		m.word = newWord(r)
		m.last = transitionEntered
	case m.state == inside && constituent:
		m.word.push(r)
		m.last = transitionInternal
	case m.state == inside:
		m.state = outside
		m.last = transitionExited
	default:
		m.last = transitionExternal
	}
	return m.last
}

// currentWord returns the word just closed. It may only be called directly
// after a transition to state outside.
func (m *stateMachine) currentWord() *Word {
	assert(m.last == transitionExited, "word requested while not having exited a word")
	return m.word
}
