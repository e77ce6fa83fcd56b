// internal/status/pattern.go
package status

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern reports a malformed filter pattern.
var ErrInvalidPattern = errors.New("status: invalid pattern")

// Pattern is a compiled 8-character filter over {0,1,*}, MSB first.
type Pattern struct {
	required Word // bits that must be 1
	dontCare Word // bits with no constraint
	src      string
}

// CompilePattern validates s and builds its masks.
func CompilePattern(s string) (Pattern, error) {
	if len(s) != PatternLen {
		return Pattern{}, fmt.Errorf("%w: want %d characters, got %d", ErrInvalidPattern, PatternLen, len(s))
	}

	p := Pattern{src: s}
	for i := 0; i < PatternLen; i++ {
		bit := Word(1) << (PatternLen - 1 - i)
		switch s[i] {
		case '1':
			p.required |= bit
		case '*':
			p.dontCare |= bit
		case '0':
		default:
			return Pattern{}, fmt.Errorf("%w: character %q at %d is not 0, 1 or *", ErrInvalidPattern, s[i], i)
		}
	}
	return p, nil
}

// Match reports whether w satisfies every literal position of p.
func (p Pattern) Match(w Word) bool {
	mismatch := ^p.required ^ w
	return mismatch|p.dontCare == 0xFF
}

func (p Pattern) String() string { return p.src }

// Match compiles pattern and tests w against it.
func Match(w Word, pattern string) (bool, error) {
	p, err := CompilePattern(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(w), nil
}
