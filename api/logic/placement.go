/* placement.go
 * Contains the logic for validating a raw user-supplied placement token
 */

package logic

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPlacement is returned when a token does not denote a legal rank or
// non-finish keyword.
var ErrInvalidPlacement = errors.New("not a valid placement")

var numericToken = regexp.MustCompile(`^[0-9]+$`)

// nonFinishKeywords are the only tokens that map to the NonFinish marker.
// The literal digit "0" is deliberately rejected: a user typing "0" gets an
// explicit rejection instead of being silently recorded as afk.
var nonFinishKeywords = map[string]bool{
	"afk": true,
	"out": true,
	"dnf": true,
}

// ParsePlacement validates a raw placement token and converts it to a rank.
// Preconditions: Receives the raw token as typed by the user
// Postconditions: Returns a rank in {0, 1..20}, or ErrInvalidPlacement
func ParsePlacement(token string) (int, error) {
	if nonFinishKeywords[strings.ToLower(token)] {
		return NonFinish, nil
	}

	if !numericToken.MatchString(token) {
		return 0, ErrInvalidPlacement
	}

	rank, err := strconv.Atoi(token)
	if err != nil || rank < 1 || rank > MaxPlacement {
		return 0, ErrInvalidPlacement
	}
	return rank, nil
}
