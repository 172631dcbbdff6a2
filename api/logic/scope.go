/* scope.go
 * Contains the record scope flag parsing shared by the rank and leaderboard
 * commands
 */

package logic

// Scope selects which ranking window a command operates on.
type Scope int

const (
	ScopeInvalid Scope = iota
	ScopeWeekly
	ScopeMonthly
	ScopeAllTime
)

// ParseScope maps a command flag to a Scope. An empty token defaults to
// weekly; anything unrecognised is invalid and the caller replies with usage.
func ParseScope(token string) Scope {
	switch token {
	case "", "-w", "--weekly":
		return ScopeWeekly
	case "-m", "--monthly":
		return ScopeMonthly
	case "-a", "--all-time":
		return ScopeAllTime
	default:
		return ScopeInvalid
	}
}

// String returns the scope's display name.
func (s Scope) String() string {
	switch s {
	case ScopeWeekly:
		return "weekly"
	case ScopeMonthly:
		return "monthly"
	case ScopeAllTime:
		return "all-time"
	default:
		return "invalid"
	}
}
