/* points.go
 * Contains the flag points table
 */

package logic

// NonFinish is the placement sentinel recorded for a flagger who was afk or
// did not finish the race. It is only ever produced by the placement keywords,
// never by a numeric token.
const NonFinish = 0

// MaxPlacement is the lowest rank that still scores; a flag race has at most
// 20 recorded finishers.
const MaxPlacement = 20

// PointsFor returns the amount of points earned from a flag placement.
// Participation without finishing still earns 10 points; the top 5 are
// weighted steeply and ranks 6-20 are flattened into one tier. Anything
// outside {0, 1..20} earns 0 and is treated as invalid by callers.
func PointsFor(rank int) int {
	switch {
	case rank == NonFinish:
		return 10
	case rank == 1:
		return 100
	case rank == 2:
		return 50
	case rank == 3:
		return 40
	case rank == 4:
		return 35
	case rank == 5:
		return 30
	case rank > 5 && rank <= MaxPlacement:
		return 20
	default:
		return 0
	}
}
