/* points_test.go
 * Contains unit tests for the flag points table
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPointsFor_Table tests the exact point values for every legal placement
func TestPointsFor_Table(t *testing.T) {
	assert.Equal(t, 10, PointsFor(NonFinish))
	assert.Equal(t, 100, PointsFor(1))
	assert.Equal(t, 50, PointsFor(2))
	assert.Equal(t, 40, PointsFor(3))
	assert.Equal(t, 35, PointsFor(4))
	assert.Equal(t, 30, PointsFor(5))

	// Ranks 6-20 are flattened into one tier
	for rank := 6; rank <= 20; rank++ {
		assert.Equal(t, 20, PointsFor(rank), "rank %d", rank)
	}
}

// TestPointsFor_OutOfRange tests that anything outside {0, 1..20} earns nothing
func TestPointsFor_OutOfRange(t *testing.T) {
	assert.Equal(t, 0, PointsFor(21))
	assert.Equal(t, 0, PointsFor(-1))
	assert.Equal(t, 0, PointsFor(100))
}
