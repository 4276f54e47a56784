package nav

import (
	"fmt"
	"strings"
)

// Escalation thresholds. A detour starts after stuckThreshold ticks without
// movement; navigation is abandoned after giveUpThreshold stuck events on
// one target.
const (
	stuckThreshold  = 3
	giveUpThreshold = 15
	maxDetourTicks  = 12
)

// Navigator walks the player to a target landmark using greedy
// axis-priority movement with reactive obstacle recovery. It holds no
// map geometry: obstacles are discovered by noticing the player stopped
// moving. Not safe for concurrent use; the caller drives it once per tick
// with snapshots in strict chronological order.
type Navigator struct {
	registry Registry

	targetX     int
	targetY     int
	targetMap   int
	targetLabel string
	active      bool

	prevX      int
	prevY      int
	stuckCount int
	totalStuck int

	detourDir   Direction
	detourTicks int
	detourIdx   int // alternates between the two perpendicular options
}

// NewNavigator creates a navigator over the given landmark registry.
func NewNavigator(registry Registry) *Navigator {
	return &Navigator{registry: registry, prevX: -1, prevY: -1, targetMap: -1}
}

// SetTarget points navigation at a landmark. It returns false without
// changing state when the map or key is unknown. On success all stuck and
// detour counters reset and navigation activates.
func (n *Navigator) SetTarget(mapID int, landmarkKey string) bool {
	if n.registry == nil {
		return false
	}
	landmark, ok := n.registry.Lookup(mapID, landmarkKey)
	if !ok {
		return false
	}

	n.targetX = landmark.X
	n.targetY = landmark.Y
	n.targetMap = mapID
	n.targetLabel = landmark.Label
	if n.targetLabel == "" {
		n.targetLabel = landmarkKey
	}
	n.active = true
	n.prevX = -1
	n.prevY = -1
	n.stuckCount = 0
	n.totalStuck = 0
	n.detourDir = ""
	n.detourTicks = 0
	n.detourIdx = 0
	return true
}

// NextDirection returns the next movement hint toward the target, or
// ok=false when there is nothing to do: navigation inactive, target
// reached (Chebyshev distance <= 1), the player left the target map
// (cancels), or the give-up threshold was hit (cancels).
func (n *Navigator) NextDirection(x, y, mapID int) (Direction, bool) {
	if !n.active {
		return "", false
	}

	// Entering a different area makes any in-progress walk moot.
	if mapID != n.targetMap {
		n.Cancel()
		return "", false
	}

	dx := n.targetX - x
	dy := n.targetY - y

	// Arrived within one tile.
	if abs(dx) <= 1 && abs(dy) <= 1 {
		n.active = false
		n.totalStuck = 0
		return "", false
	}

	if n.detourTicks > 0 {
		if x == n.prevX && y == n.prevY {
			// The detour direction is blocked too: abandon it and try
			// the other perpendicular option immediately.
			n.detourTicks = 0
			n.detourIdx++
			n.prevX = x
			n.prevY = y
			return n.beginDetour(dx, dy)
		}
		n.detourTicks--
		n.prevX = x
		n.prevY = y
		if n.detourTicks > 0 {
			return n.detourDir, true
		}
		// Detour finished; resume direct movement below.
		n.stuckCount = 0
		return n.greedyStep(dx, dy), true
	}

	if x == n.prevX && y == n.prevY {
		n.stuckCount++
	} else {
		n.stuckCount = 0
	}
	n.prevX = x
	n.prevY = y

	if n.stuckCount >= stuckThreshold {
		return n.beginDetour(dx, dy)
	}

	if n.totalStuck >= giveUpThreshold {
		n.Cancel()
		return "", false
	}

	return n.greedyStep(dx, dy), true
}

// beginDetour commits to walking perpendicular to the direct path. Detours
// grow with the cumulative stuck count, capped at maxDetourTicks.
func (n *Navigator) beginDetour(dx, dy int) (Direction, bool) {
	if n.totalStuck >= giveUpThreshold {
		n.Cancel()
		return "", false
	}
	length := detourLength(n.totalStuck)
	n.totalStuck++

	var options [2]Direction
	if abs(dx) >= abs(dy) {
		options = [2]Direction{DirUp, DirDown}
	} else {
		options = [2]Direction{DirLeft, DirRight}
	}

	n.detourDir = options[n.detourIdx%2]
	n.detourTicks = length
	n.stuckCount = 0
	return n.detourDir, true
}

// greedyStep closes the larger axis gap first. Equal nonzero deltas move
// along Y; only a zero Y delta resolves the tie to X.
func (n *Navigator) greedyStep(dx, dy int) Direction {
	switch {
	case abs(dx) > abs(dy):
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	case abs(dy) > 0:
		if dy > 0 {
			return DirDown
		}
		return DirUp
	default:
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
}

// Cancel deactivates navigation and clears all target and detour state.
// Idempotent.
func (n *Navigator) Cancel() {
	n.active = false
	n.targetMap = -1
	n.targetLabel = ""
	n.detourDir = ""
	n.detourTicks = 0
	n.totalStuck = 0
}

// Active reports whether a target is currently set.
func (n *Navigator) Active() bool {
	return n.active
}

// TargetLabel returns the human-readable name of the current target.
func (n *Navigator) TargetLabel() string {
	return n.targetLabel
}

// StuckEvents returns the cumulative stuck count for the current episode.
func (n *Navigator) StuckEvents() int {
	return n.totalStuck
}

// DistanceRemaining returns the Manhattan distance to the current target,
// or zero when no target is set.
func (n *Navigator) DistanceRemaining(x, y int) int {
	if n.targetMap < 0 {
		return 0
	}
	return abs(n.targetX-x) + abs(n.targetY-y)
}

// AvailableTargets lists the landmark keys reachable on a map.
func (n *Navigator) AvailableTargets(mapID int) []string {
	if n.registry == nil {
		return nil
	}
	return n.registry.Keys(mapID)
}

// TargetsText formats the available landmarks as GOTO command lines for
// the external decision-maker's prompt.
func (n *Navigator) TargetsText(mapID int) string {
	if n.registry == nil {
		return ""
	}
	keys := n.registry.Keys(mapID)
	if len(keys) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		landmark, ok := n.registry.Lookup(mapID, key)
		if !ok {
			continue
		}
		label := landmark.Label
		if label == "" {
			label = key
		}
		parts = append(parts, fmt.Sprintf("  GOTO_%s = walk to %s", strings.ToUpper(key), label))
	}
	return strings.Join(parts, "\n")
}

// detourLength grows with the number of stuck events on this target:
// 3, 5, 7, 9, 11, then capped at maxDetourTicks.
func detourLength(stuckEvents int) int {
	length := stuckThreshold + 2*stuckEvents
	if length > maxDetourTicks {
		return maxDetourTicks
	}
	return length
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
