package goal

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// statusGlyphs are the per-node markers used in the tree dump.
var statusGlyphs = map[Status]string{
	StatusPending:    "[ ]",
	StatusActive:     "[>]",
	StatusInProgress: "[~]",
	StatusCompleted:  "[x]",
	StatusFailed:     "[!]",
	StatusBlocked:    "[-]",
}

// RenderTree returns a depth-first textual dump of the whole forest with a
// status glyph per node, roots ordered by ascending priority.
func (p *Planner) RenderTree() string {
	var roots []*Goal
	for _, id := range p.order {
		if g := p.goals[id]; g.ParentID == "" {
			roots = append(roots, g)
		}
	}
	if len(roots) == 0 {
		return "No goals set."
	}
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Priority < roots[j].Priority
	})

	var lines []string
	for _, root := range roots {
		p.renderGoal(root, &lines, 0)
	}
	return strings.Join(lines, "\n")
}

func (p *Planner) renderGoal(g *Goal, lines *[]string, indent int) {
	glyph, ok := statusGlyphs[g.Status]
	if !ok {
		glyph = "[?]"
	}
	*lines = append(*lines, fmt.Sprintf("%s%s %s (%s)", strings.Repeat("  ", indent), glyph, g.Name, g.Status))
	for _, cid := range g.ChildrenIDs {
		if child, ok := p.goals[cid]; ok {
			p.renderGoal(child, lines, indent+1)
		}
	}
}

// ActiveGoalContext builds the advisory text block describing the current
// goal for the external decision-maker: name, description, status, attempt
// budget, recent notes, and the ancestor chain.
func (p *Planner) ActiveGoalContext(ctx context.Context) (string, error) {
	current, err := p.CurrentGoal(ctx)
	if err != nil {
		return "", err
	}
	if current == nil {
		return "No active goal. All goals completed or none set.", nil
	}

	parts := []string{
		"Current goal: " + current.Name,
		"Description: " + current.Description,
		"Status: " + current.Status.String(),
		fmt.Sprintf("Attempts: %d/%d", current.Attempts, current.MaxAttempts),
	}

	if n := len(current.Notes); n > 0 {
		recent := current.Notes
		if n > 3 {
			recent = recent[n-3:]
		}
		parts = append(parts, "Notes: "+strings.Join(recent, "; "))
	}

	var chain []string
	for pid := current.ParentID; pid != ""; {
		parent, ok := p.goals[pid]
		if !ok {
			break
		}
		chain = append([]string{parent.Name}, chain...)
		pid = parent.ParentID
	}
	if len(chain) > 0 {
		parts = append(parts, "Part of: "+strings.Join(chain, " > "))
	}

	return strings.Join(parts, "\n"), nil
}

// Summary is the flat per-goal listing consumed by dashboards.
type Summary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   Status `json:"status"`
	ParentID string `json:"parent_id,omitempty"`
}

// Summaries returns a flat listing of every goal in insertion order.
func (p *Planner) Summaries() []Summary {
	out := make([]Summary, 0, len(p.order))
	for _, id := range p.order {
		g := p.goals[id]
		out = append(out, Summary{ID: g.ID, Name: g.Name, Status: g.Status, ParentID: g.ParentID})
	}
	return out
}
