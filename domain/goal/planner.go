package goal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Planner owns the goal tree: mutation, selection, rendering, and
// persistence. It is not safe for concurrent use; the caller drives it
// synchronously once per tick.
type Planner struct {
	goals   map[string]*Goal
	order   []string // ids in insertion order, for deterministic scans
	counter int
	store   Store
	now     func() time.Time
}

// NewPlanner creates an empty planner backed by store. A nil store keeps
// the tree in memory only (useful for tests). Call Load to restore
// previously persisted state.
func NewPlanner(store Store) *Planner {
	return &Planner{
		goals: make(map[string]*Goal),
		store: store,
		now:   time.Now,
	}
}

// Load restores the tree from the store. A missing or unreadable document
// is not fatal: the planner stays empty and the error is returned so the
// caller can log it.
func (p *Planner) Load(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	doc, err := p.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil
		}
		return fmt.Errorf("load goal document: %w", err)
	}
	p.counter = doc.Counter
	p.goals = make(map[string]*Goal, len(doc.Goals))
	p.order = p.order[:0]
	for id, g := range doc.Goals {
		p.goals[id] = g
		p.order = append(p.order, id)
	}
	// Ids embed the insertion counter; sorting by it restores the order
	// goals were created in.
	sort.Slice(p.order, func(i, j int) bool {
		return idSeq(p.order[i]) < idSeq(p.order[j])
	})
	return nil
}

func idSeq(id string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(id, "goal_"))
	return n
}

func (p *Planner) nextID() string {
	p.counter++
	return fmt.Sprintf("goal_%d", p.counter)
}

// Len returns the number of goals in the tree.
func (p *Planner) Len() int {
	return len(p.goals)
}

// Get returns the goal with the given id, or nil if it does not exist.
func (p *Planner) Get(id string) *Goal {
	return p.goals[id]
}

// AddGoal appends a new pending goal and persists the tree. If parentID is
// non-empty and known, the goal joins that parent's child list. Priority is
// recorded as given, lower meaning more urgent; zero is a valid priority.
// Prerequisites are recorded as given; they are not validated to exist at
// call time.
func (p *Planner) AddGoal(ctx context.Context, name, description string, priority int, parentID string, prerequisites []string) (string, error) {
	id := p.nextID()
	g := &Goal{
		ID:            id,
		Name:          name,
		Description:   description,
		Status:        StatusPending,
		Priority:      priority,
		ParentID:      parentID,
		ChildrenIDs:   []string{},
		Prerequisites: append([]string{}, prerequisites...),
		Notes:         []string{},
		MaxAttempts:   DefaultMaxAttempts,
		CreatedAt:     p.now(),
	}
	p.goals[id] = g
	p.order = append(p.order, id)

	if parentID != "" {
		if parent, ok := p.goals[parentID]; ok {
			parent.ChildrenIDs = append(parent.ChildrenIDs, id)
		}
	}
	return id, p.persist(ctx)
}

// AddSubgoals adds ordered steps under one parent. Each sequential step
// gains the previous step's id as a prerequisite, forming a linear chain.
// Returns the new ids in step order.
func (p *Planner) AddSubgoals(ctx context.Context, parentID string, steps []Step) ([]string, error) {
	ids := make([]string, 0, len(steps))
	prevID := ""
	for _, step := range steps {
		prereqs := append([]string{}, step.Prerequisites...)
		if step.Sequential && prevID != "" {
			prereqs = append(prereqs, prevID)
		}
		priority := step.Priority
		if priority == 0 {
			priority = DefaultPriority
		}
		id, err := p.AddGoal(ctx, step.Name, step.Description, priority, parentID, prereqs)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
		prevID = id
	}
	return ids, nil
}

// CompleteGoal marks the goal completed and cascades upward: any ancestor
// whose children are now all completed is completed as well. The cascade
// walks parent ids iteratively so deep trees cannot exhaust the stack.
func (p *Planner) CompleteGoal(ctx context.Context, id, note string) error {
	g, ok := p.goals[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	if err := p.complete(g, note); err != nil {
		return err
	}

	for parentID := g.ParentID; parentID != ""; {
		parent, ok := p.goals[parentID]
		if !ok || parent.Status == StatusCompleted {
			break
		}
		if !p.allChildrenCompleted(parent) {
			break
		}
		// Blocked or failed ancestors stay put; the cascade stops there.
		if !parent.Status.CanTransitionTo(StatusCompleted) {
			break
		}
		if err := p.complete(parent, "All sub-goals completed"); err != nil {
			return err
		}
		parentID = parent.ParentID
	}
	return p.persist(ctx)
}

func (p *Planner) complete(g *Goal, note string) error {
	if g.Status == StatusCompleted {
		return nil
	}
	if err := g.transition(StatusCompleted); err != nil {
		return err
	}
	g.CompletedAt = p.now()
	if note != "" {
		g.AddNote("Completed: " + note)
	}
	return nil
}

func (p *Planner) allChildrenCompleted(parent *Goal) bool {
	for _, cid := range parent.ChildrenIDs {
		child, ok := p.goals[cid]
		if !ok {
			continue
		}
		if child.Status != StatusCompleted {
			return false
		}
	}
	return true
}

// FailGoal records a failed attempt. The goal returns to pending while
// retries remain; once attempts reach the bound it fails permanently.
func (p *Planner) FailGoal(ctx context.Context, id, reason string) error {
	g, ok := p.goals[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	attempts := g.Attempts + 1
	if attempts >= g.MaxAttempts {
		if err := g.transition(StatusFailed); err != nil {
			return err
		}
		g.Attempts = attempts
		g.AddNote("Failed permanently: " + reason)
	} else {
		if err := g.transition(StatusPending); err != nil {
			return err
		}
		g.Attempts = attempts
		g.AddNote(fmt.Sprintf("Attempt %d failed: %s", g.Attempts, reason))
	}
	return p.persist(ctx)
}

// BlockGoal parks the goal until the caller explicitly reopens it.
func (p *Planner) BlockGoal(ctx context.Context, id, reason string) error {
	g, ok := p.goals[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	if err := g.transition(StatusBlocked); err != nil {
		return err
	}
	g.AddNote("Blocked: " + reason)
	return p.persist(ctx)
}

// ReopenGoal moves a blocked goal back to pending. Blocked goals are never
// unblocked automatically.
func (p *Planner) ReopenGoal(ctx context.Context, id, note string) error {
	g, ok := p.goals[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	if err := g.transition(StatusPending); err != nil {
		return err
	}
	if note != "" {
		g.AddNote("Reopened: " + note)
	}
	return p.persist(ctx)
}

// NoteProgress appends a progress note and moves an active goal to
// in_progress.
func (p *Planner) NoteProgress(ctx context.Context, id, note string) error {
	g, ok := p.goals[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	if g.Status == StatusActive {
		if err := g.transition(StatusInProgress); err != nil {
			return err
		}
	}
	g.AddNote(note)
	return p.persist(ctx)
}

// CurrentGoal returns the goal the caller should pursue right now, or nil
// if nothing is eligible. When a workable goal has children, selection
// descends into the first actionable child, promoting pending children
// whose prerequisites are satisfied. With no goal workable anywhere, the
// lowest-priority-value pending root whose prerequisites are satisfied is
// promoted to active. Promotion is persisted as a side effect.
func (p *Planner) CurrentGoal(ctx context.Context) (*Goal, error) {
	for _, id := range p.order {
		g := p.goals[id]
		if !g.Status.IsWorkable() {
			continue
		}
		if len(g.ChildrenIDs) == 0 {
			return g, nil
		}
		child, promoted, err := p.nextChild(g)
		if err != nil {
			return nil, err
		}
		if promoted {
			if err := p.persist(ctx); err != nil {
				return child, err
			}
		}
		if child != nil {
			return child, nil
		}
		return g, nil
	}
	return p.selectNextRoot(ctx)
}

// nextChild descends to the first actionable descendant of parent,
// promoting an eligible pending child where it finds one. The walk is
// iterative so deep trees cannot exhaust the stack. Returns nil when no
// child is actionable (the caller then works the parent itself) and
// reports whether a promotion happened.
func (p *Planner) nextChild(parent *Goal) (*Goal, bool, error) {
	current := parent
	for {
		var pick *Goal
		for _, cid := range current.ChildrenIDs {
			child, ok := p.goals[cid]
			if !ok {
				continue
			}
			if child.Status.IsWorkable() {
				pick = child
				break
			}
			if child.Status == StatusPending && p.prerequisitesMet(child) {
				if err := child.transition(StatusActive); err != nil {
					return nil, false, err
				}
				return child, true, nil
			}
		}
		if pick == nil {
			if current == parent {
				return nil, false, nil
			}
			// Deepest workable node with no actionable child of its own.
			return current, false, nil
		}
		if len(pick.ChildrenIDs) == 0 {
			return pick, false, nil
		}
		current = pick
	}
}

// selectNextRoot promotes and returns the most urgent eligible root goal.
// Lower priority value wins; ties keep first-encountered insertion order.
func (p *Planner) selectNextRoot(ctx context.Context) (*Goal, error) {
	var best *Goal
	for _, id := range p.order {
		g := p.goals[id]
		if g.Status != StatusPending || g.ParentID != "" || !p.prerequisitesMet(g) {
			continue
		}
		if best == nil || g.Priority < best.Priority {
			best = g
		}
	}
	if best == nil {
		return nil, nil
	}
	if err := best.transition(StatusActive); err != nil {
		return nil, err
	}
	return best, p.persist(ctx)
}

// prerequisitesMet reports whether every prerequisite goal is completed.
// Unknown prerequisite ids count as unmet.
func (p *Planner) prerequisitesMet(g *Goal) bool {
	for _, pid := range g.Prerequisites {
		prereq, ok := p.goals[pid]
		if !ok || prereq.Status != StatusCompleted {
			return false
		}
	}
	return true
}

func (p *Planner) persist(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	doc := &Document{
		Counter: p.counter,
		Goals:   p.goals,
	}
	if err := p.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save goal document: %w", err)
	}
	return nil
}
