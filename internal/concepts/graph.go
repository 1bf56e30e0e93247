package concepts

import (
	"fmt"
	"sort"
)

// Graph is an immutable view over a set of concepts with prerequisite edges.
type Graph struct {
	byID  map[string]Concept
	order []string // insertion order for stable iteration
}

// NewGraph builds a graph from a concept list. Duplicate IDs and edges to
// unknown concepts are rejected.
func NewGraph(list []Concept) (*Graph, error) {
	g := &Graph{byID: make(map[string]Concept, len(list))}
	for _, c := range list {
		if _, dup := g.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate concept id %q", c.ID)
		}
		g.byID[c.ID] = c
		g.order = append(g.order, c.ID)
	}
	for _, c := range list {
		for _, pre := range c.Prerequisites {
			if _, ok := g.byID[pre]; !ok {
				return nil, fmt.Errorf("concept %q references unknown prerequisite %q", c.ID, pre)
			}
		}
	}
	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}
	return g, nil
}

// Get returns the concept with the given ID.
func (g *Graph) Get(id string) (Concept, bool) {
	c, ok := g.byID[id]
	return c, ok
}

// All returns every concept in insertion order.
func (g *Graph) All() []Concept {
	out := make([]Concept, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.byID[id])
	}
	return out
}

// Len returns the number of concepts.
func (g *Graph) Len() int { return len(g.byID) }

// Prerequisites returns the direct prerequisites of a concept.
func (g *Graph) Prerequisites(id string) []Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	out := make([]Concept, 0, len(c.Prerequisites))
	for _, pre := range c.Prerequisites {
		out = append(out, g.byID[pre])
	}
	return out
}

// TransitivePrerequisites returns all prerequisites reachable from the given
// concepts, deduplicated, sorted by tier then ID. The target concepts
// themselves are excluded.
func (g *Graph) TransitivePrerequisites(ids ...string) []Concept {
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	seen := make(map[string]bool)
	var visit func(id string)
	visit = func(id string) {
		c, ok := g.byID[id]
		if !ok {
			return
		}
		for _, pre := range c.Prerequisites {
			if !seen[pre] {
				seen[pre] = true
				visit(pre)
			}
		}
	}
	for _, id := range ids {
		visit(id)
	}

	var out []Concept
	for id := range seen {
		if !targets[id] {
			out = append(out, g.byID[id])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Eligible returns concepts whose prerequisites are all at or past the
// learning state, excluding concepts already mastered or in review.
// Sorted by tier (core first) then ID for deterministic session builds.
func (g *Graph) Eligible(mastery map[string]Mastery) []Concept {
	var out []Concept
	for _, id := range g.order {
		c := g.byID[id]
		if st, ok := mastery[id]; ok && st.State != StateUnseen {
			continue
		}
		ready := true
		for _, pre := range c.Prerequisites {
			st, ok := mastery[pre]
			if !ok || st.State == StateUnseen {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// MostComplex returns the highest-tier concept among ids, breaking ties by
// ID. Returns false if none of the ids exist in the graph.
func (g *Graph) MostComplex(ids []string) (Concept, bool) {
	var best Concept
	found := false
	for _, id := range ids {
		c, ok := g.byID[id]
		if !ok {
			continue
		}
		if !found || c.Tier > best.Tier || (c.Tier == best.Tier && c.ID < best.ID) {
			best = c
			found = true
		}
	}
	return best, found
}

// checkAcyclic rejects graphs with prerequisite cycles.
func (g *Graph) checkAcyclic() error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(g.byID))

	var visit func(id string) error
	visit = func(id string) error {
		color[id] = gray
		for _, pre := range g.byID[id].Prerequisites {
			switch color[pre] {
			case gray:
				return fmt.Errorf("prerequisite cycle through %q", pre)
			case white:
				if err := visit(pre); err != nil {
					return err
				}
			}
		}
		color[id] = black
		return nil
	}

	for _, id := range g.order {
		if color[id] == white {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}
