package session

import "github.com/abhisek/synapz/internal/concepts"

// Build produces the base interleaved sequence: reviews first, then
// new-concept items up to the capacity budget.
//
// Reviews are never starved: up to min(len(reviewPool), capacity) review
// items are taken before any new item. Remaining budget is filled
// round-robin across the new concepts, each visit drawing the concept's
// next bank question with the index wrapping modulo bank length, so banks
// of any size are reusable without exhaustion.
//
// An empty result with empty pools means "nothing to learn", which the
// caller must treat as a distinct outcome, not a failure.
func Build(reviewPool []ReviewCandidate, newPool []concepts.Concept, capacity int) []Item {
	if capacity < 1 {
		capacity = 1
	}

	var items []Item

	reviewCount := min(len(reviewPool), capacity)
	for _, rc := range reviewPool[:reviewCount] {
		q := rc.Question
		items = append(items, Item{
			Kind:       ItemReview,
			ConceptIDs: []string{rc.ConceptID},
			Question:   &q,
		})
	}

	remaining := capacity - reviewCount
	if remaining <= 0 || len(newPool) == 0 {
		// Capacity consumed by reviews (or no new concepts): expected,
		// not an error.
		return items
	}

	// Drop concepts with empty banks; they contribute nothing to draw.
	eligible := make([]concepts.Concept, 0, len(newPool))
	for _, c := range newPool {
		if len(c.Questions) > 0 {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return items
	}

	drawIndex := make([]int, len(eligible))
	for i := 0; i < remaining; i++ {
		c := eligible[i%len(eligible)]
		bankIdx := drawIndex[i%len(eligible)] % len(c.Questions)
		drawIndex[i%len(eligible)]++

		q := c.Questions[bankIdx]
		items = append(items, Item{
			Kind:       ItemNew,
			ConceptIDs: []string{c.ID},
			Question:   &q,
		})
	}

	return items
}

// InsertAt returns a new slice with item inserted at index, shifting
// subsequent items. Out-of-range indexes clamp to the ends.
func InsertAt(items []Item, index int, item Item) []Item {
	if index < 0 {
		index = 0
	}
	if index > len(items) {
		index = len(items)
	}
	out := make([]Item, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	out = append(out, items[index:]...)
	return out
}

// CountKind returns how many items of the given kind the sequence holds.
func CountKind(items []Item, kind ItemKind) int {
	n := 0
	for _, it := range items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}
