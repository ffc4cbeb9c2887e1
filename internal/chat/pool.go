package chat

// WaitingPool is the ordered candidate set for matching. Entries are kept in
// enqueue order so that equally scored candidates are matched first-in
// first-matched. Like the Registry it holds no lock of its own; the Engine
// serializes access.
type WaitingPool struct {
	order  []string
	member map[string]struct{}
}

// NewWaitingPool creates an empty pool.
func NewWaitingPool() *WaitingPool {
	return &WaitingPool{member: make(map[string]struct{})}
}

// Enqueue adds id to the back of the pool. Duplicates are ignored, so a
// client re-sending join while already waiting keeps its original position.
func (p *WaitingPool) Enqueue(id string) {
	if _, ok := p.member[id]; ok {
		return
	}
	p.member[id] = struct{}{}
	p.order = append(p.order, id)
}

// Remove takes id out of the pool if present; no-op otherwise. Called on
// match, leave and disconnect so no stale entry outlives its client.
func (p *WaitingPool) Remove(id string) {
	if _, ok := p.member[id]; !ok {
		return
	}
	delete(p.member, id)
	for i, v := range p.order {
		if v == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Contains reports pool membership.
func (p *WaitingPool) Contains(id string) bool {
	_, ok := p.member[id]
	return ok
}

// Len returns the number of waiting candidates.
func (p *WaitingPool) Len() int {
	return len(p.order)
}

// DequeueBestMatch scans waiting candidates in enqueue order and removes and
// returns the one sharing the most interests with the requester. Ties go to
// the earliest enqueued candidate; zero shared interests is still a valid
// match. Candidates that are gone from the registry or were paired by a
// racing match are dropped from the pool as the scan passes them. Returns
// nil when no eligible candidate exists.
//
// lookup resolves an id against the registry; it returns nil for ids that
// are no longer connected.
func (p *WaitingPool) DequeueBestMatch(requester *Client, lookup func(id string) *Client) *Client {
	var best *Client
	bestScore := -1

	live := p.order[:0]
	for _, id := range p.order {
		if id == requester.ID {
			live = append(live, id)
			continue
		}
		cand := lookup(id)
		if cand == nil || cand.partnerID != "" {
			delete(p.member, id)
			continue
		}
		live = append(live, id)
		if score := sharedCount(requester.interests, cand.interests); score > bestScore {
			bestScore = score
			best = cand
		}
	}
	p.order = live

	if best != nil {
		p.Remove(best.ID)
	}
	return best
}

func sharedCount(a, b []string) int {
	n := 0
	for _, tag := range a {
		for _, other := range b {
			if tag == other {
				n++
				break
			}
		}
	}
	return n
}

// sharedInterests returns the requester's tags that the candidate also has,
// preserving the requester's order.
func sharedInterests(a, b []string) []string {
	var shared []string
	for _, tag := range a {
		for _, other := range b {
			if tag == other {
				shared = append(shared, tag)
				break
			}
		}
	}
	return shared
}
