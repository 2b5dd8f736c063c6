// Package walk provides the bookkeeping used to traverse relation graphs
// between target types without visiting a type twice.
package walk

// Dealer hands out pending items exactly once, remembering what was already dealt.
type Dealer[T comparable] struct {
	needs []T
	seen  map[T]struct{}
}

// Needs queues item unless it was queued or dealt before.
func (d *Dealer[T]) Needs(item T) {
	if d.seen == nil {
		d.seen = make(map[T]struct{})
	}

	if _, ok := d.seen[item]; ok {
		return
	}

	d.seen[item] = struct{}{}
	d.needs = append(d.needs, item)
}

// Next pops the oldest queued item.
func (d *Dealer[T]) Next() (item T, ok bool) {
	if len(d.needs) == 0 {
		return
	}

	item = d.needs[0]
	d.needs = d.needs[1:]

	return item, true
}

// Seen reports whether item was ever queued.
func (d *Dealer[T]) Seen(item T) bool {
	_, ok := d.seen[item]
	return ok
}
