// Package cabin implements the cabin scene: clickable fixtures, a paginated
// information panel, ambient oscillators and blinking lights.
//
// Each frame the scene takes a Snapshot of its flags, computes a TargetSet
// from it with the pure ComputeTargets, and hands that to the Animator, which
// owns all damp state.
package cabin

// Toggles are the input-driven flags of the cabin. Each is flipped by exactly
// one kind of event and read every frame.
type Toggles struct {
	Book1Open     bool
	Book2Open     bool
	Lever1Active  bool
	Lever2Active  bool
	GlobeSpinning bool

	// Cosmetic only; page changes never wait on these.
	ArrowRightPressed bool
	ArrowLeftPressed  bool

	// Set by the startup timer.
	ModalVisible bool
}

// Snapshot is the state read by one frame.
type Snapshot struct {
	Toggles
	Page  int
	Total int
}

// Pager walks the panel pages. Page 0 is the welcome page; the index always
// wraps modulo the page count.
type Pager struct {
	page  int
	total int
}

// NewPager creates a pager on page 0. A total below 1 is treated as 1.
func NewPager(total int) *Pager {
	if total < 1 {
		total = 1
	}
	return &Pager{total: total}
}

// Page returns the current page index.
func (p *Pager) Page() int {
	return p.page
}

// Total returns the page count.
func (p *Pager) Total() int {
	return p.total
}

// Next advances one page, wrapping to 0 after the last.
func (p *Pager) Next() int {
	p.page = (p.page + 1) % p.total
	return p.page
}

// Prev goes back one page, wrapping to the last page before 0.
func (p *Pager) Prev() int {
	p.page = (p.page - 1 + p.total) % p.total
	return p.page
}

// SetTotal changes the page count after a catalog reload. A page that falls
// out of range resets to 0; it reports whether that happened.
func (p *Pager) SetTotal(total int) bool {
	if total < 1 {
		total = 1
	}
	p.total = total
	if p.page >= total {
		p.page = 0
		return true
	}
	return false
}
