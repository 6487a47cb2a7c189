package relay

import "fmt"

// Pager steps through encoded chunks one at a time. Navigation is clamped
// at both ends.
type Pager struct {
	chunks []string
	index  int
}

// NewPager creates a pager positioned at the first chunk.
func NewPager(chunks []string) *Pager {
	return &Pager{chunks: chunks}
}

// Current returns the chunk on display, or "" when there are no chunks.
func (p *Pager) Current() string {
	if len(p.chunks) == 0 {
		return ""
	}
	return p.chunks[p.index]
}

// Index возвращает номер текущего фрагмента (с нуля)
func (p *Pager) Index() int {
	return p.index
}

// Len возвращает количество фрагментов
func (p *Pager) Len() int {
	return len(p.chunks)
}

// Next moves forward and reports whether the position changed.
func (p *Pager) Next() bool {
	if p.index+1 >= len(p.chunks) {
		return false
	}
	p.index++
	return true
}

// Prev moves backward and reports whether the position changed.
func (p *Pager) Prev() bool {
	if p.index == 0 {
		return false
	}
	p.index--
	return true
}

// Label formats the position for display, e.g. "2/5".
func (p *Pager) Label() string {
	if len(p.chunks) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", p.index+1, len(p.chunks))
}
