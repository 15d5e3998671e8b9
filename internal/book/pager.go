package book

// Pager walks a fixed snapshot of records one page at a time.
// A Pager cannot be rewound; call AddressBook.Pages again to start over.
type Pager struct {
	snapshot []*Record
	size     int
	page     int
}

// Next returns the next non-empty page. It returns false once every record
// has been returned, and keeps returning false afterwards.
func (p *Pager) Next() ([]*Record, bool) {
	start := p.page * p.size
	if start >= len(p.snapshot) {
		return nil, false
	}
	end := min(start+p.size, len(p.snapshot))
	p.page++
	return p.snapshot[start:end:end], true
}
