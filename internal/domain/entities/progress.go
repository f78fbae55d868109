package entities

// Progress tracks how many files of the fixed set were processed in the current run.
// The ratio never decreases between two calls to Reset.
type Progress struct {
	processed int
	total     int
}

// NewProgress creates a progress tracker for total files.
func NewProgress(total int) *Progress {
	p := &Progress{}
	p.Reset(total)
	return p
}

// Reset starts a new run with zero files processed.
func (p *Progress) Reset(total int) {
	if total < 0 {
		total = 0
	}
	p.processed = 0
	p.total = total
}

// Advance records that processed files are done. Lower values than the current
// one are ignored and values above the total are clamped.
func (p *Progress) Advance(processed int) {
	if processed > p.total {
		processed = p.total
	}
	if processed > p.processed {
		p.processed = processed
	}
}

// Processed returns the number of files processed so far.
func (p *Progress) Processed() int { return p.processed }

// Total returns the number of files in the run.
func (p *Progress) Total() int { return p.total }

// Ratio returns processed/total in [0,1]; an empty run stays at 0.
func (p *Progress) Ratio() float64 {
	if p.total == 0 {
		return 0
	}
	return float64(p.processed) / float64(p.total)
}

// Complete reports whether every file was attempted.
func (p *Progress) Complete() bool {
	return p.total > 0 && p.processed == p.total
}
