package resite

// Fragment is a contiguous piece of the sequence, 0-based [Start, End).
type Fragment struct {
	Start int
	End   int
	Seq   string
}

// Digestion is the result of scanning the sequence with one enzyme.
type Digestion struct {
	// Enzyme that was scanned for
	Enzyme Enzyme

	// Cuts are the cleavage positions, strictly increasing
	Cuts []int

	// Fragments partition the sequence; always len(Cuts)+1 of them
	Fragments []Fragment
}

// cuts returns every cleavage position of enz within seq, in increasing
// order. Matching is literal (both seq and the pattern are upper-cased by
// the readers) and windows may overlap: after a match at i the scan
// resumes at i+1, so overlapping recognition sites are all found.
func cuts(seq string, enz Enzyme) (positions []int) {
	n := len(enz.Pattern)
	if n == 0 || len(seq) < n {
		return nil
	}

	for i := 0; i+n <= len(seq); i++ {
		if seq[i:i+n] == enz.Pattern {
			positions = append(positions, i+enz.CutOffset)
		}
	}
	return
}

// fragments splits seq at the cut positions. With N cuts there are always
// N+1 fragments and their concatenation is seq; a cut at 0 or at len(seq)
// yields a zero-length fragment at that end.
func fragments(seq string, positions []int) []Fragment {
	bounds := make([]int, 0, len(positions)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, positions...)
	bounds = append(bounds, len(seq))

	frags := make([]Fragment, 0, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		frags = append(frags, Fragment{
			Start: bounds[i-1],
			End:   bounds[i],
			Seq:   seq[bounds[i-1]:bounds[i]],
		})
	}
	return frags
}

// digestAll scans seq with each enzyme, in the order they were listed.
// Each enzyme's scan is independent of the others.
func digestAll(seq *Sequence, enzymes []Enzyme) []Digestion {
	digestions := make([]Digestion, 0, len(enzymes))
	for _, e := range enzymes {
		c := cuts(seq.Bases, e)
		digestions = append(digestions, Digestion{
			Enzyme:    e,
			Cuts:      c,
			Fragments: fragments(seq.Bases, c),
		})
	}
	return digestions
}
