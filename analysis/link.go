package analysis

// Link connects the levels of a. It is run by New unless WithoutLinking was
// given, and may be re-run at any time: previous links are cleared first.
//
// Every level must be sorted ascending by Start and free of overlaps. All
// passes walk the finer level with a cursor that never moves backwards, so
// violations produce missing or misassigned links, not errors.
func Link(a *Analysis) {
	levels := a.Levels()
	for _, l := range levels {
		connectNeighbours(l)
	}

	for i := 0; i+1 < len(levels); i++ {
		connectChildren(levels[i], levels[i+1])
	}

	for _, l := range []*List{a.Bars, a.Beats, a.Tatums} {
		connectFirstOverlap(l, a.Segments)
		connectAllOverlaps(l, a.Segments)
	}

	var segs []*Quantum
	if a.Segments != nil {
		segs = a.Segments.quanta
	}

	a.FSegments = newOwnedList(KindSegment, mergeSegments(segs), a)
}

func connectNeighbours(l *List) {
	if l == nil {
		return
	}

	for i, q := range l.quanta {
		q.resetLinks()
		q.index = i

		if i > 0 {
			q.prev = l.quanta[i-1]
		}

		if i+1 < len(l.quanta) {
			q.next = l.quanta[i+1]
		}
	}
}

// connectChildren assigns each child whose start lies in [parent.Start,
// parent.End) to that parent. The scan over children resumes at the last
// assigned child and stops at the first child starting past the parent.
func connectChildren(parents, children *List) {
	if parents == nil || children == nil {
		return
	}

	last := 0
	for _, p := range parents.quanta {
		p.children = nil

		for j := last; j < len(children.quanta); j++ {
			c := children.quanta[j]
			if c.Start >= p.Start && c.Start < p.End {
				c.parent = p
				c.indexInParent = len(p.children)
				p.children = append(p.children, c)
				last = j
			} else if c.Start > p.Start {
				break
			}
		}
	}
}

// connectFirstOverlap records, for each quantum, the first segment starting
// at or after it.
func connectFirstOverlap(quanta, segments *List) {
	if quanta == nil || segments == nil {
		return
	}

	last := 0
	for _, q := range quanta.quanta {
		for j := last; j < len(segments.quanta); j++ {
			s := segments.quanta[j]
			if s.Start >= q.Start {
				q.firstOverlap = s
				last = j

				break
			}
		}
	}
}

// connectAllOverlaps collects the segments intersecting each quantum,
// boundaries included. The scan for a quantum resumes at the last segment
// collected for its predecessor, so a segment lying before that cursor is
// never reported again even if it also spans a later quantum.
func connectAllOverlaps(quanta, segments *List) {
	if quanta == nil || segments == nil {
		return
	}

	last := 0
	for _, q := range quanta.quanta {
		q.overlapping = nil

		for j := last; j < len(segments.quanta); j++ {
			s := segments.quanta[j]
			if s.End < q.Start {
				continue
			}

			if s.Start > q.End {
				break
			}

			last = j
			q.overlapping = append(q.overlapping, s)
		}
	}
}
