// Package analysis builds the quantum hierarchy of a music-structure analysis.
//
// An analysis payload carries five flat levels: sections, bars, beats, tatums
// and segments. New turns each level into an ordered List of *Quantum values
// and, unless disabled, runs Link to connect them:
//
//   - siblings: Index, Prev and Next within a level;
//   - parent/child: sections→bars→beats→tatums→segments, by start-time
//     containment;
//   - segment overlap: FirstOverlap and OverlappingSegments for bars, beats
//     and tatums;
//   - FSegments: consecutive low-confidence segments with similar timbre
//     merged into one.
//
// Linking assumes every level is sorted ascending by Start and free of
// overlaps. It does not verify this; unsorted input yields wrong links
// rather than an error.
//
// Lists are filtered and ordered with Predicate and Key function values, see
// packages selection and sorting:
//
//	downbeats := a.Beats.Filter(selection.OrdinalWithinGroup(1))
//	loudest := a.Segments.SortBy(sorting.Loudness, true)
package analysis
