// Package remix turns an analysis into a sequence of spans to render.
//
// A Program is either Go code registered by name in a Registry or a
// declarative YAML document parsed by ParseProgram. Declarative programs
// select one level, filter it with predicates from the selection package,
// optionally sort it with a key from the sorting package, and emit the
// spans of what remains. They cannot reach anything outside the analysis.
package remix
