// Package cluster classifies segments with k-means over one of their
// 12-dimensional vector fields.
//
// KMeans seeds every cluster with at least one member, then alternates
// centroid and assignment passes until no segment moves or the pass limit
// is reached. A cluster that loses all of its members stops the run with
// ErrDegenerateCluster. Labels are written into Quantum.Cluster only when
// the run succeeds.
package cluster
