// Package adjacency builds a two-column ("src", "dst") table.Table
// keyed on one of its columns and forwards point-equality queries to
// the chosen partitioning strategy, the only API a graph traversal
// needs: given a node value, which neighbors does it have.
package adjacency
