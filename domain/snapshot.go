package domain

// SnapshotVersion is bumped whenever the serialized layout changes; the
// server refuses to load a snapshot with a different version.
const SnapshotVersion = 1

// ModelSnapshot is the fitted model produced by the trainer and loaded once
// at server start. Items and Vectors are positionally aligned; every vector
// is unit-norm; Popularity has exactly one entry per catalog item.
type ModelSnapshot struct {
	Version    int                `json:"version"`
	Dim        int                `json:"dim"`
	Items      []Item             `json:"items"`
	Vectors    [][]float64        `json:"vectors"`
	Popularity map[string]float64 `json:"popularity"`
}
