package snapshot

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"myShopRecs/domain"
)

const normTolerance = 1e-6

// FileStore persists the fitted model snapshot as a single JSON blob. Load
// is strict: a corrupt or mismatched snapshot must abort startup rather than
// serve degenerate scores.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(snap *domain.ModelSnapshot) error {
	if err := validate(snap); err != nil {
		return fmt.Errorf("refusing to save invalid snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (*domain.ModelSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var snap domain.ModelSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}

	if err := validate(&snap); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.path, err)
	}
	return &snap, nil
}

func validate(snap *domain.ModelSnapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	if snap.Version != domain.SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d (want %d)", snap.Version, domain.SnapshotVersion)
	}
	if len(snap.Items) == 0 {
		return fmt.Errorf("empty catalog")
	}
	if len(snap.Vectors) != len(snap.Items) {
		return fmt.Errorf("vector count %d does not match catalog size %d", len(snap.Vectors), len(snap.Items))
	}

	for i, vec := range snap.Vectors {
		if len(vec) != snap.Dim {
			return fmt.Errorf("vector %d has dimensionality %d (want %d)", i, len(vec), snap.Dim)
		}
		var sum float64
		for _, x := range vec {
			sum += x * x
		}
		if math.Abs(math.Sqrt(sum)-1) > normTolerance {
			return fmt.Errorf("vector for product %s is not unit-norm", snap.Items[i].ProductID)
		}
	}

	for _, it := range snap.Items {
		pop, ok := snap.Popularity[it.ProductID]
		if !ok {
			return fmt.Errorf("missing popularity entry for product %s", it.ProductID)
		}
		if pop < 0 || pop > 1 {
			return fmt.Errorf("popularity %.6f for product %s out of range", pop, it.ProductID)
		}
	}

	return nil
}
