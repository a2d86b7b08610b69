package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"restaurant-analytics/internal/domain"

	"github.com/google/uuid"
)

const (
	RestaurantsFile = "restaurants.json"
	OrdersFile      = "orders.json"
)

// FileSource reads the dataset from restaurants.json and orders.json in Dir.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

// Load resolves Dir once so both collections come from the same generation.
func (s *FileSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	root, err := filepath.EvalSymlinks(s.Dir)
	if err != nil {
		return nil, &domain.LoadError{Source: "file", Err: err}
	}
	restaurants, err := os.ReadFile(filepath.Join(root, RestaurantsFile))
	if err != nil {
		return nil, &domain.LoadError{Source: "file", Err: err}
	}
	orders, err := os.ReadFile(filepath.Join(root, OrdersFile))
	if err != nil {
		return nil, &domain.LoadError{Source: "file", Err: err}
	}

	snapshot, err := decodeSnapshot(restaurants, orders)
	if err != nil {
		return nil, &domain.LoadError{Source: "file", Err: err}
	}
	return snapshot, nil
}

func decodeSnapshot(restaurantsJSON, ordersJSON []byte) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := decodeCollection(restaurantsJSON, &snapshot.Restaurants); err != nil {
		return nil, fmt.Errorf("decode %s: %w", RestaurantsFile, err)
	}
	if err := decodeCollection(ordersJSON, &snapshot.Orders); err != nil {
		return nil, fmt.Errorf("decode %s: %w", OrdersFile, err)
	}
	return &snapshot, nil
}

// decodeCollection requires a JSON array. A bare null or an empty file is
// treated as corrupt rather than as an empty collection.
func decodeCollection(data []byte, into interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("expected a JSON array")
	}
	return json.Unmarshal(trimmed, into)
}

// WriteFiles publishes a snapshot in the layout FileSource reads. Both
// collections go into a new generation directory next to dir, and dir is
// then swapped to point at it with a single rename of a symlink. A reader
// that resolved dir before the swap keeps reading the previous generation,
// which is retained until the following publish.
func WriteFiles(dir string, snapshot *domain.Snapshot) error {
	dir = filepath.Clean(dir)
	parent, base := filepath.Dir(dir), filepath.Base(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}

	generation := base + generationInfix + uuid.NewString()
	generationDir := filepath.Join(parent, generation)
	if err := os.Mkdir(generationDir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(generationDir, RestaurantsFile), snapshot.Restaurants); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(generationDir, OrdersFile), snapshot.Orders); err != nil {
		return err
	}

	previous, err := currentGeneration(dir)
	if err != nil {
		return err
	}

	link := filepath.Join(parent, "."+base+".link-"+uuid.NewString())
	if err := os.Symlink(generation, link); err != nil {
		return err
	}
	if err := os.Rename(link, dir); err != nil {
		os.Remove(link)
		return fmt.Errorf("publish %s: %w", generation, err)
	}

	pruneGenerations(parent, base, generation, previous)
	return nil
}

const generationInfix = ".gen-"

// currentGeneration returns the generation dir points at. A plain directory
// left by an older layout is moved aside and treated as a generation.
func currentGeneration(dir string) (string, error) {
	info, err := os.Lstat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	case err != nil:
		return "", err
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(dir)
		if err != nil {
			return "", err
		}
		return filepath.Base(target), nil
	case info.IsDir():
		moved := filepath.Base(dir) + generationInfix + "legacy-" + uuid.NewString()
		if err := os.Rename(dir, filepath.Join(filepath.Dir(dir), moved)); err != nil {
			return "", err
		}
		return moved, nil
	default:
		return "", fmt.Errorf("%s is not a directory", dir)
	}
}

func pruneGenerations(parent, base string, keep ...string) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		log.Printf("ERROR: list generations in %s: %v", parent, err)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base+generationInfix) || slices.Contains(keep, name) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(parent, name)); err != nil {
			log.Printf("ERROR: remove generation %s: %v", name, err)
		}
	}
}

func writeJSON(path string, value interface{}) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
