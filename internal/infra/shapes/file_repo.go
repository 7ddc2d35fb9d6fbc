package shapes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/fixgen/internal/domain"
)

type Repository interface {
	List() ([]*domain.Shape, error)
	Get(name string) (*domain.Shape, error)
	GetByPath(path string) (*domain.Shape, error)
}

// FileRepository reads shape documents (.yaml/.yml/.json) from one
// directory. Files that fail to parse are skipped by List.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func (r *FileRepository) List() ([]*domain.Shape, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []*domain.Shape{}, nil
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Shape, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		s, err := r.load(filepath.Join(r.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *FileRepository) Get(name string) (*domain.Shape, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("shape not found: %s", name)
}

// GetByPath loads a shape file by path. Paths are confined to the base
// directory so a shape reference cannot traverse out of it.
func (r *FileRepository) GetByPath(path string) (*domain.Shape, error) {
	resolved, err := r.confine(path)
	if err != nil {
		return nil, err
	}
	return r.load(resolved)
}

func (r *FileRepository) confine(path string) (string, error) {
	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", err
	}
	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	p = filepath.Clean(p)
	if p != base && !strings.HasPrefix(p, base+string(filepath.Separator)) {
		return "", fmt.Errorf("shape path escapes base directory: %s", path)
	}
	return p, nil
}

func (r *FileRepository) load(path string) (*domain.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s domain.Shape
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &s)
	} else {
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("parse shape %s: %w", path, err)
	}

	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &s, nil
}
