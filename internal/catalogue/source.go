package catalogue

import (
	_ "embed"
	"fmt"
	"os"
	"perfumefinder/internal/models"
	"perfumefinder/internal/structures"

	json "github.com/goccy/go-json"
)

//go:embed data/perfumes.json
var embeddedPerfumes []byte

// Source is the read-only catalogue backend. GetByID returns nil, nil when the
// perfume does not exist.
type Source interface {
	GetAll() ([]models.Perfume, error)
	GetByID(id string) (*models.Perfume, error)
}

type JSONSource struct {
	path string
	raw  []byte
}

// NewSource reads the configured dataset file, or the embedded one when no
// path is set. The file is read lazily on GetAll.
func NewSource(conf *structures.Config) Source {
	if conf.Catalogue.Path == "" {
		return NewJSONSource(embeddedPerfumes)
	}
	return &JSONSource{path: conf.Catalogue.Path}
}

func NewJSONSource(raw []byte) *JSONSource {
	return &JSONSource{raw: raw}
}

func (s *JSONSource) GetAll() ([]models.Perfume, error) {
	data := s.raw
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read catalogue %s: %w", s.path, err)
		}
	}

	var items []models.Perfume
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if items == nil {
		items = make([]models.Perfume, 0)
	}
	return items, nil
}

func (s *JSONSource) GetByID(id string) (*models.Perfume, error) {
	items, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	return FindByID(items, id), nil
}
