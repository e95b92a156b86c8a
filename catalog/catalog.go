package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/selekta/selekta/core"
)

//go:embed data
var defaultData embed.FS

// Catalog holds the finite reference lists used for literal matching during
// query interpretation. It is loaded once at startup and treated as
// read-only afterwards.
type Catalog struct {
	Roles     []string
	Skills    []string
	Cities    []string
	Languages []string
}

// File names expected inside a catalog directory.
const (
	rolesFile     = "roles.json"
	skillsFile    = "skills.json"
	citiesFile    = "cities.json"
	languagesFile = "languages.json"
)

// LoadDir loads a catalog from a directory containing roles.json,
// skills.json, cities.json and languages.json. A missing or malformed file
// is fatal and returns an error wrapping core.ErrCatalogLoad.
func LoadDir(dir string) (*Catalog, error) {
	return loadFS(os.DirFS(dir))
}

// Default returns the catalog embedded in the binary. It covers the
// reference data the candidate corpus was built with and is meant for the
// CLI and tests; production deployments point LoadDir at their own data.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrCatalogLoad, err)
	}
	return loadFS(sub)
}

func loadFS(fsys fs.FS) (*Catalog, error) {
	roles, err := loadList(fsys, rolesFile)
	if err != nil {
		return nil, err
	}
	skills, err := loadList(fsys, skillsFile)
	if err != nil {
		return nil, err
	}
	cities, err := loadList(fsys, citiesFile)
	if err != nil {
		return nil, err
	}
	languages, err := loadList(fsys, languagesFile)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Roles:     roles,
		Skills:    skills,
		Cities:    cities,
		Languages: languages,
	}, nil
}

func loadList(fsys fs.FS, name string) ([]string, error) {
	bs, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", core.ErrCatalogLoad, name, err)
	}

	var list []string
	if err := json.Unmarshal(bs, &list); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", core.ErrCatalogLoad, name, err)
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", core.ErrCatalogLoad, name)
	}

	return list, nil
}
