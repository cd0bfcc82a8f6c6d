// Package yaml loads article catalogs from YAML documents.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/ghulammustafashad/medical"
	yamlv3 "gopkg.in/yaml.v3"
)

// ParseCatalog decodes and validates a catalog. Unknown fields are
// rejected so that typos in article entries surface early.
func ParseCatalog(r io.Reader) (*medical.Catalog, error) {
	dec := yamlv3.NewDecoder(r)
	dec.KnownFields(true)

	var c medical.Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, medical.Errorf(medical.EINVALID, "catalog is empty")
		}
		return nil, medical.Errorf(medical.EINVALID, "invalid catalog: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (*medical.Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, medical.Errorf(medical.ENOTFOUND, "catalog %s not found", path)
	} else if err != nil {
		return nil, err
	}
	return ParseCatalog(bytes.NewReader(data))
}
