package catalog

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes YAML bytes into a book list.
func Parse(data []byte) ([]Book, error) {
	if len(data) == 0 {
		return []Book{}, nil
	}
	var books []Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing books YAML: %w", err)
	}
	if books == nil {
		return []Book{}, nil
	}
	return books, nil
}

// Marshal encodes a book list to YAML bytes.
func Marshal(books []Book) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("encoding books: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseCategories decodes YAML bytes into a category list.
func ParseCategories(data []byte) ([]Category, error) {
	if len(data) == 0 {
		return []Category{}, nil
	}
	var cats []Category
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("parsing categories YAML: %w", err)
	}
	if cats == nil {
		return []Category{}, nil
	}
	return cats, nil
}

// MarshalCategories encodes a category list to YAML bytes.
func MarshalCategories(cats []Category) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cats); err != nil {
		return nil, fmt.Errorf("encoding categories: %w", err)
	}
	return buf.Bytes(), nil
}
