package transcript

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported reports whether path has an extension LoadFile understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".txt":
		return true
	}
	return false
}

// LoadFile reads a transcript document. Text files go through Convert.
func LoadFile(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return Decode(path, b)
}

// Decode parses b according to the extension of name.
func Decode(name string, b []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, &DecodeError{Path: name, Err: err}
		}
	case ".txt":
		d, _, err := Convert(bytes.NewReader(b), ConvertOptions{})
		if err != nil {
			return nil, &DecodeError{Path: name, Err: err}
		}
		doc = d
	default:
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, &DecodeError{Path: name, Err: err}
		}
	}
	return doc, nil
}
