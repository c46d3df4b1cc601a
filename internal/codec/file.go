package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/gridsow/internal/tree"
)

// Format names a tree serialization.
type Format string

const (
	YAML Format = "yaml"
	HCL  Format = "hcl"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
		return YAML, nil
	case ".hcl":
		return HCL, nil
	default:
		return "", fmt.Errorf("%w: extension of %q", ErrFormat, path)
	}
}

// Decode parses data in the given format.
func Decode(format Format, data []byte, filename string) (tree.Value, error) {
	switch format {
	case YAML:
		return DecodeYAML(data)
	case HCL:
		return DecodeHCL(data, filename)
	default:
		return tree.Value{}, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Encode renders v in the given format.
func Encode(format Format, v tree.Value) ([]byte, error) {
	switch format {
	case YAML:
		return EncodeYAML(v)
	case HCL:
		return EncodeHCL(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// ReadFile decodes the file at path, choosing the format by extension.
func ReadFile(path string) (tree.Value, error) {
	format, err := FormatOf(path)
	if err != nil {
		return tree.Value{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return tree.Value{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v, err := Decode(format, data, path)
	if err != nil {
		return tree.Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
