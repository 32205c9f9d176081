package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat represents the supported seed file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // sentence<TAB>frequency per line
	FormatBinary             // msgpack encoded Data
)

// FormatInfo contains metadata about a seed file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Tab separated sentences",
		Extensions:  []string{".txt", ".tsv"},
		MinSize:     0,
	},
	FormatBinary: {
		Format:      FormatBinary,
		Description: "MessagePack seed",
		Extensions:  []string{".bin", ".msgpack"},
		MinSize:     1, // fixmap header
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// formatForExt maps a file extension to its format.
func formatForExt(filename string) (FileFormat, FormatInfo) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, candidate := range info.Extensions {
			if ext == candidate {
				return format, info
			}
		}
	}
	return FormatUnknown, FormatInfo{}
}

// DetectFileFormat picks the format from the file extension and checks the size is plausible.
func DetectFileFormat(filename string) (FileFormat, error) {
	format, info := formatForExt(filename)
	if format == FormatUnknown {
		return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
	}

	stat, err := os.Stat(filename)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if stat.Size() < info.MinSize {
		return FormatUnknown, fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, stat.Size(), info.Description, info.MinSize)
	}
	return format, nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
