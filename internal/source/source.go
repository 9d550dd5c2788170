package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"pickbox/internal/domain"
)

// Lines longer than bufio's 64KiB default are legitimate (long paths, JSON blobs)
const maxLineSize = 1 << 20

// ParseLines reads one option per non-blank line.
// "label<TAB>value" sets both fields, anything else uses the line as label and value.
func ParseLines(r io.Reader) ([]domain.Option, error) {
	var options []domain.Option

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		options = append(options, parseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return options, nil
}

func parseLine(line string) domain.Option {
	if label, value, ok := strings.Cut(line, "\t"); ok {
		return domain.Option{Label: label, Value: value}
	}
	return domain.Option{Label: line, Value: line}
}

// FromArgs turns positional arguments into options
func FromArgs(args []string) []domain.Option {
	options := make([]domain.Option, 0, len(args))
	for _, arg := range args {
		if arg == "" {
			continue
		}
		options = append(options, parseLine(arg))
	}
	return options
}

// optionFile is the TOML layout:
//
//	[[option]]
//	label = "Ohio"
//	value = "OH"
type optionFile struct {
	Option []struct {
		Label string `toml:"label"`
		Value string `toml:"value"`
	} `toml:"option"`
}

// ParseTOML decodes a TOML option file. A missing value defaults to the label.
func ParseTOML(data []byte) ([]domain.Option, error) {
	var file optionFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	options := make([]domain.Option, 0, len(file.Option))
	for i, o := range file.Option {
		if o.Label == "" {
			return nil, fmt.Errorf("option %d has no label", i+1)
		}
		value := o.Value
		if value == "" {
			value = o.Label
		}
		options = append(options, domain.Option{Label: o.Label, Value: value})
	}
	return options, nil
}

// LoadFile reads options from path, picking the format by extension
func LoadFile(path string) ([]domain.Option, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read options file: %w", err)
		}
		return ParseTOML(data)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file: %w", err)
	}
	defer f.Close()
	return ParseLines(f)
}
