package mixture

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// argSplitRegex separates CLI component lists on commas or whitespace.
var argSplitRegex = regexp.MustCompile(`[,\s]+`)

// ParseLine parses one component line. Accepted forms:
//
//	KClO4:65
//	KClO4=65
//	KClO4 65
//	KClO4        (proportion defaults to 1)
//
// Anything after '#' is a comment. Blank and malformed lines report
// ok=false so loaders can skip them without failing the whole input.
func ParseLine(line string) (Component, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Component{}, false
	}

	sep := ""
	switch {
	case strings.Contains(line, ":"):
		sep = ":"
	case strings.Contains(line, "="):
		sep = "="
	}

	if sep == "" {
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			return Component{Formula: fields[0], Proportion: 1.0}, true
		case 2:
			prop, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return Component{}, false
			}
			return Component{Formula: fields[0], Proportion: prop}, true
		default:
			return Component{}, false
		}
	}

	parts := strings.SplitN(line, sep, 2)
	formula := strings.TrimSpace(parts[0])
	prop, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if formula == "" || err != nil {
		return Component{}, false
	}
	return Component{Formula: formula, Proportion: prop}, true
}

// LoadFile reads one component per line from a text file, skipping
// comments and malformed lines. Only I/O failures are errors.
func LoadFile(path string) ([]Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading mixture file: %w", err)
	}
	defer f.Close()

	var components []Component
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if c, ok := ParseLine(scanner.Text()); ok {
			components = append(components, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mixture file: %w", err)
	}
	return components, nil
}

// ParseArg parses a CLI component list like "KClO4:65 Al:35" or
// "KClO4:65,Al:35". Tokens cannot contain spaces, so only the ':',
// '=' and bare-formula forms apply; malformed tokens are skipped.
func ParseArg(s string) []Component {
	var components []Component
	for _, token := range argSplitRegex.Split(strings.TrimSpace(s), -1) {
		if token == "" {
			continue
		}
		if c, ok := ParseLine(token); ok {
			components = append(components, c)
		}
	}
	return components
}
