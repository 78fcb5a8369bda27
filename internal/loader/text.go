package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/roach88/relcheck/internal/ir"
)

// setSeparator splits the interior of the set literal.
const setSeparator = ", "

// maxLineSize bounds a single source line.
const maxLineSize = 1 << 20

const byteOrderMark = "\ufeff"

// Parse reads a two-line text source: the set literal followed by the
// relation literal. Blank lines are skipped; anything after the relation
// line is ignored. A reader that fails is reported as SOURCE_NOT_FOUND.
func Parse(r io.Reader) (ir.Relation, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var lines []string
	var lineNos []int
	lineNo := 0
	for len(lines) < 2 && scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if lineNo == 1 {
			text = strings.TrimPrefix(text, byteOrderMark)
		}
		line := strings.TrimSpace(text)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		lineNos = append(lineNos, lineNo)
	}
	switch err := scanner.Err(); {
	case errors.Is(err, bufio.ErrTooLong):
		return ir.Relation{}, &LoadError{
			Code:    ErrCodeMalformedInput,
			Message: fmt.Sprintf("line longer than %d bytes", maxLineSize),
			Line:    lineNo + 1,
			Err:     err,
		}
	case err != nil:
		return ir.Relation{}, NewSourceNotFoundError("", err)
	}

	switch len(lines) {
	case 0:
		return ir.Relation{}, malformed(0, "missing set line")
	case 1:
		return ir.Relation{}, malformed(lineNos[0]+1, "missing relation line")
	}

	return parseLines(lines[0], lines[1], lineNos[0], lineNos[1])
}

// ParseLines parses an already separated set line and relation line.
func ParseLines(setLine, relationLine string) (ir.Relation, error) {
	return parseLines(setLine, relationLine, 1, 2)
}

func parseLines(setLine, relationLine string, setNo, relNo int) (ir.Relation, error) {
	labels, err := parseSet(setLine, setNo)
	if err != nil {
		return ir.Relation{}, err
	}
	pairs, err := parsePairs(relationLine, relNo)
	if err != nil {
		return ir.Relation{}, err
	}
	return buildRelation(labels, pairs, setNo, relNo)
}

// parseSet strips the braces and tokenizes on ", ".
func parseSet(line string, lineNo int) ([]string, error) {
	inner, err := unbrace(line, "set", lineNo)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(inner) == "" {
		return []string{}, nil
	}
	return strings.Split(inner, setSeparator), nil
}

// parsePairs strips braces, parentheses and commas, then consumes the
// remaining whitespace-separated labels two at a time.
func parsePairs(line string, lineNo int) ([][2]string, error) {
	inner, err := unbrace(line, "relation", lineNo)
	if err != nil {
		return nil, err
	}
	inner = strings.NewReplacer("(", "", ")", "", ",", "").Replace(inner)
	tokens := strings.Fields(inner)
	if len(tokens)%2 != 0 {
		return nil, malformed(lineNo, "odd number of labels (%d) in relation", len(tokens))
	}

	pairs := make([][2]string, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		pairs = append(pairs, [2]string{tokens[i], tokens[i+1]})
	}
	return pairs, nil
}

func unbrace(line, what string, lineNo int) (string, error) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '{' || line[len(line)-1] != '}' {
		return "", malformed(lineNo, "%s must be enclosed in braces: %s", what, quote(line))
	}
	return line[1 : len(line)-1], nil
}

// quote shortens long lines for error messages, cutting on a rune boundary.
func quote(s string) string {
	const limit = 40
	if utf8.RuneCountInString(s) > limit {
		runes := []rune(s)
		s = string(runes[:limit]) + "..."
	}
	return fmt.Sprintf("%q", s)
}
