package benchmark

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"
)

// | literal_match_short       |   0.00001621246337890 |   8300 |
var rowRegex = regexp.MustCompile(`^\|\s*(\S+)\s*\|\s*([\d.]+)\s*\|\s*(\d+)\s*\|`)

// ParseTable recovers a ResultSet from a table printed by RenderTable or by
// another implementation using the same layout. Header and separator rows
// are skipped. The timestamp is the parse time.
func ParseTable(r io.Reader, engine string) (*ResultSet, error) {
	rs := &ResultSet{
		Engine:    engine,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Results:   make(map[string]Measurement),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		matches := rowRegex.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}

		ms, err := strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %s: invalid time %q: %w", matches[1], matches[2], err)
		}
		iters, err := strconv.ParseUint(matches[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %s: invalid iterations %q: %w", matches[1], matches[3], err)
		}

		if _, dup := rs.Results[matches[1]]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScenario, matches[1])
		}
		rs.Results[matches[1]] = FromMillis(ms, iters)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(rs.Results) == 0 {
		return nil, fmt.Errorf("no benchmark rows found")
	}
	return rs, nil
}
