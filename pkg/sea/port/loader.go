package port

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/dynop/routing-service/pkg/sea/coord"
)

const (
	colChangeIndicator = 0
	colCountryCode     = 1
	colLocationCode    = 2
	colName            = 3
	colNameASCII       = 4
	colSubdivision     = 5
	colFunction        = 6
	colStatus          = 7
	colCoordinates     = 10
	minColumns         = 11
)

// LoadSeaports reads zero or more UN/LOCODE CSV files and returns all
// rows satisfying the filter predicate, in first-seen order,
// deduplicated by Unlocode. Per-line and per-file problems are logged
// and skipped; the whole load never fails because of them, so the
// returned error is always nil today and exists only so callers have
// an idiomatic error return to check.
func LoadSeaports(paths ...string) ([]Port, error) {
	seen := make(map[string]bool)
	var ports []Port

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("warn: seaport input file missing, skipping: %s (%v)", path, err)
			continue
		}

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			p, ok := parseAndFilterLine(line)
			if !ok {
				log.Printf("debug: skipping malformed or filtered seaport line %s:%d", path, lineNo)
				continue
			}
			if seen[p.Unlocode] {
				continue
			}
			seen[p.Unlocode] = true
			ports = append(ports, p)
		}
		f.Close()
	}

	return ports, nil
}

func parseAndFilterLine(line string) (Port, bool) {
	cols := parseCSVLine(line)
	if len(cols) < minColumns {
		return Port{}, false
	}

	if strings.TrimSpace(cols[colChangeIndicator]) == "X" {
		return Port{}, false
	}
	locationCode := strings.TrimSpace(cols[colLocationCode])
	if locationCode == "" {
		return Port{}, false
	}
	function := strings.TrimSpace(cols[colFunction])
	if function == "" || function[0] != '1' {
		return Port{}, false
	}
	status := strings.TrimSpace(cols[colStatus])
	if !ValidStatuses[status] {
		return Port{}, false
	}
	c, ok := coord.Parse(cols[colCoordinates])
	if !ok {
		return Port{}, false
	}

	countryCode := strings.TrimSpace(cols[colCountryCode])
	name := strings.TrimSpace(cols[colNameASCII])
	if name == "" {
		name = strings.TrimSpace(cols[colName])
	}

	return Port{
		Unlocode:    normalizeUnlocode(countryCode, locationCode),
		Name:        name,
		CountryCode: strings.ToUpper(countryCode),
		Subdivision: strings.TrimSpace(cols[colSubdivision]),
		Lat:         c.Lat,
		Lon:         c.Lon,
		Function:    function,
		Status:      status,
	}, true
}

// parseCSVLine is a hand-rolled, quote-aware comma splitter. The
// UN/LOCODE distribution in the wild mixes quoted fields containing
// commas with unquoted fields in the same record, which the standard
// library's strict RFC 4180 encoding/csv rejects outright; this
// mirrors the original loader's own char-by-char parser instead.
func parseCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cur.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteRune(c)
			}
		case c == '"':
			inQuotes = true
		case c == ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
