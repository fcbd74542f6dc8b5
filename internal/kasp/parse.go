package kasp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseFile reads one KlusterCaller CSV export from disk.
func ParseFile(path string) (*Plate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plate file: %w", err)
	}
	defer file.Close()

	plate, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return plate, nil
}

// Parse reads a KlusterCaller CSV export. The preamble before the
// "Content," header is scanned for the plate name on the ID1 line; every
// line after the header is a well. An input without a "Content," header
// yields an empty, unnamed plate.
func Parse(r io.Reader) (*Plate, error) {
	scanner := bufio.NewScanner(r)

	name := ""
	inWells := false
	var wells []Well
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")

		if !inWells {
			if strings.HasPrefix(line, "Content,") {
				inWells = true
				continue
			}
			if strings.HasPrefix(line, "ID1") {
				if _, after, found := strings.Cut(line, ": "); found {
					name, _, _ = strings.Cut(after, ",")
				}
			}
			continue
		}

		well, err := parseWell(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		wells = append(wells, well)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewPlate(name, wells), nil
}

// parseWell decodes one data line: sample, column, row, FAM, HEX, ROX.
func parseWell(line string) (Well, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 6 {
		return Well{}, fmt.Errorf("well line has %d fields, want at least 6", len(fields))
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Well{}, fmt.Errorf("well column %q is not a number", fields[1])
	}
	fluor := make([]int, 3)
	for i, f := range fields[3:6] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Well{}, fmt.Errorf("fluorophore reading %q is not a number", f)
		}
		fluor[i] = v
	}

	return Well{
		RowCol: fmt.Sprintf("%s%02d", fields[2], col),
		Sample: fields[0],
		FAM:    fluor[0],
		HEX:    fluor[1],
		ROX:    fluor[2],
	}, nil
}
