// Package ingest reads plain-text edge lists and builds CSR graphs.
//
// The input format is one directed edge per line, two whitespace-separated
// non-negative integers "origin destination", no header and no weight
// column. Loading is a two-pass scan: the first pass sizes the structure
// (max node ID, edge count), the second fills the per-node adjacency
// buffers. Seekable sources are rewound between passes; for non-seekable
// streams the parsed pairs are buffered in memory during the first pass.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sanonone/grafdb/pkg/core"
)

var (
	// ErrEmptyDataset is returned when the source contains no edges at all.
	ErrEmptyDataset = errors.New("empty dataset: no edges parsed")

	// ErrMalformedLine is returned (under the FailFast policy) when a line
	// does not parse as two non-negative integers. The wrapping error
	// carries the line number and content.
	ErrMalformedLine = errors.New("malformed edge line")
)

// MalformedPolicy decides what happens when a line fails the two-integer format.
type MalformedPolicy int

const (
	// FailFast aborts the load on the first malformed line. This is the
	// default: either a fully valid graph is produced or none is.
	FailFast MalformedPolicy = iota

	// SkipAndWarn drops malformed lines with a warning log and keeps going.
	SkipAndWarn
)

// ParsePolicy maps a configuration string to a MalformedPolicy.
func ParsePolicy(s string) (MalformedPolicy, error) {
	switch s {
	case "", "fail_fast":
		return FailFast, nil
	case "skip_and_warn":
		return SkipAndWarn, nil
	default:
		return FailFast, fmt.Errorf("unknown malformed-line policy %q (use fail_fast or skip_and_warn)", s)
	}
}

// Options configures a load.
type Options struct {
	OnMalformed MalformedPolicy
}

// LoadFile opens the dataset at path and builds a CSR graph from it.
// An unreadable path surfaces the wrapped os error (errors.Is with
// fs.ErrNotExist works through it).
func LoadFile(path string, opts Options) (*core.CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Load(f, opts)
}

// Load builds a CSR graph from an edge-list stream.
//
// There is no partial success: any error returns a nil graph. Ingestion
// never mutates a previously built graph.
func Load(r io.Reader, opts Options) (*core.CSR, error) {
	seeker, seekable := r.(io.Seeker)

	maxID := int32(-1)
	edgeCount := 0
	var buffered [][2]int32

	// Pass 1: size the structure. Non-seekable sources also buffer the
	// parsed pairs here so the stream never needs re-reading.
	err := scanEdges(r, opts, true, func(origin, dest int32) {
		if origin > maxID {
			maxID = origin
		}
		if dest > maxID {
			maxID = dest
		}
		edgeCount++
		if !seekable {
			buffered = append(buffered, [2]int32{origin, dest})
		}
	})
	if err != nil {
		return nil, err
	}
	if edgeCount == 0 {
		return nil, ErrEmptyDataset
	}

	builder := core.NewBuilder(int(maxID) + 1)

	// Pass 2: fill the adjacency buffers in stream order.
	if seekable {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind dataset: %w", err)
		}
		// Malformed lines were already reported in pass 1; stay quiet here.
		err = scanEdges(r, opts, false, builder.AddEdge)
		if err != nil {
			return nil, err
		}
	} else {
		for _, e := range buffered {
			builder.AddEdge(e[0], e[1])
		}
	}

	return builder.Build(), nil
}

// scanEdges streams the source line by line and hands each parsed edge to fn.
// Blank lines are ignored, matching the whitespace-tolerant original format.
func scanEdges(r io.Reader, opts Options, warn bool, fn func(origin, dest int32)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		origin, dest, err := parseEdge(line)
		if err != nil {
			if opts.OnMalformed == SkipAndWarn {
				if warn {
					slog.Warn("skipping malformed edge line", "line", lineNo, "content", line, "error", err)
				}
				continue
			}
			return fmt.Errorf("line %d (%q): %v: %w", lineNo, line, err, ErrMalformedLine)
		}
		fn(origin, dest)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}
	return nil
}

// parseEdge parses "origin destination". Negative IDs are rejected.
func parseEdge(line string) (int32, int32, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	origin, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("origin: %v", err)
	}
	dest, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("destination: %v", err)
	}
	if origin < 0 || dest < 0 {
		return 0, 0, fmt.Errorf("negative node id")
	}
	return int32(origin), int32(dest), nil
}
