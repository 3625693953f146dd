package mlio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mlnet/core"
)

// ReadEdgeList parses an edge list into a new network. Layers, actors and
// edges appear in file order.
//
// Errors: ErrBadRecord with the line number, CSV syntax errors, and core
// errors (empty names, negative weights, loops without core.WithLoops).
func ReadEdgeList(r io.Reader, opts ...ReadOption) (*core.Network, error) {
	cfg := gatherReadOptions(opts...)
	net := core.NewNetwork(cfg.netOpts...)

	cr := csv.NewReader(r)
	cr.Comma = cfg.sep
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = cfg.trim
	cr.ReuseRecord = true

	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if first && cfg.header {
			first = false
			continue
		}
		first = false
		if err := addRecord(net, rec, cfg.trim); err != nil {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %w", line, err)
		}
	}

	return net, nil
}

// ReadEdgeListFile opens path and calls ReadEdgeList.
func ReadEdgeListFile(path string, opts ...ReadOption) (*core.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadEdgeListFile: %w", err)
	}
	defer f.Close()

	return ReadEdgeList(f, opts...)
}

func addRecord(net *core.Network, rec []string, trim bool) error {
	if trim {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
	}
	switch len(rec) {
	case 2:
		_, err := net.AddNode(rec[1], rec[0])
		return err
	case 3:
		_, err := net.AddEdge(rec[0], rec[1], rec[2], 1)
		return err
	case 4:
		w, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return fmt.Errorf("weight %q: %w", rec[3], ErrBadRecord)
		}
		_, err = net.AddEdge(rec[0], rec[1], rec[2], w)
		return err
	default:
		return fmt.Errorf("%d fields, want 2 to 4: %w", len(rec), ErrBadRecord)
	}
}
