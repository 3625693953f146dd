package mlio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mlnet/community"
)

// CommunitiesHeader is the header row of WriteCommunitiesCSV.
var CommunitiesHeader = []string{"actor", "layer", "community"}

// WriteCommunitiesCSV writes one actor,layer,community row per node.
func WriteCommunitiesCSV(w io.Writer, res *community.Result) error {
	if res == nil {
		return fmt.Errorf("WriteCommunitiesCSV: %w", ErrNilResult)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CommunitiesHeader); err != nil {
		return fmt.Errorf("WriteCommunitiesCSV: header: %w", err)
	}
	for i, nd := range res.Nodes {
		row := []string{nd.Actor.Name, nd.Layer.Name, strconv.Itoa(res.Labels[i])}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCommunitiesCSV: row %d: %w", i+1, err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCommunitiesCSV: %w", err)
	}
	return nil
}

// Meta describes the run that produced a result.
type Meta struct {
	RunID string  `json:"run_id,omitempty"`
	Input string  `json:"input,omitempty"`
	Gamma float64 `json:"gamma"`
	Omega float64 `json:"omega"`
}

// Document is the JSON form of a result.
type Document struct {
	Meta
	Modularity  float64           `json:"modularity"`
	Components  int               `json:"components"`
	Communities []CommunityRecord `json:"communities"`
	Levels      []community.Level `json:"levels"`
}

// CommunityRecord is one actor set with its member presences.
type CommunityRecord struct {
	ID     int      `json:"id"`
	Actors []string `json:"actors"`
	Nodes  []string `json:"nodes"`
}

// NewDocument converts res into its JSON form.
func NewDocument(res *community.Result, meta Meta) (*Document, error) {
	if res == nil {
		return nil, fmt.Errorf("NewDocument: %w", ErrNilResult)
	}
	doc := &Document{
		Meta:        meta,
		Modularity:  res.Modularity,
		Components:  res.Components,
		Communities: make([]CommunityRecord, len(res.Communities)),
		Levels:      res.Levels,
	}
	for c, set := range res.Communities {
		rec := CommunityRecord{ID: set.ID, Actors: set.Names(), Nodes: make([]string, len(set.Nodes))}
		for k, nd := range set.Nodes {
			rec.Nodes[k] = nd.String()
		}
		doc.Communities[c] = rec
	}

	return doc, nil
}

// WriteResultJSON writes res as an indented Document.
func WriteResultJSON(w io.Writer, res *community.Result, meta Meta) error {
	doc, err := NewDocument(res, meta)
	if err != nil {
		return fmt.Errorf("WriteResultJSON: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteResultJSON: %w", err)
	}

	return nil
}
