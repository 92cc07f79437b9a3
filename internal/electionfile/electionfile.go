// Package electionfile decodes election documents for the condorcet
// command.
//
// Two encodings are accepted. A YAML (or JSON) document lists candidates
// and either ranked ballots or a precomputed duel matrix:
//
//	title: board 2026
//	candidates: [Alice, Bob, Carol]
//	ballots:
//	  - ranks: {Alice: 1, Bob: 2}
//	    count: 3
//	  - ranks: {Carol: 1, Alice: 2, Bob: 3}
//
//	candidates: [A, B, C]
//	duels:
//	  kind: counts        # or margins
//	  matrix: [[0, 6, 3], [4, 0, 7], [7, 3, 0]]
//
// Counts may expand a document to at most MaxBallots ballots.
//
// A CSV file has candidate names in its header row and one ballot per
// line; an empty cell or -1 leaves that candidate unranked.
package electionfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/duel"
)

// ErrInvalidDocument indicates an election document that cannot be decoded
// or mixes incompatible sections.
var ErrInvalidDocument = errors.New("electionfile: invalid document")

// MaxBallots bounds the number of ballots a document may expand to once
// every entry's count is applied.
const MaxBallots = 1_000_000

// Duel matrix kinds.
const (
	KindMargins = "margins"
	KindCounts  = "counts"
)

// Document is the YAML/JSON shape of an election.
type Document struct {
	Title      string        `yaml:"title"`
	Candidates []string      `yaml:"candidates"`
	Ballots    []BallotEntry `yaml:"ballots"`
	Duels      *DuelEntry    `yaml:"duels"`
}

// BallotEntry is one ranking cast Count times (once when Count is omitted).
type BallotEntry struct {
	Ranks map[string]int `yaml:"ranks"`
	Count *int           `yaml:"count"`
}

// DuelEntry is a precomputed N×N duel matrix in candidate order.
type DuelEntry struct {
	Kind   string  `yaml:"kind"`
	Voters int     `yaml:"voters"`
	Matrix [][]int `yaml:"matrix"`
}

// Election is a decoded document. Exactly one of Ballots and Matrix is set.
type Election struct {
	Title   string
	Ballots *ballot.Set
	Matrix  *duel.Matrix
}

// Candidates returns the candidate names in order.
func (e *Election) Candidates() []string {
	if e.Ballots != nil {
		return e.Ballots.CandidateNames()
	}

	return e.Matrix.Names()
}

// Load reads the file at path; a .csv extension selects the CSV encoding.
func Load(path string) (*Election, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read election file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return DecodeCSV(bytes.NewReader(data))
	}

	return Decode(bytes.NewReader(data))
}

// Decode parses a YAML or JSON election document. Unknown fields are
// rejected.
func Decode(r io.Reader) (*Election, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidDocument)
	}

	return doc.Election()
}

// Election validates the document and builds its ballots or duel matrix.
func (d *Document) Election() (*Election, error) {
	switch {
	case d.Duels != nil && len(d.Ballots) > 0:
		return nil, fmt.Errorf("both ballots and duels given: %w", ErrInvalidDocument)
	case d.Duels != nil:
		m, err := d.Duels.matrix(d.Candidates)
		if err != nil {
			return nil, err
		}
		return &Election{Title: d.Title, Matrix: m}, nil
	}

	maps := make([]map[string]ballot.Rank, 0, len(d.Ballots))
	total := 0
	for i, b := range d.Ballots {
		count := 1
		if b.Count != nil {
			count = *b.Count
		}
		if count < 0 {
			return nil, fmt.Errorf("ballot %d: negative count %d: %w", i, count, ErrInvalidDocument)
		}
		if count > MaxBallots-total {
			return nil, fmt.Errorf("ballot %d: count %d exceeds %d ballots in total: %w",
				i, count, MaxBallots, ErrInvalidDocument)
		}
		total += count
		ranks := make(map[string]ballot.Rank, len(b.Ranks))
		for name, r := range b.Ranks {
			ranks[name] = ballot.Rank(r)
		}
		for ; count > 0; count-- {
			maps = append(maps, ranks)
		}
	}

	s, err := ballot.FromMaps(d.Candidates, maps)
	if err != nil {
		return nil, err
	}

	return &Election{Title: d.Title, Ballots: s}, nil
}

func (d *DuelEntry) matrix(names []string) (*duel.Matrix, error) {
	switch strings.ToLower(d.Kind) {
	case KindMargins, "":
		return duel.FromMargins(names, d.Matrix, d.Voters)
	case KindCounts:
		m, err := duel.FromCounts(names, d.Matrix)
		if err != nil {
			return nil, err
		}
		if d.Voters != 0 && d.Voters != m.Voters() {
			return nil, fmt.Errorf("voters %d, counts imply %d: %w", d.Voters, m.Voters(), ErrInvalidDocument)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("duel kind %q: %w", d.Kind, ErrInvalidDocument)
	}
}

// DecodeCSV parses a ballot table: a header of candidate names, then one
// ballot per record. The delimiter is ',' unless the header contains ';'.
func DecodeCSV(r io.Reader) (*Election, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	if header, _, _ := bytes.Cut(data, []byte("\n")); bytes.ContainsRune(header, ';') {
		cr.Comma = ';'
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidDocument)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: no header: %w", ballot.ErrNoCandidates)
	}

	names := records[0]
	rows := make([][]ballot.Rank, 0, len(records)-1)
	for line, rec := range records[1:] {
		row := make([]ballot.Rank, len(rec))
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				row[j] = ballot.Unranked
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("csv line %d, column %q: %v: %w", line+2, names[j], err, ErrInvalidDocument)
			}
			row[j] = ballot.Rank(v)
		}
		rows = append(rows, row)
	}

	s, err := ballot.NewSet(names, rows)
	if err != nil {
		return nil, err
	}

	return &Election{Ballots: s}, nil
}
