package store

import (
	"encoding/json"
	"fmt"

	"github.com/deckcite/deckcite/internal/citation"
)

// SchemaVersion marks the persisted block layout.
const SchemaVersion = 1

// block is the persisted shape of the citation store: a version marker
// plus the full record list.
type block struct {
	Version int        `json:"version"`
	Records recordList `json:"records"`
}

// recordList tolerates a bare record object where a one-element list
// is meant, an artifact of structured-text parsers that collapse
// singleton sequences to scalars.
type recordList []citation.Record

func (l *recordList) UnmarshalJSON(data []byte) error {
	var list []citation.Record
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single citation.Record
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = recordList{single}
	return nil
}

// decodeBlock parses a persisted block value. An empty value decodes
// to an empty store.
func decodeBlock(value string) (block, error) {
	if value == "" {
		return block{Version: SchemaVersion}, nil
	}
	var b block
	if err := json.Unmarshal([]byte(value), &b); err != nil {
		return block{}, fmt.Errorf("parsing citation block: %w", err)
	}
	if b.Version == 0 {
		b.Version = SchemaVersion
	}
	return b, nil
}

// encodeBlock serializes a block for persistence.
func encodeBlock(b block) (string, error) {
	b.Version = SchemaVersion
	if b.Records == nil {
		b.Records = recordList{}
	}
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("encoding citation block: %w", err)
	}
	return string(data), nil
}
