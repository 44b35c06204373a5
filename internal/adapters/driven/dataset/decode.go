package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/logger"
)

// looseString accepts any scalar and keeps its text. Null, false, zero,
// objects and arrays decode to "", so they never score.
type looseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = looseString(str)
	case 'n', 'f', '{', '[':
		*s = ""
	default:
		// true and non-zero numbers keep their literal text
		*s = looseString(scalarText(string(data)))
	}
	return nil
}

// scalarText returns the text of a non-string scalar, or "" for a zero number.
func scalarText(v string) string {
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == 0 {
		return ""
	}
	return v
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *looseString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*s = ""
		return nil
	}

	switch node.ShortTag() {
	case "!!null":
		*s = ""
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil || !b {
			*s = ""
			return nil
		}
		*s = looseString(node.Value)
	case "!!int", "!!float":
		*s = looseString(scalarText(node.Value))
	default:
		*s = looseString(node.Value)
	}
	return nil
}

// recordDTO is the wire shape of one dataset entry.
type recordDTO struct {
	ID              looseString `json:"id" yaml:"id"`
	IDTail          looseString `json:"idTail" yaml:"idTail"`
	Slug            looseString `json:"slug" yaml:"slug"`
	Title           looseString `json:"title" yaml:"title"`
	Type            looseString `json:"type" yaml:"type"`
	URL             looseString `json:"url" yaml:"url"`
	CustomName      looseString `json:"customName" yaml:"customName"`
	ScientificName  looseString `json:"scientificName" yaml:"scientificName"`
	EnvironmentName looseString `json:"environmentName" yaml:"environmentName"`
}

func (d *recordDTO) toDomain() domain.Record {
	return domain.Record{
		ID:              string(d.ID),
		IDTail:          string(d.IDTail),
		Slug:            string(d.Slug),
		Title:           string(d.Title),
		Type:            domain.RecordType(strings.ToLower(string(d.Type))),
		URL:             string(d.URL),
		CustomName:      string(d.CustomName),
		ScientificName:  string(d.ScientificName),
		EnvironmentName: string(d.EnvironmentName),
	}
}

// DecodeJSON parses a JSON array of records. Null entries and entries that
// are not objects are skipped. A document that is not an array is an error.
func DecodeJSON(data []byte) ([]domain.Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json dataset: %w", err)
	}

	records := make([]domain.Record, 0, len(raw))
	for i, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		var dto recordDTO
		if err := json.Unmarshal(item, &dto); err != nil {
			logger.Warn("Skipping dataset entry %d: %v", i, err)
			continue
		}
		records = append(records, dto.toDomain())
	}
	return records, nil
}

// DecodeYAML parses a YAML sequence of records with the same rules as DecodeJSON.
func DecodeYAML(data []byte) ([]domain.Record, error) {
	var raw []yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml dataset: %w", err)
	}

	records := make([]domain.Record, 0, len(raw))
	for i := range raw {
		if raw[i].Kind != yaml.MappingNode {
			logger.Warn("Skipping dataset entry %d: not a mapping", i)
			continue
		}
		var dto recordDTO
		if err := raw[i].Decode(&dto); err != nil {
			logger.Warn("Skipping dataset entry %d: %v", i, err)
			continue
		}
		records = append(records, dto.toDomain())
	}
	return records, nil
}
