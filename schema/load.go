package schema

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a descriptor file.
type Format int

const (
	YAML Format = iota
	JSON
	MsgPack
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case MsgPack:
		return "msgpack"
	}
	return "unknown"
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".msgpack", ".mpk":
		return MsgPack, nil
	}
	return 0, xerrors.Errorf("%s: unknown descriptor extension", path)
}

// Load decodes and validates a descriptor. Unknown keys are rejected for
// YAML and JSON.
func Load(data []byte, format Format) (*Schema, error) {
	s := new(Schema)
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(s)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(s)
	case MsgPack:
		err = msgpack.Unmarshal(data, s)
	default:
		return nil, xerrors.Errorf("format %d: %w", format, ErrUnsupported)
	}
	if err != nil {
		return nil, xerrors.Errorf("decoding %s descriptor: %w", format, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads the descriptor at path; its extension selects the format.
func LoadFile(path string) (*Schema, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading descriptor: %w", err)
	}
	s, err := Load(data, format)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes the descriptor.
func (s *Schema) Marshal(format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(s)
	case JSON:
		return json.MarshalIndent(s, "", "  ")
	case MsgPack:
		return msgpack.Marshal(s)
	}
	return nil, xerrors.Errorf("format %d: %w", format, ErrUnsupported)
}
