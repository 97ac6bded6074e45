package datamapping

import (
	"fmt"
	"strings"
)

const (
	KindDataMapper = "DataMapper"
	VersionV1      = "v1"

	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
	EncodingLatin1      = "iso-8859-1"

	DefaultDateFormat = "2006-01-02T15:04:05Z"
	DefaultSeparator  = ";"
)

// DataMapper defines how the columns of a delimited dataset map onto a record type
// +schema:root=true
// +schema:group=dove-guide.io
// +schema:version=v1
type DataMapper struct {
	// Kind is the resource type identifier
	Kind string `json:"kind" yaml:"kind" schema:"required,enum=DataMapper" description:"Resource type identifier"`

	// Version is the API version
	Version string `json:"version" yaml:"version" schema:"required,enum=v1" description:"API version"`

	// Metadata contains the mapping metadata
	Metadata Metadata `json:"metadata" yaml:"metadata" schema:"required" description:"Mapping metadata"`

	// Dataset is the source dataset identifier
	Dataset string `json:"dataset" yaml:"dataset" schema:"required,pattern=^[a-z0-9-_]+$,minLength=1,maxLength=50" description:"Dataset source identifier"`

	// Encoding is the character encoding of the source file
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty" schema:"enum=utf-8|windows-1252|iso-8859-1,default=utf-8" description:"Character encoding of the source file"`

	// Strict rejects header columns that no field mapping names
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty" schema:"default=false" description:"Reject header columns without a field mapping"`

	// DateFormat specifies the Go time format for parsing dates
	DateFormat string `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty" schema:"default=2006-01-02T15:04:05Z" description:"Go time format for parsing datetime fields"`

	// FieldMappings defines the field mapping rules
	FieldMappings []FieldMapping `json:"fieldMappings" yaml:"fieldMappings" schema:"required,minItems=1" description:"Array of field mapping definitions"`
}

type Metadata struct {
	// Name is the human-readable name for the mapping
	Name string `json:"name" yaml:"name" schema:"required,minLength=1,maxLength=100" description:"Human-readable name for the mapping configuration"`

	// Description provides details about the mapping
	Description string `json:"description,omitempty" yaml:"description,omitempty" schema:"maxLength=500" description:"Description of the mapping configuration"`
}

type FieldMapping struct {
	// Source is the column name in the source dataset
	Source string `json:"source" yaml:"source" schema:"required,minLength=1,maxLength=100" description:"Source column name in the dataset header"`

	// SourceType names the field parser applied to the raw value
	SourceType string `json:"sourceType,omitempty" yaml:"sourceType,omitempty" schema:"default=string" description:"Name of a registered field parser"`

	// Target is the dotted field path in the target struct
	Target string `json:"target" yaml:"target" schema:"required,minLength=1" description:"Dotted field path in the target record type"`

	// Separator splits list values
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty" schema:"default=;" description:"Item separator for list parsers"`

	// Required indicates the column must be present in the header
	Required bool `json:"required,omitempty" yaml:"required,omitempty" schema:"default=false" description:"Whether the column must be present in the header"`

	// Unique indicates that no two rows may share a value in this column
	Unique bool `json:"unique,omitempty" yaml:"unique,omitempty" schema:"default=false" description:"Whether values in this column must be unique across rows"`
}

func (dm *DataMapper) Validate() error {
	if dm.Kind == "" {
		return &MappingError{Message: "kind is required"}
	}
	if dm.Kind != KindDataMapper {
		return &MappingError{Message: fmt.Sprintf("unsupported kind %q", dm.Kind)}
	}
	if dm.Version == "" {
		return &MappingError{Message: "version is required"}
	}
	if dm.Version != VersionV1 {
		return &MappingError{Message: fmt.Sprintf("unsupported version %q", dm.Version)}
	}
	if dm.Metadata.Name == "" {
		return &MappingError{Message: "metadata.name is required"}
	}
	if dm.Dataset == "" {
		return &MappingError{Message: "dataset is required"}
	}
	switch dm.NormalizedEncoding() {
	case EncodingUTF8, EncodingWindows1252, EncodingLatin1:
	default:
		return &MappingError{Message: fmt.Sprintf("unsupported encoding %q", dm.Encoding)}
	}
	if len(dm.FieldMappings) == 0 {
		return &MappingError{Message: "at least one field mapping is required"}
	}

	targets := make(map[string]int, len(dm.FieldMappings))
	for i, fm := range dm.FieldMappings {
		if fm.Source == "" {
			return &MappingError{Message: fmt.Sprintf("fieldMappings[%d] must have source defined", i)}
		}
		if fm.Target == "" {
			return &MappingError{Message: fmt.Sprintf("fieldMappings[%d] must have target defined", i)}
		}
		if prev, ok := targets[fm.Target]; ok {
			return &MappingError{Message: fmt.Sprintf("fieldMappings[%d] target %q already mapped by fieldMappings[%d]", i, fm.Target, prev)}
		}
		targets[fm.Target] = i
	}
	return nil
}

// NormalizedEncoding returns the canonical encoding name, defaulting to UTF-8.
func (dm *DataMapper) NormalizedEncoding() string {
	switch strings.ToLower(strings.TrimSpace(dm.Encoding)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8
	case "windows-1252", "cp1252":
		return EncodingWindows1252
	case "iso-8859-1", "latin1", "latin-1":
		return EncodingLatin1
	default:
		return dm.Encoding
	}
}

func (dm *DataMapper) DateLayout() string {
	if dm.DateFormat == "" {
		return DefaultDateFormat
	}
	return dm.DateFormat
}

// Columns returns the distinct source columns in mapping order.
func (dm *DataMapper) Columns() []string {
	seen := make(map[string]struct{}, len(dm.FieldMappings))
	cols := make([]string, 0, len(dm.FieldMappings))
	for _, fm := range dm.FieldMappings {
		if _, ok := seen[fm.Source]; ok {
			continue
		}
		seen[fm.Source] = struct{}{}
		cols = append(cols, fm.Source)
	}
	return cols
}

func (fm FieldMapping) Type() string {
	if fm.SourceType == "" {
		return "string"
	}
	return fm.SourceType
}

func (fm FieldMapping) ListSeparator() string {
	if fm.Separator == "" {
		return DefaultSeparator
	}
	return fm.Separator
}

type MappingError struct {
	Message string `json:"message" example:"missing source field: id"`
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("datamapping error: %s", e.Message)
}
