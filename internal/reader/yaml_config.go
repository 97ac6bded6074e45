package reader

import (
	"io"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
	"gopkg.in/yaml.v3"
)

type YAMLConfigLoader struct {
	reader io.Reader
}

func NewYAMLConfigLoader(reader io.Reader) *YAMLConfigLoader {
	return &YAMLConfigLoader{
		reader: reader,
	}
}

func (cl *YAMLConfigLoader) Load(validate bool) (*datamapping.DataMapper, error) {
	decoder := yaml.NewDecoder(cl.reader)
	decoder.KnownFields(true)

	var mapping datamapping.DataMapper
	if err := decoder.Decode(&mapping); err != nil {
		if err == io.EOF {
			return nil, apperr.NewValidation("empty data mapping document")
		}
		return nil, apperr.NewValidationWrap("failed to decode data mapping", err)
	}
	if validate {
		if err := mapping.Validate(); err != nil {
			return nil, err
		}
	}
	return &mapping, nil
}
