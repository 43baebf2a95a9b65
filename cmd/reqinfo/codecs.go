package main

import (
	"github.com/goccy/go-yaml"
	"github.com/stretchr/codecs"
	"github.com/stretchr/codecs/services"
)

// ContentTypeYAML is the content type served by yamlCodec.
const ContentTypeYAML = "application/yaml"

// formats maps --format values to the content type of the codec that
// renders them.
var formats = map[string]string{
	"json": "application/json",
	"yaml": ContentTypeYAML,
}

var codecService services.CodecService

// Codecs returns the
// "github.com/stretchr/codecs/services".CodecService used to render
// summaries.  The default service is the web codec service with YAML
// support added.
func Codecs() services.CodecService {
	if codecService == nil {
		codecService = services.NewWebCodecService()
		codecService.AddCodec(yamlCodec{})
	}
	return codecService
}

// SetCodecs can be used to change the
// "github.com/stretchr/codecs/services".CodecService used to render
// summaries.
func SetCodecs(newService services.CodecService) {
	codecService = newService
}

// AddCodec adds a "github.com/stretchr/codecs".Codec to the
// CodecService currently in use.
func AddCodec(codec codecs.Codec) {
	Codecs().AddCodec(codec)
}

// yamlCodec is a "github.com/stretchr/codecs".Codec backed by
// "github.com/goccy/go-yaml".
type yamlCodec struct{}

func (yamlCodec) Marshal(object interface{}, _ map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(object)
}

func (yamlCodec) Unmarshal(data []byte, obj interface{}) error {
	return yaml.Unmarshal(data, obj)
}

func (yamlCodec) ContentType() string {
	return ContentTypeYAML
}

func (yamlCodec) FileExtension() string {
	return "yaml"
}

func (yamlCodec) CanMarshalWithCallback() bool {
	return false
}
