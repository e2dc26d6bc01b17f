package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type openAPIDoc string

func (d openAPIDoc) ReadDoc() string { return string(d) }

var (
	registerDocsOnce sync.Once
	registerDocsErr  error
)

// RegisterDocs publishes spec as the document echo-swagger serves at
// /swagger/doc.json. swag allows one registration per name, so only the first
// call has an effect.
func RegisterDocs(spec []byte) error {
	registerDocsOnce.Do(func() {
		doc, err := openapi3.NewLoader().LoadFromData(spec)
		if err != nil {
			registerDocsErr = err
			return
		}
		body, err := doc.MarshalJSON()
		if err != nil {
			registerDocsErr = err
			return
		}
		swag.Register(swag.Name, openAPIDoc(body))
	})
	return registerDocsErr
}
