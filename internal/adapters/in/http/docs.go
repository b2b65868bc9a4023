package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct {
	doc *openapi3.T
}

func (d openAPIDoc) ReadDoc() string {
	b, err := d.doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

var registerDocOnce sync.Once

// registerDocs makes doc available to swag. The registry is process-wide and
// rejects a second registration, so only the first document is kept.
func registerDocs(doc *openapi3.T) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: doc})
	})
}

// registerSwaggerUI mounts the UI under /swagger/.
func registerSwaggerUI(router EchoRouter, doc *openapi3.T) {
	registerDocs(doc)
	router.GET("/swagger/*", echoSwagger.WrapHandler)
}
