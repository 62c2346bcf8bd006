package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// VerifyContract loads the OpenAPI document at path and reports every
// endpoint the facade calls that the document does not declare.
func VerifyContract(ctx context.Context, path string) error {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("load API contract: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid API contract: %w", err)
	}

	var missing []error
	for _, ep := range Endpoints() {
		item := doc.Paths.Find(ep.Path)
		if item == nil || item.GetOperation(ep.Method) == nil {
			missing = append(missing, fmt.Errorf("endpoint %s not in contract", ep))
		}
	}
	return errors.Join(missing...)
}
