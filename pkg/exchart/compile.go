package exchart

import (
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/exchart-go/pkg/exchart/compiler"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// documentNamespace scopes the name-based document ids.
var documentNamespace = uuid.MustParse("6f1c7d52-8c1e-4f5b-9a57-2f4f3c0b9d31")

// Compile compiles spec over block into a chart document. The chart spec is copied
// first, so later changes by the caller never reach the returned document.
// Compile is safe for concurrent use.
func Compile(spec models.ChartSpec, block models.DataBlock, opts Options) (*models.ChartDocument, error) {
	var snapshot models.ChartSpec
	if err := deepcopy.Copy(&snapshot, spec); err != nil {
		return nil, fmt.Errorf("failed to copy chart spec: %w", err)
	}

	doc, err := compiler.New(opts.defaults(), opts.logger()).Compile(&snapshot, block)
	if err != nil {
		return nil, err
	}

	id, err := DocumentID(snapshot, block)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

// DocumentID returns the deterministic id of the document compiled from spec and
// block: equal inputs always yield the same id.
func DocumentID(spec models.ChartSpec, block models.DataBlock) (string, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(struct {
		Spec  models.ChartSpec `json:"spec"`
		Block models.DataBlock `json:"block"`
	}{spec, block})
	if err != nil {
		return "", fmt.Errorf("failed to encode compile inputs: %w", err)
	}
	return uuid.NewSHA1(documentNamespace, data).String(), nil
}
