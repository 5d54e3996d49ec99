// Package output provides JSON serialization for chart documents.
package output

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// ToJSON serializes a chart document model to JSON.
func ToJSON(doc *models.ChartDocument, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

// TreeToJSON serializes the ordered node tree of a chart document to JSON.
// Children keep their document order.
func TreeToJSON(doc *models.ChartDocument, pretty bool) ([]byte, error) {
	return marshal(doc.Tree(), pretty)
}

// SeriesToJSON serializes the series bindings of a chart document to JSON.
func SeriesToJSON(doc *models.ChartDocument, pretty bool) ([]byte, error) {
	return marshal(doc.Bindings(), pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
