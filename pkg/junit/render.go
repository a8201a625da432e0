package junit

import (
	"encoding/xml"
	"fmt"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// Render serializes the document to an XML string with a standard
// declaration and two-space indentation. It performs no semantic validation:
// whatever attribute values the tree carries are rendered as-is.
func Render(doc *Testsuites) (string, error) {
	raw, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("can't serialize JUnit report: %w", err)
	}

	return xmlHeader + string(raw) + "\n", nil
}
