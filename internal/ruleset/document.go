package ruleset

import (
	"bytes"
	"encoding/json"

	"github.com/geoset/geoset/internal/rules"
)

// Headless is the single rule body of a rule-set source document. All
// four bucket keys are optional; absent buckets are omitted entirely
// rather than emitted as empty arrays.
type Headless struct {
	DomainSuffix  []string `json:"domain_suffix,omitempty"`
	Domain        []string `json:"domain,omitempty"`
	DomainRegex   []string `json:"domain_regex,omitempty"`
	DomainKeyword []string `json:"domain_keyword,omitempty"`
}

// Document is a versioned rule-set source document as consumed by the
// external binary compiler.
type Document struct {
	Version int        `json:"version"`
	Rules   []Headless `json:"rules"`
}

// New builds a version-1 document from classified buckets. When every
// bucket is empty the single rule body serializes as the empty object.
func New(b rules.Buckets) *Document {
	return &Document{
		Version: 1,
		Rules: []Headless{{
			DomainSuffix:  b.Suffix,
			Domain:        b.Full,
			DomainRegex:   b.Regex,
			DomainKeyword: b.Keyword,
		}},
	}
}

// Encode serializes the document as indented JSON with a trailing
// newline. HTML escaping is disabled so rule values round-trip verbatim.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
