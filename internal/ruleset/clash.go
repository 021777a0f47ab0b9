package ruleset

import (
	"gopkg.in/yaml.v3"

	"github.com/geoset/geoset/internal/rules"
)

type clashProvider struct {
	Payload []string `yaml:"payload"`
}

// EncodeClash renders classified buckets as a clash/mihomo domain text
// provider. Suffix rules render as "+.<domain>", full rules as the bare
// domain. Regex and keyword rules cannot be expressed in a domain
// provider and are skipped.
func EncodeClash(b rules.Buckets) ([]byte, error) {
	payload := make([]string, 0, len(b.Suffix)+len(b.Full))
	for _, v := range b.Suffix {
		payload = append(payload, "+."+v)
	}
	payload = append(payload, b.Full...)

	return yaml.Marshal(clashProvider{Payload: payload})
}
