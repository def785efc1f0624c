package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// keyAliases maps the spellings models actually produce onto the canonical
// field names. Japanese keys show up when the model ignores the format ask.
var keyAliases = map[string]string{
	"client_name":     "clientName",
	"item_name":       "itemName",
	"net_weight":      "netWeight",
	"manifest_number": "manifestNumber",
	"raw_text":        "rawText",
	"日付":              "date",
	"得意先名":            "clientName",
	"得意先":             "clientName",
	"現場名":             "clientName",
	"品名":              "itemName",
	"銘柄":              "itemName",
	"正味重量":            "netWeight",
	"正味":              "netWeight",
	"マニフェスト番号":        "manifestNumber",
}

// extractJSONObject pulls the outermost {...} block out of a chatty reply.
func extractJSONObject(content string) ([]byte, bool) {
	m := jsonObjectRe.FindString(content)
	if m == "" {
		return nil, false
	}
	return []byte(m), true
}

// normalizeKeys renames aliased keys, drops nulls and unknown keys, and
// coerces numeric values to strings so the document passes the strict schema.
func normalizeKeys(raw []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode structured response: %w", err)
	}

	canonical := map[string]struct{}{
		"date": {}, "clientName": {}, "itemName": {},
		"netWeight": {}, "manifestNumber": {}, "rawText": {},
	}

	out := make(map[string]any, len(canonical))
	for k, v := range m {
		key := k
		if alias, ok := keyAliases[k]; ok {
			key = alias
		}
		if _, ok := canonical[key]; !ok {
			continue
		}
		if _, exists := out[key]; exists {
			continue
		}
		switch t := v.(type) {
		case nil:
			continue
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				continue
			}
			out[key] = s
		case float64:
			if t == float64(int64(t)) {
				out[key] = fmt.Sprintf("%d", int64(t))
			} else {
				out[key] = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), ".")
			}
		default:
			continue
		}
	}
	return json.Marshal(out)
}

// parseStructured is the first tier: find the JSON object, clean it up,
// validate it, and unmarshal into fields.
func (p *Parser) parseStructured(content string) (partial, bool) {
	raw, ok := extractJSONObject(content)
	if !ok {
		return partial{}, false
	}
	cleaned, err := normalizeKeys(raw)
	if err != nil {
		p.logger.Debug("parse.structured.sanitize_failed", "error", err)
		return partial{}, false
	}
	if err := ValidateJSONAgainstSchema(p.schema, cleaned); err != nil {
		p.logger.Debug("parse.structured.schema_failed", "error", err)
		return partial{}, false
	}

	var doc struct {
		Date           string `json:"date"`
		ClientName     string `json:"clientName"`
		ItemName       string `json:"itemName"`
		NetWeight      string `json:"netWeight"`
		ManifestNumber string `json:"manifestNumber"`
		RawText        string `json:"rawText"`
	}
	if err := json.Unmarshal(cleaned, &doc); err != nil {
		p.logger.Debug("parse.structured.unmarshal_failed", "error", err)
		return partial{}, false
	}

	return partial{
		date:           doc.Date,
		clientName:     doc.ClientName,
		itemName:       doc.ItemName,
		netWeight:      doc.NetWeight,
		manifestNumber: doc.ManifestNumber,
		rawText:        doc.RawText,
	}, true
}
