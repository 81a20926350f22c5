// ABOUTME: Payload variants for settings API responses (JSON document or XML document)
// ABOUTME: Format is resolved once at the parse boundary; each variant yields raw records

package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	jsoniter "github.com/json-iterator/go"
)

// Format identifies the wire format of a payload
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// byte order marks stripped before format detection
var boms = []string{"\uFEFF", "\uFFFE", "\uFFFF"}

var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var errUnknownFormat = errors.New("Unknown response format")

// record is one raw setting element, field name to value
type record map[string]interface{}

// payload is a decoded response in its source format
type payload interface {
	format() Format
	records() ([]record, error)
}

// DetectFormat sniffs the wire format of a response body
func DetectFormat(text string) (Format, string, error) {
	trimmed := strings.TrimSpace(text)
	for _, bom := range boms {
		if strings.HasPrefix(trimmed, bom) {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, bom))
			break
		}
	}

	switch {
	case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
		return FormatJSON, trimmed, nil
	case strings.HasPrefix(trimmed, "<"):
		return FormatXML, trimmed, nil
	default:
		return "", "", errUnknownFormat
	}
}

// decodePayload resolves raw input into a payload variant
func decodePayload(raw interface{}) (payload, error) {
	switch v := raw.(type) {
	case string:
		return decodeText(v)
	case []byte:
		return decodeText(string(v))
	case map[string]interface{}, []interface{}:
		return treePayload{doc: v}, nil
	case nil:
		return nil, errors.New("empty response")
	default:
		return nil, fmt.Errorf("unsupported response type %T", raw)
	}
}

func decodeText(text string) (payload, error) {
	format, trimmed, err := DetectFormat(text)
	if err != nil {
		return nil, err
	}

	if format == FormatXML {
		doc, err := xmlquery.Parse(strings.NewReader(trimmed))
		if err != nil {
			return nil, err
		}
		return xmlPayload{doc: doc}, nil
	}

	var doc interface{}
	if err := jsonAPI.UnmarshalFromString(trimmed, &doc); err != nil {
		return nil, err
	}
	return treePayload{doc: doc}, nil
}

// treePayload is a generic decoded document (JSON, or an already-parsed structure)
type treePayload struct {
	doc interface{}
}

func (p treePayload) format() Format {
	return FormatJSON
}

// records reads settingDtoList, then settings.setting (object or array).
// Neither shape present yields no records.
func (p treePayload) records() ([]record, error) {
	root, ok := p.doc.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	if list, ok := root["settingDtoList"].([]interface{}); ok {
		return toRecords(list)
	}

	settings, ok := root["settings"].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	switch s := settings["setting"].(type) {
	case []interface{}:
		return toRecords(s)
	case map[string]interface{}:
		return []record{s}, nil
	default:
		return nil, nil
	}
}

func toRecords(items []interface{}) ([]record, error) {
	records := make([]record, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("setting at index %d is not an object", i)
		}
		records = append(records, m)
	}
	return records, nil
}

// xmlPayload is a parsed XML document
type xmlPayload struct {
	doc *xmlquery.Node
}

func (p xmlPayload) format() Format {
	return FormatXML
}

// records reads every /settings/setting element. One element and many
// elements produce the same record shape.
func (p xmlPayload) records() ([]record, error) {
	nodes, err := xmlquery.QueryAll(p.doc, "/settings/setting")
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(nodes))
	for _, node := range nodes {
		rec := record{}
		for _, attr := range node.Attr {
			rec[attr.Name.Local] = attr.Value
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			rec[child.Data] = strings.TrimSpace(child.InnerText())
		}
		records = append(records, rec)
	}
	return records, nil
}
