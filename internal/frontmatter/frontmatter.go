package frontmatter

import (
	"bytes"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// front matter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Document is a Markdown page split into front matter fields and body.
type Document struct {
	Fields         map[string]any
	Raw            []byte
	Body           []byte
	HasFrontMatter bool
}

// Split separates YAML front matter (`---` delimited) from the Markdown body.
// LF and CRLF documents are both accepted. When the document does not start
// with a delimiter, had is false and body is the full input.
func Split(content []byte) (raw []byte, body []byte, had bool, err error) {
	nl := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		nl = "\r\n"
	}

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}
	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closing := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		// A closing delimiter at EOF without trailing newline is still valid.
		if bytes.HasSuffix(rest, []byte(nl+"---")) {
			return rest[:len(rest)-len("---")], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closing):], true, nil
}

// ParseYAML parses raw front matter (without delimiters) into a map.
func ParseYAML(raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Parse splits content and decodes its front matter.
func Parse(content []byte) (Document, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return Document{}, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return Document{}, err
	}
	return Document{Fields: fields, Raw: raw, Body: body, HasFrontMatter: had}, nil
}

// String returns a string field, trimmed; missing or non-string fields yield "".
func (d Document) String(key string) string {
	s, _ := d.Fields[key].(string)
	return strings.TrimSpace(s)
}

// Canonical serializes fields without the excluded keys. yaml.v3 sorts map
// keys, so equal field sets always produce equal output.
func Canonical(fields map[string]any, exclude ...string) (string, error) {
	kept := make(map[string]any, len(fields))
	for k, v := range fields {
		kept[k] = v
	}
	for _, k := range exclude {
		delete(kept, k)
	}
	if len(kept) == 0 {
		return "", nil
	}
	out, err := yaml.Marshal(kept)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
