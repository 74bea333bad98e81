// Package allowlist locates and rewrites the model allow-list inside
// Open WebUI's persisted config document without disturbing any byte
// outside the targeted path.
package allowlist

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is one step of a document path: a mapping key or a
// connection index.
type segment struct {
	key     string
	index   int
	isIndex bool
}

func (s segment) String() string {
	if s.isIndex {
		return fmt.Sprintf("[%d]", s.index)
	}
	return s.key
}

// Path addresses a value inside the config document.
type Path struct {
	segs []segment
}

// NewPath returns an empty path.
func NewPath() Path {
	return Path{}
}

// Key appends a mapping-key segment.
func (p Path) Key(k string) Path {
	p.segs = append(p.segs[:len(p.segs):len(p.segs)], segment{key: k})
	return p
}

// Index appends a connection-index segment.
func (p Path) Index(i int) Path {
	p.segs = append(p.segs[:len(p.segs):len(p.segs)], segment{index: i, isIndex: true})
	return p
}

// ConnectionPath builds the standard allow-list path for one OpenAI
// connection: openai.api_configs[index].model_ids.
func ConnectionPath(index int) Path {
	return NewPath().Key("openai").Key("api_configs").Index(index).Key("model_ids")
}

// String renders the path for error messages and logs.
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p.segs {
		if i > 0 && !s.isIndex {
			sb.WriteByte('.')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// query renders the path in gjson/sjson dot syntax. An index segment
// becomes its decimal form, which resolves an array position or an
// object's decimal-string key — the config stores connections either way.
func (p Path) query() string {
	parts := make([]string, len(p.segs))
	for i, s := range p.segs {
		if s.isIndex {
			parts[i] = strconv.Itoa(s.index)
		} else {
			parts[i] = s.key
		}
	}
	return strings.Join(parts, ".")
}
