package allowlist

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Locate walks the document to the allow-list and returns its current
// contents.
//
// Traversal rules:
//   - a missing intermediate mapping key is treated as an empty mapping
//     (keys are creatable, the write will materialize them);
//   - an index segment must resolve an existing entry — an array position
//     in range, or an object's decimal-string key ("0") — otherwise the
//     walk fails with ErrIndexOutOfRange;
//   - a node with the wrong shape fails with ErrShapeMismatch naming the
//     segment;
//   - an absent leaf under an existing parent is an empty list.
func Locate(doc []byte, p Path) ([]string, error) {
	if !gjson.ValidBytes(doc) {
		return nil, locateErr(p, "(document)", ErrShapeMismatch)
	}

	node := gjson.ParseBytes(doc)
	for _, seg := range p.segs {
		if seg.isIndex {
			next, err := stepIndex(node, seg, p)
			if err != nil {
				return nil, err
			}
			node = next
			continue
		}

		// Key segment: absent nodes act as empty mappings.
		if node.Exists() && !node.IsObject() {
			return nil, locateErr(p, seg.key, ErrShapeMismatch)
		}
		node = node.Get(seg.key)
	}

	if !node.Exists() {
		return []string{}, nil
	}
	if !node.IsArray() {
		return nil, locateErr(p, p.segs[len(p.segs)-1].String(), ErrShapeMismatch)
	}

	elems := node.Array()
	ids := make([]string, 0, len(elems))
	for _, e := range elems {
		if e.Type != gjson.String {
			return nil, locateErr(p, p.segs[len(p.segs)-1].String(), ErrShapeMismatch)
		}
		ids = append(ids, e.String())
	}
	return ids, nil
}

// stepIndex resolves an index segment against an array or an
// object-keyed connection map. Missing entries are never created.
func stepIndex(node gjson.Result, seg segment, p Path) (gjson.Result, error) {
	label := seg.String()

	switch {
	case !node.Exists():
		return gjson.Result{}, locateErr(p, label, ErrIndexOutOfRange)
	case node.IsArray():
		elems := node.Array()
		if seg.index < 0 || seg.index >= len(elems) {
			return gjson.Result{}, locateErr(p, label, ErrIndexOutOfRange)
		}
		return elems[seg.index], nil
	case node.IsObject():
		child := node.Get(strconv.Itoa(seg.index))
		if !child.Exists() {
			return gjson.Result{}, locateErr(p, label, ErrIndexOutOfRange)
		}
		return child, nil
	default:
		return gjson.Result{}, locateErr(p, label, ErrShapeMismatch)
	}
}
