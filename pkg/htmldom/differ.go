package htmldom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Differ computes attribute patch payloads for matched elements.
// It implements dom.AttributeDiffer.
type Differ struct{}

// DiffAttributes compares the element's rendered attributes against the
// expected props and returns the patches needed to align them, plus the
// names of server-only attributes in rendered order.
//
// Reserved props, event handlers, and explicitly nulled props are not
// expected to render; nulled props therefore count as server-only when
// the attribute is present. Boolean props follow HTML semantics: true
// means present with any value, false means absent.
func (Differ) DiffAttributes(el dom.Element, expected map[string]any) (payload []dom.Patch, extra []string) {
	keys := make([]string, 0, len(expected))
	for k := range expected {
		if vdom.IsReservedProp(k) || vdom.IsEventProp(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := expected[k]
		if v == nil {
			continue
		}

		got, present := el.Attr(k)
		if b, ok := v.(bool); ok {
			switch {
			case b && !present:
				payload = append(payload, dom.Patch{Op: dom.PatchSetAttr, Key: k, Value: ""})
			case !b && present:
				payload = append(payload, dom.Patch{Op: dom.PatchRemoveAttr, Key: k})
			}
			continue
		}

		want := propToString(v)
		if !present || normalizeAttr(got) != normalizeAttr(want) {
			payload = append(payload, dom.Patch{Op: dom.PatchSetAttr, Key: k, Value: want})
		}
	}

	for _, a := range el.Attrs() {
		v, ok := lookupProp(expected, a.Key)
		if !ok || v == nil {
			extra = append(extra, a.Key)
		}
	}

	return payload, extra
}

// lookupProp finds a prop case-insensitively; rendered attribute names
// are lowercased by the parser while props keep author casing.
func lookupProp(expected map[string]any, name string) (any, bool) {
	if v, ok := expected[name]; ok {
		return v, true
	}
	for k, v := range expected {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// normalizeAttr maps representation-only differences in attribute
// values; the parser already decodes entities, so only line endings
// remain.
func normalizeAttr(s string) string {
	if strings.ContainsRune(s, '\r') {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	return s
}

// propToString converts a prop value to its rendered attribute form.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
