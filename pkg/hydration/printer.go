package hydration

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Printing is for diagnostics only, so output is bounded regardless of
// input size: long strings truncate, long collections elide, and deep
// nesting collapses to an ellipsis.
const (
	maxPrintedTextLength = 100
	maxPrintedItems      = 3
	maxPrintDepth        = 3
	ellipsis             = "..."
)

// TagMode selects how much of an element is printed.
type TagMode uint8

const (
	// TagFull prints the whole element including children and close tag.
	TagFull TagMode = iota
	// TagOpenOnly prints just the opening tag.
	TagOpenOnly
)

// ChildMode selects how element child content is printed.
type ChildMode uint8

const (
	// ChildQuoted prints child text in the curly-braced quoted form.
	ChildQuoted ChildMode = iota
	// ChildRaw prints plain child text unquoted so output resembles
	// real markup. Only applies at the top level of element children.
	ChildRaw
)

// undefinedValue is the sentinel printed as the literal "undefined",
// distinct from nil which prints as "null".
type undefinedValue struct{}

// Undefined is the value standing for "absent" in diagnostics.
var Undefined undefinedValue

// FormatValue renders an arbitrary value as a bounded, human-readable
// string for diagnostics. It is deterministic and never fails: values
// outside the closed set of renderable shapes print as an ellipsis.
func FormatValue(v any) string {
	return formatValue(v, 0)
}

func formatValue(v any, depth int) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case undefinedValue:
		return "undefined"
	case string:
		return quoteString(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case *vdom.VNode:
		if depth >= maxPrintDepth {
			return ellipsis
		}
		return formatVNode(val, TagFull, depth)
	case vdom.Props:
		return formatMap(map[string]any(val), depth)
	case map[string]any:
		return formatMap(val, depth)
	case []any:
		return formatSeq(val, depth)
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return formatSeq(items, depth)
	}
	return formatReflected(v, depth)
}

// formatReflected handles the remaining renderable shapes (named
// functions, other numerics, arbitrary slices and string-keyed maps)
// without ever failing; everything else is an ellipsis.
func formatReflected(v any, depth int) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		name := runtime.FuncForPC(rv.Pointer()).Name()
		if name == "" {
			return "function"
		}
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		return truncate("function "+name, maxPrintedTextLength)
	case reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", v)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Slice, reflect.Array:
		// Collecting one item past the elision point is enough for
		// formatSeq to know more remain.
		items := make([]any, 0, maxPrintedItems+1)
		for i := 0; i < rv.Len() && i <= maxPrintedItems; i++ {
			items = append(items, rv.Index(i).Interface())
		}
		return formatSeq(items, depth)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			for _, k := range rv.MapKeys() {
				m[k.String()] = rv.MapIndex(k).Interface()
			}
			return formatMap(m, depth)
		}
	}
	return ellipsis
}

// formatSeq renders an ordered sequence: up to three comma-joined items
// followed by an ellipsis marker if more remain.
func formatSeq(items []any, depth int) string {
	if depth >= maxPrintDepth {
		return ellipsis
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i == maxPrintedItems {
			b.WriteString(", ")
			b.WriteString(ellipsis)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatValue(item, depth+1))
	}
	b.WriteByte(']')
	return b.String()
}

// formatMap renders a plain key/value mapping with up to three pairs.
// Keys are sorted for deterministic output and run through the printer
// themselves.
func formatMap(m map[string]any, depth int) string {
	if depth >= maxPrintDepth {
		return ellipsis
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i == maxPrintedItems {
			b.WriteString(", ")
			b.WriteString(ellipsis)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteString(k))
		b.WriteString(": ")
		b.WriteString(formatValue(m[k], depth+1))
	}
	b.WriteByte('}')
	return b.String()
}

// formatVNode renders an expected node as synthetic markup.
func formatVNode(v *vdom.VNode, mode TagMode, depth int) string {
	if v == nil {
		return "null"
	}

	switch v.Kind {
	case vdom.KindText, vdom.KindRaw:
		return quoteString(v.Text)
	case vdom.KindFragment:
		return ellipsis
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(v.Tag)
	writeVNodeAttrs(&b, v.Props)

	if mode == TagOpenOnly {
		b.WriteByte('>')
		return b.String()
	}

	if len(v.Children) == 0 {
		b.WriteString(" />")
		return b.String()
	}

	b.WriteByte('>')
	b.WriteString(formatVNodeChildren(v.Children, depth))
	b.WriteString("</")
	b.WriteString(v.Tag)
	b.WriteByte('>')
	return b.String()
}

// writeVNodeAttrs prints up to three printable attributes in sorted
// order. Reserved props and event handlers never print as attributes.
func writeVNodeAttrs(b *strings.Builder, props vdom.Props) {
	if len(props) == 0 {
		return
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		if vdom.IsReservedProp(k) || vdom.IsEventProp(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if i == maxPrintedItems {
			b.WriteByte(' ')
			b.WriteString(ellipsis)
			break
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		writeAttrValue(b, props[k])
	}
}

// writeAttrValue prints an attribute value: strings in double quotes
// like markup, anything else in braces through the value printer.
func writeAttrValue(b *strings.Builder, v any) {
	if s, ok := v.(string); ok {
		b.WriteByte('"')
		b.WriteString(truncate(escapeText(s, '"'), maxPrintedTextLength))
		b.WriteByte('"')
		return
	}
	b.WriteByte('{')
	b.WriteString(formatValue(v, maxPrintDepth-1))
	b.WriteByte('}')
}

// formatVNodeChildren renders element child content. A lone text child
// that looks like plain markup text prints raw; any other shape falls
// back to the braced quoted form; an all-text child list prints as a
// single braced array to disambiguate from literal markup.
func formatVNodeChildren(children []*vdom.VNode, depth int) string {
	if len(children) == 1 && children[0] != nil && children[0].Kind == vdom.KindText {
		return formatChildText(children[0].Text)
	}

	allText := true
	for _, c := range children {
		if c == nil || c.Kind != vdom.KindText {
			allText = false
			break
		}
	}
	if allText {
		items := make([]any, len(children))
		for i, c := range children {
			items[i] = c.Text
		}
		return "{" + formatSeq(items, depth+1) + "}"
	}

	return ellipsis
}

// formatChildText applies the raw-child rules to a single text child.
func formatChildText(s string) string {
	if isRawPrintable(s) {
		return s
	}
	return "{" + quoteString(s) + "}"
}

// isRawPrintable reports whether a string child can be emitted unquoted
// as literal text: not purely whitespace, not wrapped in whitespace,
// and made solely of printable ASCII outside the angle-bracket range.
// These rules are deliberately narrow; the goal is visual resemblance
// to markup, not a faithful serialization.
func isRawPrintable(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e || c == '<' || c == '>' {
			return false
		}
	}
	return true
}

// formatDOMNode renders an existing rendered node as markup-like text.
func formatDOMNode(n dom.Node, mode TagMode) string {
	if n == nil {
		return "null"
	}

	switch n.Kind() {
	case dom.ElementNode:
		el, ok := n.(dom.Element)
		if !ok {
			return ellipsis
		}
		return formatDOMElement(el, mode)
	case dom.TextNode:
		txt, ok := n.(dom.Text)
		if !ok {
			return ellipsis
		}
		return formatChildText(txt.Data())
	case dom.CommentNode:
		c, ok := n.(dom.Text)
		if !ok {
			return "<!-- -->"
		}
		data := truncate(escapeText(c.Data(), 0), maxPrintedTextLength)
		if data == "" {
			return "<!-- -->"
		}
		return "<!--" + data + "-->"
	}
	return ellipsis
}

func formatDOMElement(el dom.Element, mode TagMode) string {
	var b strings.Builder
	b.WriteByte('<')
	tag := strings.ToLower(el.TagName())
	b.WriteString(tag)

	for i, a := range el.Attrs() {
		if i == maxPrintedItems {
			b.WriteByte(' ')
			b.WriteString(ellipsis)
			break
		}
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(truncate(escapeText(a.Value, '"'), maxPrintedTextLength))
		b.WriteByte('"')
	}

	if mode == TagOpenOnly {
		b.WriteByte('>')
		return b.String()
	}

	first := el.FirstChild()
	if first == nil {
		b.WriteString(" />")
		return b.String()
	}

	b.WriteByte('>')
	b.WriteString(formatDOMChildren(first))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

// formatDOMChildren renders existing child content one level deep: a
// lone text child inline, an all-text run as a braced array, anything
// structured as an ellipsis.
func formatDOMChildren(first dom.Node) string {
	var texts []any
	for c := first; c != nil; c = c.NextSibling() {
		if c.Kind() != dom.TextNode {
			return ellipsis
		}
		txt, ok := c.(dom.Text)
		if !ok {
			return ellipsis
		}
		texts = append(texts, txt.Data())
	}
	if len(texts) == 1 {
		s, _ := texts[0].(string)
		return formatChildText(s)
	}
	return "{" + formatSeq(texts, maxPrintDepth-1) + "}"
}

// quoteString renders a string single-quoted with non-printable
// characters escaped and length bounded.
func quoteString(s string) string {
	return "'" + truncate(escapeText(s, '\''), maxPrintedTextLength) + "'"
}

// escapeText escapes non-printable characters as \n, \t, \xHH, or
// \uHHHH so they never appear literally in diagnostics. quote, when
// non-zero, is additionally escaped.
func escapeText(s string, quote rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\\':
			b.WriteString(`\\`)
		case quote != 0 && r == quote:
			b.WriteByte('\\')
			b.WriteRune(r)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}

// truncate bounds s to max characters, marking the cut with an
// ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Cut on a rune boundary.
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ellipsis
}
