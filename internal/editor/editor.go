package editor

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"lumiere-backend/internal/domain/media"
	"lumiere-backend/internal/sections"
)

// FormKindRaw is the fallback form for section types the registry does not
// know: the admin edits the JSON payload directly.
const FormKindRaw = "raw-json"

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldNumber   FieldKind = "number"
	FieldBool     FieldKind = "bool"
	FieldMedia    FieldKind = "media"
)

// Field is one editable input, addressed by a dotted path into the content
// object (e.g. "items.2.quote").
type Field struct {
	Path  string    `json:"path"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`
	Value any       `json:"value"`
}

// GroupForm is a repeatable sub-list: one field set per existing item, plus
// add/remove driven by the registry's per-item default.
type GroupForm struct {
	Path  string    `json:"path"`
	Label string    `json:"label"`
	Items [][]Field `json:"items"`
}

type Form struct {
	Kind   string          `json:"kind"`
	Label  string          `json:"label,omitempty"`
	Raw    json.RawMessage `json:"raw,omitempty"`
	Fields []Field         `json:"fields,omitempty"`
	Groups []GroupForm     `json:"groups,omitempty"`
}

type Editor struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Editor {
	return &Editor{log: log}
}

// BuildForm produces the type-specific edit form for a section. Types missing
// from the registry fall back to raw JSON editing instead of failing.
func (e *Editor) BuildForm(typ string, content json.RawMessage) Form {
	def, ok := sections.Lookup(sections.Kind(typ))
	if !ok {
		e.log.Warn().Str("type", typ).Msg("no form registered for section type, falling back to raw JSON")
		return Form{Kind: FormKindRaw, Raw: normalizeRaw(content)}
	}

	payload, err := sections.Decode(def.Kind, content)
	if err != nil {
		e.log.Warn().Str("type", typ).Err(err).Msg("section content does not decode, falling back to raw JSON")
		return Form{Kind: FormKindRaw, Raw: normalizeRaw(content)}
	}

	form := Form{Kind: string(def.Kind), Label: def.Label}

	v := reflect.ValueOf(payload).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := jsonName(sf)
		if name == "" {
			continue
		}
		fv := v.Field(i)

		if fv.Kind() == reflect.Slice {
			form.Groups = append(form.Groups, buildGroup(def, name, fv))
			continue
		}
		form.Fields = append(form.Fields, buildField(name, name, sf, fv))
	}
	return form
}

// ApplyRaw replaces content wholesale from the raw JSON editor. Malformed
// input is logged and the previous content is returned unchanged.
func (e *Editor) ApplyRaw(previous json.RawMessage, raw string) json.RawMessage {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		e.log.Warn().Err(err).Msg("discarding malformed raw JSON edit")
		return previous
	}
	return json.RawMessage(raw)
}

// ApplyEdit sets the value at a dotted path, rebuilding every container along
// the path rather than mutating in place.
func ApplyEdit(content json.RawMessage, path string, value any) (json.RawMessage, error) {
	doc, err := parseDoc(content)
	if err != nil {
		return nil, err
	}
	segs := strings.Split(path, ".")
	if path == "" || len(segs) == 0 {
		return nil, fmt.Errorf("empty field path")
	}
	updated, err := setPath(doc, segs, value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(updated)
}

// AddItem appends the registry's default record to a repeatable group.
func AddItem(typ string, content json.RawMessage, group string) (json.RawMessage, error) {
	def, ok := sections.Lookup(sections.Kind(typ))
	if !ok {
		return nil, fmt.Errorf("unknown section type %q", typ)
	}
	var grp *sections.Group
	for i := range def.Groups {
		if def.Groups[i].Path == group {
			grp = &def.Groups[i]
			break
		}
	}
	if grp == nil {
		return nil, fmt.Errorf("section type %q has no repeatable group %q", typ, group)
	}

	doc, err := parseDoc(content)
	if err != nil {
		return nil, err
	}
	list, err := groupList(doc, group)
	if err != nil {
		return nil, err
	}

	item, err := toPlain(grp.NewItem())
	if err != nil {
		return nil, err
	}
	next := make([]any, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, item)

	updated, err := setPath(doc, []string{group}, next)
	if err != nil {
		return nil, err
	}
	return json.Marshal(updated)
}

// RemoveItem splices an item out of a repeatable group by index.
func RemoveItem(content json.RawMessage, group string, index int) (json.RawMessage, error) {
	doc, err := parseDoc(content)
	if err != nil {
		return nil, err
	}
	list, err := groupList(doc, group)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("index %d out of range for group %q", index, group)
	}

	next := make([]any, 0, len(list)-1)
	next = append(next, list[:index]...)
	next = append(next, list[index+1:]...)

	updated, err := setPath(doc, []string{group}, next)
	if err != nil {
		return nil, err
	}
	return json.Marshal(updated)
}

func parseDoc(content json.RawMessage) (map[string]any, error) {
	if len(content) == 0 {
		return map[string]any{}, nil
	}
	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("section content is not a JSON object: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func groupList(doc map[string]any, group string) ([]any, error) {
	raw, ok := doc[group]
	if !ok || raw == nil {
		return []any{}, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not a list", group)
	}
	return list, nil
}

func setPath(node any, segs []string, value any) (any, error) {
	if len(segs) == 0 {
		return value, nil
	}
	seg := segs[0]

	if idx, err := strconv.Atoi(seg); err == nil {
		list, ok := node.([]any)
		if !ok {
			return nil, fmt.Errorf("path segment %q addresses a list but found %T", seg, node)
		}
		if idx < 0 || idx >= len(list) {
			return nil, fmt.Errorf("index %d out of range", idx)
		}
		next, err := setPath(list[idx], segs[1:], value)
		if err != nil {
			return nil, err
		}
		clone := make([]any, len(list))
		copy(clone, list)
		clone[idx] = next
		return clone, nil
	}

	obj, ok := node.(map[string]any)
	if node == nil {
		obj, ok = map[string]any{}, true
	}
	if !ok {
		return nil, fmt.Errorf("path segment %q addresses an object but found %T", seg, node)
	}
	next, err := setPath(obj[seg], segs[1:], value)
	if err != nil {
		return nil, err
	}
	clone := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		clone[k] = v
	}
	clone[seg] = next
	return clone, nil
}

func toPlain(v any) (any, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeRaw(content json.RawMessage) json.RawMessage {
	if len(content) == 0 {
		return json.RawMessage("{}")
	}
	return content
}

func buildGroup(def sections.Definition, name string, fv reflect.Value) GroupForm {
	label := humanize(name)
	for _, g := range def.Groups {
		if g.Path == name {
			label = g.Label
		}
	}
	group := GroupForm{Path: name, Label: label, Items: make([][]Field, 0, fv.Len())}
	for i := 0; i < fv.Len(); i++ {
		group.Items = append(group.Items, itemFields(fmt.Sprintf("%s.%d", name, i), fv.Index(i)))
	}
	return group
}

// itemFields flattens one repeatable item. Struct items get one field per
// member; scalar and media items get a single field addressed by index.
func itemFields(prefix string, item reflect.Value) []Field {
	t := item.Type()
	if t == reflect.TypeOf(media.Ref{}) {
		return []Field{{Path: prefix, Label: humanize(groupSegment(prefix)), Kind: FieldMedia, Value: item.Interface()}}
	}
	if t.Kind() == reflect.Struct {
		fields := make([]Field, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			name := jsonName(sf)
			if name == "" {
				continue
			}
			fields = append(fields, buildField(prefix+"."+name, name, sf, item.Field(i)))
		}
		return fields
	}
	return []Field{buildField(prefix, groupSegment(prefix), reflect.StructField{Type: t}, item)}
}

func buildField(path, name string, sf reflect.StructField, fv reflect.Value) Field {
	f := Field{Path: path, Label: humanize(name), Kind: fieldKind(name, sf.Type)}
	if fv.IsValid() {
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			f.Value = nil
		} else {
			f.Value = fv.Interface()
		}
	}
	return f
}

var textareaFields = map[string]bool{
	"body":        true,
	"bio":         true,
	"quote":       true,
	"description": true,
}

func fieldKind(name string, t reflect.Type) FieldKind {
	if t == reflect.TypeOf(media.Ref{}) || t == reflect.TypeOf(&media.Ref{}) {
		return FieldMedia
	}
	switch t.Kind() {
	case reflect.Bool:
		return FieldBool
	case reflect.Int, reflect.Int64, reflect.Float64:
		return FieldNumber
	default:
		if textareaFields[strings.ToLower(name)] {
			return FieldTextarea
		}
		return FieldText
	}
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	return name
}

// groupSegment returns the list name from an indexed path ("images.0" -> "images").
func groupSegment(path string) string {
	segs := strings.Split(path, ".")
	if len(segs) >= 2 {
		return segs[len(segs)-2]
	}
	return segs[0]
}

func humanize(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range name {
		if i == 0 && r >= 'a' && r <= 'z' {
			b.WriteRune(r - ('a' - 'A'))
			continue
		}
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
