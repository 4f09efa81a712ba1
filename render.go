package hexcore

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// tagHex is the struct tag selecting fields for Render.
const tagHex = "hex"

func init() {
	sentinel.Tag(tagHex)
}

// typePlan lists the renderable fields of a struct type.
type typePlan struct {
	typeName string
	fields   []fieldPlan
}

// fieldPlan describes how to render a single field.
type fieldPlan struct {
	index []int // field index path, pointers are dereferenced while walking
	name  string
	upper bool
}

// Render returns the hex text of every tagged binary field of v keyed by
// field path (nested fields as "Outer.Inner").
//
// Fields are selected with the struct tag `hex:"lower"` or `hex:"upper"`; an
// empty tag value means lower. Only []byte and [N]byte fields are rendered,
// tags on other kinds are ignored. Fields behind nil pointers are omitted.
// A tag value other than lower or upper on a binary field fails with
// ErrInvalidTag.
//
//	type Object struct {
//	    Key  string
//	    Sum  [32]byte `hex:"lower"`
//	    Salt []byte   `hex:"upper"`
//	}
//
//	fields, _ := hexcore.Render(ctx, &obj)
//	// map[Salt:0A1B... Sum:9f86...]
func Render[T any](ctx context.Context, v *T) (out map[string]string, retErr error) {
	if v == nil {
		return map[string]string{}, nil
	}

	start := time.Now()
	typeName := reflect.TypeFor[T]().String()
	defer func() {
		emitRenderComplete(ctx, typeName, len(out), time.Since(start), retErr)
	}()

	if r, ok := any(v).(Renderable); ok {
		return r.RenderHex()
	}

	plan, err := planFor[T](ctx)
	if err != nil {
		return nil, err
	}

	out = make(map[string]string, len(plan.fields))
	rv := reflect.ValueOf(v).Elem()
	for _, f := range plan.fields {
		fv, ok := fieldByIndex(rv, f.index)
		if !ok {
			continue
		}
		if f.upper {
			out[f.name] = EncodeToStringUpper(fv.Bytes())
		} else {
			out[f.name] = EncodeToString(fv.Bytes())
		}
	}
	return out, nil
}

// fieldByIndex walks index from v, reporting false when a nil pointer is hit.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for _, i := range index {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(i)
	}
	return v, true
}

// buildPlan creates the render plan for type T by scanning struct tags.
func buildPlan[T any]() (*typePlan, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return &typePlan{typeName: rt.String()}, nil
	}

	spec := sentinel.Scan[T]()
	plan := &typePlan{typeName: spec.TypeName}
	if err := buildPlanRecursive(plan, spec, nil, "", map[reflect.Type]bool{rt: true}); err != nil {
		return nil, err
	}
	return plan, nil
}

// buildPlanRecursive processes fields and nested structs. seen guards
// against self-referential types.
func buildPlanRecursive(plan *typePlan, spec sentinel.Metadata, parentIndex []int, namePrefix string, seen map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		nested := field.ReflectType
		if field.Kind == sentinel.KindPointer {
			nested = nested.Elem()
		}
		if (field.Kind == sentinel.KindStruct || field.Kind == sentinel.KindPointer) &&
			nested.Kind() == reflect.Struct {
			if seen[nested] {
				continue
			}
			nestedSpec := scanNestedType(nested)
			if nestedSpec != nil {
				seen[nested] = true
				err := buildPlanRecursive(plan, *nestedSpec, fullIndex, fullName, seen)
				delete(seen, nested)
				if err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[tagHex]
		if !ok || !isBinary(field.ReflectType) {
			continue
		}
		c := Case(val)
		if c == "" {
			c = CaseLower
		}
		if !IsValidCase(c) {
			return newConfigError(ErrInvalidTag, val, fullName)
		}

		plan.fields = append(plan.fields, fieldPlan{
			index: fullIndex,
			name:  fullName,
			upper: c == CaseUpper,
		})
	}
	return nil
}

// isBinary reports whether rt is a byte slice or byte array.
func isBinary(rt reflect.Type) bool {
	k := rt.Kind()
	return (k == reflect.Slice || k == reflect.Array) && rt.Elem().Kind() == reflect.Uint8
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(tagHex); ok {
			fm.Tags[tagHex] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}
