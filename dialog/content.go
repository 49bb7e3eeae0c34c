package dialog

import (
	"fmt"
	"reflect"
)

// Row is one rendered name/value pair of a record payload.
type Row struct {
	Name  string
	Value string
}

// normalizeContent turns the content payload into either plain text or
// an ordered row list. Strings render as a single text element; flat
// records (structs) render one row per exported field in declaration
// order. Arrays and slices are rejected outright; anything else fails
// with the payload's type name.
func normalizeContent(content any) (text string, rows []Row, err error) {
	if content == nil {
		return "", nil, &UnsupportedContentError{TypeName: "<nil>"}
	}

	if s, ok := content.(string); ok {
		return s, nil, nil
	}

	v := reflect.ValueOf(content)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil, &UnsupportedContentError{TypeName: v.Type().String()}
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return "", nil, ErrArrayContent
	case reflect.Struct:
		return "", structRows(v), nil
	}

	return "", nil, &UnsupportedContentError{TypeName: reflect.TypeOf(content).String()}
}

func structRows(v reflect.Value) []Row {
	t := v.Type()
	rows := make([]Row, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		rows = append(rows, Row{
			Name:  f.Name,
			Value: fmt.Sprint(v.Field(i).Interface()),
		})
	}
	return rows
}
