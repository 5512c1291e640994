/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package descriptor

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// sortRecords stable-sorts recs by the given keys. Records missing a sort
// field compare equal on that key, so the input order is preserved for them.
func sortRecords[T any](recs []T, keys []SortKey) {
	sort.SliceStable(recs, func(i, j int) bool {
		for _, k := range keys {
			c := compareField(recs[i], recs[j], k.Field)
			if c == 0 {
				continue
			}
			if k.Direction == Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareField(a, b any, field string) int {
	av, aok := fieldValue(reflect.ValueOf(a), field)
	bv, bok := fieldValue(reflect.ValueOf(b), field)
	if !aok || !bok {
		return 0
	}
	return compareValues(av, bv)
}

// fieldValue resolves a struct field by name, following pointers. Falls back
// to matching the json tag when no exported field matches.
func fieldValue(v reflect.Value, field string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	if f := v.FieldByName(field); f.IsValid() {
		return f, true
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" {
			continue
		}
		if name, _, _ := strings.Cut(tag, ","); name == field {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func compareValues(a, b reflect.Value) int {
	// nil pointers order before non-nil.
	for a.Kind() == reflect.Pointer || b.Kind() == reflect.Pointer {
		aNil := a.Kind() == reflect.Pointer && a.IsNil()
		bNil := b.Kind() == reflect.Pointer && b.IsNil()
		switch {
		case aNil && bNil:
			return 0
		case aNil:
			return -1
		case bNil:
			return 1
		}
		if a.Kind() == reflect.Pointer {
			a = a.Elem()
		}
		if b.Kind() == reflect.Pointer {
			b = b.Elem()
		}
	}

	if a.Type() != b.Type() {
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}

	// Timestamps, including named time types such as strfmt.DateTime.
	if a.Type() == timeType || (a.Kind() == reflect.Struct && a.Type().ConvertibleTo(timeType)) {
		at := a.Convert(timeType).Interface().(time.Time)
		bt := b.Convert(timeType).Interface().(time.Time)
		return at.Compare(bt)
	}

	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmpOrdered(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmpOrdered(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmpOrdered(a.Float(), b.Float())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case b.Bool():
			return -1
		default:
			return 1
		}
	default:
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func cmpOrdered[N int64 | uint64 | float64](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
