// Copyright 2024 The clip Authors.

package clip

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Derivation of argument trees and parse behavior from struct
// declarations. This is a convenience layer over the core: anything it
// derives can also be hand-built with NewArg/NewTypedArg and a
// TryParse implementation.

// A Describer provides its own argument tree, overriding derivation.
// Union types implement it to describe themselves as Choices.
type Describer interface {
	Arguments() ArgType
}

// ArgsOf derives an argument group from x's exported fields, in
// declaration order. x must be a struct or a pointer to one.
//
// Each field may carry a `clip` struct tag naming the argument and
// documenting it, for example:
//
//	Env string `clip:"name=env, development environment"`
//
// A field whose type implements Describer contributes that tree under
// the field's name; a nested struct field contributes its own derived
// group; every other field is a leaf and must be of a type a single
// token can be converted to.
func ArgsOf(x interface{}) (Group, error) {
	v := reflect.ValueOf(x)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%T is not a struct or pointer to struct", x)
	}
	t := v.Type()
	var group Group
	var errs *multierror.Error
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		arg, err := argForField(sf)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("field %q: %v", sf.Name, err))
			continue
		}
		group = append(group, arg)
	}
	return group, errs.ErrorOrNil()
}

func argForField(sf reflect.StructField) (Arg, error) {
	m := tagToMap(sf.Tag.Get("clip"))
	for k := range m {
		if k != "name" && k != "doc" {
			return Arg{}, fmt.Errorf("invalid key: %q", k)
		}
	}
	name := m["name"]
	if name == "" {
		name = strings.ToUpper(sf.Name)
	}
	doc := m["doc"]

	if d, ok := reflect.New(sf.Type).Interface().(Describer); ok {
		return NewTypedArg(name, doc, d.Arguments()), nil
	}
	if sf.Type.Kind() == reflect.Struct {
		nested, err := ArgsOf(reflect.New(sf.Type).Interface())
		if err != nil {
			return Arg{}, err
		}
		return NewTypedArg(name, doc, nested), nil
	}
	if _, err := parserForType(sf.Type); err != nil {
		return Arg{}, err
	}
	return NewArg(name, doc), nil
}

// UnmarshalArgs fills the exported fields of the struct x points to by
// consuming tokens in declaration order: one converted token per
// primitive field, recursive delegation for fields whose types
// implement TryParser, and in-place recursion for nested struct
// fields. It returns the unconsumed remainder.
func UnmarshalArgs(x interface{}, tokens []string) (rest []string, err error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%T is not a pointer to a struct", x)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		field := v.Field(i)
		if tp, ok := field.Addr().Interface().(TryParser); ok {
			tokens, err = tp.TryParse(tokens)
			if err != nil {
				return nil, err
			}
			continue
		}
		if sf.Type.Kind() == reflect.Struct {
			tokens, err = UnmarshalArgs(field.Addr().Interface(), tokens)
			if err != nil {
				return nil, err
			}
			continue
		}
		parser, err := parserForType(sf.Type)
		if err != nil {
			return nil, err
		}
		if len(tokens) == 0 {
			return nil, ErrTooFewArguments
		}
		val, err := parser(tokens[0])
		if err != nil {
			return nil, ErrBadType
		}
		field.Set(reflect.ValueOf(val))
		tokens = tokens[1:]
	}
	return tokens, nil
}

var keyRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]+=`)

// A tag is most simply just the doc for the argument. It can start
// with key=value options; whatever follows the last option is the doc.
func tagToMap(tag string) map[string]string {
	m := map[string]string{}
	tag = strings.TrimSpace(tag)
	for len(tag) > 0 {
		loc := keyRegexp.FindStringIndex(tag)
		if loc == nil {
			m["doc"] = tag
			break
		}
		key := tag[:loc[1]-1]
		tag = tag[loc[1]:]
		before, after, found := strings.Cut(tag, ",")
		var value string
		if !found {
			value = tag
			tag = ""
		} else {
			value = before
			tag = strings.TrimSpace(after)
		}
		m[key] = strings.TrimSpace(value)
	}
	return m
}

// tryParse fills x from tokens, preferring x's own TryParse
// implementation and falling back to reflective derivation.
func tryParse(x interface{}, tokens []string) ([]string, error) {
	if tp, ok := x.(TryParser); ok {
		return tp.TryParse(tokens)
	}
	return UnmarshalArgs(x, tokens)
}
