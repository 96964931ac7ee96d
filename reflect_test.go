// Copyright 2024 The clip Authors.

package clip

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTagToMap(t *testing.T) {
	for _, test := range []struct {
		tag  string
		want map[string]string
	}{
		{"", map[string]string{}},
		{
			" name=n,\t some doc   ",
			map[string]string{
				"name": "n",
				"doc":  "some doc",
			},
		},
		{
			"just doc",
			map[string]string{"doc": "just doc"},
		},
		{
			"doc=explicit doc",
			map[string]string{"doc": "explicit doc"},
		},
	} {
		got := tagToMap(test.tag)
		if !cmp.Equal(got, test.want) {
			t.Errorf("%q:\ngot  %+v\nwant %+v", test.tag, got, test.want)
		}
	}
}

func TestArgsOf(t *testing.T) {
	type movement struct {
		Speed    float64       `clip:"name=speed, cruising speed"`
		Duration time.Duration `clip:"how long to drive"`
		Turbo    bool
	}
	got, err := ArgsOf(&movement{})
	if err != nil {
		t.Fatal(err)
	}
	want := Group{
		NewArg("speed", "cruising speed"),
		NewArg("DURATION", "how long to drive"),
		NewArg("TURBO", ""),
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Arg{})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsOfNestedStruct(t *testing.T) {
	type engine struct {
		Power int `clip:"name=power, engine power in watts"`
	}
	type vehicle struct {
		Engine engine `clip:"name=engine"`
		Wheels int    `clip:"name=wheels"`
	}
	got, err := ArgsOf(vehicle{})
	if err != nil {
		t.Fatal(err)
	}
	if g, want := Group(got).Summarize(), "<<power>> <wheels>"; g != want {
		t.Errorf("summarize: got %q, want %q", g, want)
	}
	if got[0].MaxDepth() != 1 {
		t.Errorf("nested struct depth: got %d, want 1", got[0].MaxDepth())
	}
}

func TestArgsOfDescriber(t *testing.T) {
	type gearbox struct {
		Gear number `clip:"name=gear, pick a gear"`
	}
	got, err := ArgsOf(&gearbox{})
	if err != nil {
		t.Fatal(err)
	}
	if g, want := got.Summarize(), "<gear>"; g != want {
		t.Errorf("summarize: got %q, want %q", g, want)
	}
	want := "gear    pick a gear\n" +
		"  - One\n" +
		"  - Two     Second argument\n" +
		"  - Three\n"
	if diff := cmp.Diff(want, got.Details()); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsOfErrors(t *testing.T) {
	type bad struct {
		A chan int `clip:"name=a"`
		B int      `clip:"bogus=1"`
	}
	_, err := ArgsOf(&bad{})
	if err == nil {
		t.Fatal("got nil, want error")
	}
	// Both field problems are reported, not just the first.
	for _, want := range []string{`field "A"`, `field "B"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	if _, err := ArgsOf(42); err == nil {
		t.Error("non-struct: got nil, want error")
	}
}

func TestUnmarshalArgsNestedStruct(t *testing.T) {
	type inner struct {
		A int
		B string
	}
	type outer struct {
		Inner inner
		C     bool
	}
	var o outer
	rest, err := UnmarshalArgs(&o, []string{"1", "x", "true", "tail"})
	if err != nil {
		t.Fatal(err)
	}
	want := outer{Inner: inner{A: 1, B: "x"}, C: true}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"tail"}, rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalArgsSkipsUnexported(t *testing.T) {
	type s struct {
		A      int
		hidden string
		B      int
	}
	var v s
	if _, err := UnmarshalArgs(&v, []string{"1", "2"}); err != nil {
		t.Fatal(err)
	}
	if v.A != 1 || v.B != 2 || v.hidden != "" {
		t.Errorf("got %+v", v)
	}
}

func TestUnmarshalArgsNotPointer(t *testing.T) {
	type s struct{ A int }
	if _, err := UnmarshalArgs(s{}, []string{"1"}); err == nil {
		t.Error("got nil, want error")
	}
}

func TestParsersRoundTrip(t *testing.T) {
	type all struct {
		S string
		B bool
		I int8
		U uint16
		F float32
		D time.Duration
	}
	tokens := []string{"text", "true", "-5", "65535", "3.5", "1h30m"}
	var v all
	rest, err := UnmarshalArgs(&v, tokens)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 {
		t.Errorf("rest: got %v, want empty", rest)
	}
	want := all{S: "text", B: true, I: -5, U: 65535, F: 3.5, D: 90 * time.Minute}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParserOverflowIsBadType(t *testing.T) {
	type s struct{ A uint8 }
	var v s
	if _, err := UnmarshalArgs(&v, []string{"256"}); err != ErrBadType {
		t.Errorf("got %v, want ErrBadType", err)
	}
}
