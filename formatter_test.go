// Copyright 2024 The clip Authors.

package clip

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func renderInts(items []int) RenderFunc {
	return func(i int) (string, bool) {
		return strconv.Itoa(items[i]), true
	}
}

func TestFmt(t *testing.T) {
	items := []int{1, 2, 3}
	for _, test := range []struct {
		name string
		f    Formatter
		want string
	}{
		{
			name: "default",
			f:    Formatter{},
			want: "123",
		},
		{
			name: "start and end",
			f:    Formatter{Start: "<", End: ">"},
			want: "<1><2><3>",
		},
		{
			name: "middle",
			f:    Formatter{Middle: " "},
			want: "1 2 3",
		},
		{
			name: "start end middle",
			f: Formatter{
				Start:     "<",
				End:       ">",
				Middle:    " ",
				VeryStart: "Result: ",
				VeryEnd:   ".",
			},
			want: "Result: <1> <2> <3>.",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := test.f.Fmt(len(items), renderInts(items))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFmtFiltersSkippedItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 4, 3, 5}
	f := Formatter{Start: "<", End: ">", Middle: ","}

	even := f.Fmt(len(items), func(i int) (string, bool) {
		if items[i]%2 == 0 {
			return strconv.Itoa(items[i]), true
		}
		return "", false
	})
	if want := "<2>,<4>,<4>"; even != want {
		t.Errorf("even: got %q, want %q", even, want)
	}

	odd := f.Fmt(len(items), func(i int) (string, bool) {
		if items[i]%2 != 0 {
			return strconv.Itoa(items[i]), true
		}
		return "", false
	})
	if want := "<1>,<3>,<5>,<3>,<5>"; odd != want {
		t.Errorf("odd: got %q, want %q", odd, want)
	}
}

func TestFmtEmptySequence(t *testing.T) {
	f := Formatter{VeryStart: "<", VeryEnd: ">", Middle: "|"}
	if got, want := f.Fmt(0, nil), "<>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFmtContinuationIndent(t *testing.T) {
	items := []string{"one\nsub one\n", "two\n"}
	f := Formatter{Start: "- ", NewLineChars: "  "}
	got := f.Fmt(len(items), func(i int) (string, bool) {
		return items[i], true
	})
	want := "- one\n  sub one\n- two\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPrefixLines(t *testing.T) {
	for _, test := range []struct {
		in, chars, want string
	}{
		{"", "  ", ""},
		{"a", "  ", "  a\n"},
		{"a\nb\n", "  ", "  a\n  b\n"},
		{"a\n\nb\n", "- ", "- a\n- \n- b\n"},
	} {
		if got := prefixLines(test.in, test.chars); got != test.want {
			t.Errorf("prefixLines(%q, %q) = %q, want %q", test.in, test.chars, got, test.want)
		}
	}
}

func TestPrefixRest(t *testing.T) {
	for _, test := range []struct {
		in, chars, want string
	}{
		{"", "  ", ""},
		{"a\n", "  ", "a\n"},
		{"a\nb\nc\n", "  ", "a\n  b\n  c\n"},
	} {
		if got := prefixRest(test.in, test.chars); got != test.want {
			t.Errorf("prefixRest(%q, %q) = %q, want %q", test.in, test.chars, got, test.want)
		}
	}
}
