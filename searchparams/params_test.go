package searchparams

import (
	"reflect"
	"testing"
)

func TestParamMap_GetHas(t *testing.T) {
	m := ParamMap{
		"from": {"2024-01-01"},
		"tags": {"a", "b"},
		"gone": {},
		"void": {""},
	}

	if got := m.Get("from"); got != "2024-01-01" {
		t.Errorf("Get(from) = %q, want %q", got, "2024-01-01")
	}
	if got := m.Get("tags"); got != "a" {
		t.Errorf("Get(tags) = %q, want first value %q", got, "a")
	}
	if got := m.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}

	for name, want := range map[string]bool{
		"from":    true,
		"tags":    true,
		"gone":    false,
		"void":    false,
		"missing": false,
	} {
		if got := m.Has(name); got != want {
			t.Errorf("Has(%s) = %v, want %v", name, got, want)
		}
	}
}

func TestParamMap_Clone_Independence(t *testing.T) {
	orig := ParamMap{"from": {"2024-01-01"}}
	clone := orig.Clone()

	clone.Set("from", "2024-02-01")
	clone.Set("to", "2024-02-28")

	if got := orig.Get("from"); got != "2024-01-01" {
		t.Errorf("mutating clone changed original: from = %q", got)
	}
	if orig.Has("to") {
		t.Error("mutating clone added key to original")
	}

	var nilMap ParamMap
	cloned := nilMap.Clone()
	cloned.Set("x", "1")
	if cloned.Get("x") != "1" {
		t.Error("clone of nil map should be usable")
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     ParamMap
		override ParamMap
		want     ParamMap
	}{
		{
			name:     "override replaces base value",
			base:     ParamMap{"q": {"server"}, "page": {"1"}},
			override: ParamMap{"q": {"client"}},
			want:     ParamMap{"q": {"client"}, "page": {"1"}},
		},
		{
			name:     "override adds new keys",
			base:     ParamMap{"q": {"x"}},
			override: ParamMap{"from": {"2024-01-01"}},
			want:     ParamMap{"q": {"x"}, "from": {"2024-01-01"}},
		},
		{
			name:     "unset override shadows base",
			base:     ParamMap{"q": {"server"}},
			override: ParamMap{"q": nil},
			want:     ParamMap{"q": nil},
		},
		{
			name:     "empty both",
			base:     ParamMap{},
			override: ParamMap{},
			want:     ParamMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.override)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		prev ParamMap
		next ParamMap
		want ParamMap
	}{
		{
			name: "scalar change",
			prev: ParamMap{"from": {"2024-01-01"}, "to": {"2024-01-31"}},
			next: ParamMap{"from": {"2024-02-01"}, "to": {"2024-01-31"}},
			want: ParamMap{"from": {"2024-02-01"}},
		},
		{
			name: "no change",
			prev: ParamMap{"from": {"2024-01-01"}},
			next: ParamMap{"from": {"2024-01-01"}},
			want: ParamMap{},
		},
		{
			name: "added key",
			prev: ParamMap{},
			next: ParamMap{"from": {"2024-01-01"}, "to": {"2024-01-31"}},
			want: ParamMap{"from": {"2024-01-01"}, "to": {"2024-01-31"}},
		},
		{
			name: "removed key maps to nil",
			prev: ParamMap{"from": {"2024-01-01"}},
			next: ParamMap{},
			want: ParamMap{"from": nil},
		},
		{
			name: "key became unset maps to nil",
			prev: ParamMap{"from": {"2024-01-01"}},
			next: ParamMap{"from": {""}},
			want: ParamMap{"from": nil},
		},
		{
			name: "unset equals absent",
			prev: ParamMap{"from": {""}},
			next: ParamMap{},
			want: ParamMap{},
		},
		{
			name: "list same order equal",
			prev: ParamMap{"tags": {"a", "b"}},
			next: ParamMap{"tags": {"a", "b"}},
			want: ParamMap{},
		},
		{
			name: "list order matters",
			prev: ParamMap{"tags": {"a", "b"}},
			next: ParamMap{"tags": {"b", "a"}},
			want: ParamMap{"tags": {"b", "a"}},
		},
		{
			name: "list length change",
			prev: ParamMap{"tags": {"a"}},
			next: ParamMap{"tags": {"a", "b"}},
			want: ParamMap{"tags": {"a", "b"}},
		},
		{
			name: "scalar became list",
			prev: ParamMap{"tags": {"a"}},
			next: ParamMap{"tags": {"a"}, "from": {"x"}},
			want: ParamMap{"from": {"x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.prev, tt.next)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Diff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiff_ValueIsolation(t *testing.T) {
	next := ParamMap{"tags": {"a", "b"}}
	changed := Diff(ParamMap{}, next)

	changed["tags"][0] = "mutated"
	if next["tags"][0] != "a" {
		t.Error("Diff result shares backing array with input")
	}
}
