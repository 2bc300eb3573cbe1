package desc

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "form feeds and hard breaks become spaces",
			in:   "Obviously prefers\fhot places. When it\nrains, steam is said\fto spout from the\ntip of its tail.",
			want: "Obviously prefers hot places. When it rains, steam is said to spout from the tip of its tail.",
		},
		{
			name: "legacy uppercase brand spelling",
			in:   "A strange seed was\fplanted on this\nPOKéMON at birth.",
			want: "A strange seed was planted on this Pokémon at birth.",
		},
		{
			name: "markup stripped",
			in:   "<p>It loves to <b>bask</b> in sunlight.</p>",
			want: "It loves to bask in sunlight.",
		},
		{
			name: "whitespace collapsed",
			in:   "  Too   many\r\n   spaces.  ",
			want: "Too many spaces.",
		},
		{
			name: "empty input",
			in:   "   ",
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("It loves to bask in sunlight.", 12)
	want := []string{"It loves to", "bask in", "sunlight."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WrapText = %#v, want %#v", got, want)
	}
}

func TestWrapText_WordLongerThanWidth(t *testing.T) {
	got := WrapText("unquestionably long", 6)
	want := []string{"unques", "tionab", "ly", "long"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WrapText = %#v, want %#v", got, want)
	}
}

func TestWrapText_NonPositiveWidth(t *testing.T) {
	got := WrapText("keep as is", 0)
	if len(got) != 1 || got[0] != "keep as is" {
		t.Fatalf("WrapText = %#v", got)
	}
}

func TestLines_EmptyAfterNormalize(t *testing.T) {
	if got := Lines("  \f \n ", 40); got != nil {
		t.Fatalf("expected nil lines, got %#v", got)
	}
}
