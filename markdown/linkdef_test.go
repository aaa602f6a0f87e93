package markdown

import (
	"reflect"
	"testing"
)

func TestBuildLinkTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  LinkTable
	}{
		{
			name:  "no definitions",
			input: "just a paragraph\n",
			want:  LinkTable{},
		},
		{
			name:  "single definition with title",
			input: "[ref]: http://example.com \"Example\"\n",
			want: LinkTable{
				"ref": {URL: "http://example.com", Title: "Example"},
			},
		},
		{
			name:  "id is case folded",
			input: "[Ref]: http://example.com\n",
			want: LinkTable{
				"ref": {URL: "http://example.com"},
			},
		},
		{
			name:  "last definition wins",
			input: "[ref]: http://first.example\n\n[ref]: http://second.example\n",
			want: LinkTable{
				"ref": {URL: "http://second.example"},
			},
		},
		{
			name:  "definition inside blockquote",
			input: "> [inner]: http://example.com/q\n",
			want: LinkTable{
				"inner": {URL: "http://example.com/q"},
			},
		},
		{
			name:  "definitions mixed with content",
			input: "intro\n\n[a]: http://a.example\n\ntext\n\n[b]: http://b.example\n",
			want: LinkTable{
				"a": {URL: "http://a.example"},
				"b": {URL: "http://b.example"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildLinkTable(chunkLines(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildLinkTable(%q):\ngot:  %#v\nwant: %#v", tt.input, got, tt.want)
			}
		})
	}
}
