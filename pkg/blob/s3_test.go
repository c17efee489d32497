package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "plain key",
			link: "https://assets.s3.amazonaws.com/abc-sakura.png",
			want: "abc-sakura.png",
		},
		{
			name: "encoded plus restored",
			link: "https://assets.s3.amazonaws.com/a%2Bb.png",
			want: "a+b.png",
		},
		{
			name: "not an s3 link",
			link: "https://example.com/x.png",
			want: "",
		},
		{
			name: "empty",
			link: "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keyFromLink(tc.link))
		})
	}
}
