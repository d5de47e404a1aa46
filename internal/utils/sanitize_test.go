package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	s := NewSanitizer()

	cases := []struct{ in, want string }{
		{"", ""},
		{"  hello  ", "hello"},
		{"<b>bold</b> text", "bold text"},
		{"<script>alert(1)</script>hi", "hi"},
		{"click javascript:alert(1)", "click alert(1)"},
		{`<img src=x onerror=alert(1)>after`, "after"},
		{"Tom & Jerry", "Tom & Jerry"},
		{"&lt;script&gt;x", ">x"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, s.Sanitize(tc.in), "input %q", tc.in)
	}
}
