package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "documents/file.pdf", want: "documents/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "documents/file.pdf", want: "root/documents/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "documents/file.pdf", want: "root/documents/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/documents/file.pdf", want: "root/documents/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "documents/file.pdf", want: "root/sub/documents/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
