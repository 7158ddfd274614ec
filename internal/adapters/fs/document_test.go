package fs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gha-validator/internal/adapters/fs"
)

func TestBodyText(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "nested elements", doc: "<body><h1>Hi</h1><p>there <b>you</b></p></body>", want: "Hithere you"},
		{name: "comments ignored", doc: "<body><!-- nothing --></body>", want: ""},
		{name: "head text excluded", doc: "<html><head><title>T</title></head><body></body></html>", want: ""},
		{name: "empty input", doc: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.BodyText(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
