package client

import (
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError_PlainBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "short text", body: "upstream timeout\n", want: "upstream timeout"},
		{name: "html", body: "<html>oops</html>", want: http.StatusText(http.StatusBadGateway)},
		{name: "empty", body: "", want: http.StatusText(http.StatusBadGateway)},
		{name: "long ascii", body: strings.Repeat("x", 250), want: strings.Repeat("x", maxPlainDetail) + "..."},
		{name: "long multibyte", body: strings.Repeat("é", 250), want: strings.Repeat("é", maxPlainDetail) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newAPIError(&Response{StatusCode: http.StatusBadGateway, Header: http.Header{}, Body: []byte(tt.body)})

			require.True(t, utf8.ValidString(e.Detail), "detail must stay valid UTF-8: %q", e.Detail)
			assert.Equal(t, tt.want, e.Detail)
			assert.ErrorIs(t, e, ErrServer)
		})
	}
}
