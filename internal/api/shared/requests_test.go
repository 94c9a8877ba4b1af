package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name      string
		body      string
		wantTitle string
		wantErr   error
		anyErr    bool
	}{
		{name: "valid", body: `{"title":"Buy milk"}`, wantTitle: "Buy milk"},
		{name: "unknown fields ignored", body: `{"title":"x","extra":1}`, wantTitle: "x"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"title":`, anyErr: true},
		{name: "trailing data", body: `{"title":"a"}{"title":"b"}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(tt.body))
			var got payload
			err := DecodeJSON(req, &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTitle, got.Title)
			}
		})
	}
}
