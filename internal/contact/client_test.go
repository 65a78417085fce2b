package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tooldeck/internal/domain"
)

var sub = domain.ContactSubmission{Name: "Ada", Email: "ada@example.test", Message: "Add my tool & thanks"}

func TestSubmitPostsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Ada", r.PostForm.Get("name"))
		assert.Equal(t, "ada@example.test", r.PostForm.Get("email"))
		assert.Equal(t, "Add my tool & thanks", r.PostForm.Get("message"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, c.Submit(context.Background(), sub))
}

func TestSubmitRejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusUnprocessableEntity, `{"error": "Email is invalid"}`, "Error: Email is invalid. Please try again later."},
		{"errors list", http.StatusBadRequest, `{"errors": [{"message": "Spam detected"}]}`, "Error: Spam detected. Please try again later."},
		{"no body", http.StatusInternalServerError, ``, "Error: Form submission failed. Please try again. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, time.Second).Submit(context.Background(), sub)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSubmitFailure)

			var se *SubmitError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, tt.message, se.UserMessage())
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewClient(url, time.Second).Submit(context.Background(), sub)
	assert.ErrorIs(t, err, ErrSubmitFailure)

	var se *SubmitError
	require.True(t, errors.As(err, &se))
	assert.Zero(t, se.Status)
}

func TestSubmitWithoutAction(t *testing.T) {
	err := NewClient("", time.Second).Submit(context.Background(), sub)
	assert.ErrorIs(t, err, ErrSubmitFailure)
	assert.ErrorIs(t, err, ErrNoAction)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "email=ada%40example.test&message=Add+my+tool+%26+thanks&name=Ada", Encode(sub).Encode())
}
