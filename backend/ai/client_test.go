package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerQuestion(t *testing.T) {
	var got answerRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(answerResponse{Answer: "42"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	answer, err := c.AnswerQuestion(context.Background(), "https://youtube.com/watch?v=x", "What is the answer?", []Turn{
		{Role: RoleUser, Text: "hi"},
		{Role: RoleModel, Text: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", answer)

	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, "https://youtube.com/watch?v=x", got.VideoURI)
	assert.Contains(t, got.Prompt, "What is the answer?")
	assert.Len(t, got.History, 2)
}

func TestAnswerQuestionMissingKey(t *testing.T) {
	c := NewClient("http://localhost:0", "m", "")
	_, err := c.AnswerQuestion(context.Background(), "ref", "q", nil)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAnswerQuestionRejectedCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClient(srv.URL, "m", "bad-key")
		_, err := c.AnswerQuestion(context.Background(), "ref", "q", nil)
		assert.ErrorIs(t, err, ErrMissingCredentials, "status %d", status)
		srv.Close()
	}
}

func TestAnswerQuestionGenericFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "m", "key")
	_, err := c.AnswerQuestion(context.Background(), "ref", "q", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingCredentials)
}

func TestAnswerQuestionServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(answerResponse{Error: "video content unreadable"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "m", "key")
	_, err := c.AnswerQuestion(context.Background(), "ref", "q", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video content unreadable")
	assert.NotErrorIs(t, err, ErrMissingCredentials)
}
