package genai_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"union-portal/internal/pkg/genai"
)

func TestGenerateContent_Text(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"there"}]},"finishReason":"STOP"}]}`)
	}))
	defer server.Close()

	client := genai.NewClient(server.URL, "key", "test-model")
	result, err := client.GenerateContent(context.Background(), "say hello", []genai.SafetySetting{
		{Category: genai.CategoryHarassment, Threshold: genai.BlockOnlyHigh},
	})

	require.NoError(t, err)
	assert.False(t, result.Blocked)
	assert.Equal(t, "Hello there", result.Text)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Contains(t, gotBody, "safetySettings")
}

func TestGenerateContent_Blocked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"promptFeedback":{"blockReason":"SAFETY","safetyRatings":[{"category":"HARM_CATEGORY_DANGEROUS_CONTENT","probability":"HIGH","blocked":true}]}}`)
	}))
	defer server.Close()

	client := genai.NewClient(server.URL, "key", "test-model")
	result, err := client.GenerateContent(context.Background(), "bad prompt", nil)

	require.NoError(t, err)
	assert.True(t, result.Blocked)
	assert.Equal(t, []string{genai.CategoryDangerousContent}, result.FlaggedCategories)
}

func TestGenerateContent_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded"}}`)
	}))
	defer server.Close()

	client := genai.NewClient(server.URL, "key", "test-model")
	_, err := client.GenerateContent(context.Background(), "anything", nil)

	assert.ErrorContains(t, err, "status 429")
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := genai.NewClient(server.URL, "key", "test-model")
	_, err := client.GenerateContent(context.Background(), "anything", nil)

	assert.Error(t, err)
}
