package tagger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSidecar(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req taggerRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dslim/bert-base-NER", req.Model)

		switch r.URL.Path {
		case "/tokenize":
			json.NewEncoder(w).Encode(tokenizeResponse{Tokens: []string{"John", "lives"}})
		case "/predict":
			json.NewEncoder(w).Encode(predictResponse{Predictions: []int{3, 0}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestHTTPTagger(t *testing.T) {
	assert := assert.New(t)
	server := newSidecar(t)
	defer server.Close()

	tg := NewHTTPTagger(server.URL, "dslim/bert-base-NER")

	tokens, err := tg.Tokenize("John lives")
	assert.NoError(err)
	assert.Equal([]string{"John", "lives"}, tokens)

	preds, err := tg.PredictTags("John lives")
	assert.NoError(err)
	assert.Equal([]int{3, 0}, preds)
}

func TestHTTPTaggerErrorStatus(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	tg := NewHTTPTagger(server.URL, "m")
	_, err := tg.Tokenize("anything")
	assert.Error(err)
	_, err = tg.PredictTags("anything")
	assert.Error(err)
}

func TestHTTPTaggerMalformedResponse(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	tg := NewHTTPTagger(server.URL, "m")
	_, err := tg.Tokenize("anything")
	assert.Error(err)
}

func TestHTTPTaggerUnreachable(t *testing.T) {
	assert := assert.New(t)
	tg := NewHTTPTagger("http://127.0.0.1:1", "m")
	_, err := tg.Tokenize("anything")
	assert.Error(err)
}
