package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// HTTPTagger calls an entity-tagging model served as an HTTP sidecar
// (e.g. a transformers token-classification model behind a small API).
// It is the reference Tagger implementation; any service exposing the same
// two endpoints can stand in.
type HTTPTagger struct {
	tokenizeURL string
	predictURL  string
	modelName   string
	http        *http.Client
}

// NewHTTPTagger creates a client for the sidecar at baseURL
// (e.g. "http://tagger:8001"). modelName is passed through on every request
// so the sidecar can route to the right loaded model.
func NewHTTPTagger(baseURL string, modelName string) *HTTPTagger {
	return &HTTPTagger{
		tokenizeURL: baseURL + "/tokenize",
		predictURL:  baseURL + "/predict",
		modelName:   modelName,
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type taggerRequest struct {
	Model    string `json:"model"`
	Sentence string `json:"sentence"`
}

type tokenizeResponse struct {
	Tokens []string `json:"tokens"`
}

type predictResponse struct {
	Predictions []int `json:"predictions"`
}

// Tokenize returns the sidecar's subword tokens for the sentence, aligned
// with the prediction positions of PredictTags.
func (t *HTTPTagger) Tokenize(sentence string) ([]string, error) {
	var resp tokenizeResponse
	if err := t.post(t.tokenizeURL, sentence, &resp); err != nil {
		return nil, err
	}
	return resp.Tokens, nil
}

// PredictTags returns one label index per subword position.
func (t *HTTPTagger) PredictTags(sentence string) ([]int, error) {
	var resp predictResponse
	if err := t.post(t.predictURL, sentence, &resp); err != nil {
		return nil, err
	}
	return resp.Predictions, nil
}

func (t *HTTPTagger) post(url string, sentence string, out interface{}) error {
	body, err := json.Marshal(taggerRequest{Model: t.modelName, Sentence: sentence})
	if err != nil {
		return fmt.Errorf("tagger: marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("tagger: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("tagger: call %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tagger: %s returned status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tagger: decode response from %s: %w", url, err)
	}
	return nil
}
