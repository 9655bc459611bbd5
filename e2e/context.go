package e2e

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jwttoken "academy/internal/jwt_token"
	"academy/pkg/domain"
)

// devSigningKey matches the relay's default when JWT_SIGNING_KEY is unset.
const devSigningKey = "dev-secret-key-change-in-production"

// platformAuthority is fixed for the whole run: whoever initializes the
// config first owns it, and every scenario must act as the same authority.
var platformAuthority = domain.Identity{0xac, 0xad, 0xe1, 0x01}

// TestContext holds state between test steps. Each scenario gets fresh
// identities so scenarios stay independent against a long-running relay.
type TestContext struct {
	BaseURL          string
	HTTPClient       *http.Client
	LastResponse     *http.Response
	LastResponseBody []byte

	jwt *jwttoken.Service

	Authority domain.Identity
	Backend   domain.Identity
	Creator   domain.Identity
	Learner   domain.Identity

	CourseID string
}

// NewTestContext creates a new test context.
func NewTestContext() *TestContext {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &TestContext{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		jwt:       jwttoken.New(devSigningKey, "academy-relay", time.Hour),
		Authority: platformAuthority,
		Backend:   freshIdentity(),
		Creator:   freshIdentity(),
		Learner:   freshIdentity(),
	}
}

func freshIdentity() domain.Identity {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	var id domain.Identity
	copy(id[:], pub)
	return id
}

// POST makes a POST request signed as caller and stores the response.
func (tc *TestContext) POST(path string, caller domain.Identity, body interface{}) error {
	return tc.request(http.MethodPost, path, caller, body)
}

// PATCH makes a PATCH request signed as caller and stores the response.
func (tc *TestContext) PATCH(path string, caller domain.Identity, body interface{}) error {
	return tc.request(http.MethodPatch, path, caller, body)
}

// GET makes an unauthenticated GET request and stores the response.
func (tc *TestContext) GET(path string) error {
	return tc.request(http.MethodGet, path, domain.ZeroIdentity, nil)
}

func (tc *TestContext) request(method, path string, caller domain.Identity, body interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	req, err := http.NewRequest(method, tc.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if !caller.IsZero() {
		token, err := tc.jwt.GenerateToken(caller)
		if err != nil {
			return fmt.Errorf("mint bearer token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.LastResponse = resp
	tc.LastResponseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	return nil
}

// GetResponseField extracts a top-level field from the last JSON response.
func (tc *TestContext) GetResponseField(field string) (interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(tc.LastResponseBody, &data); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	value, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field %s not found in response: %s", field, string(tc.LastResponseBody))
	}
	return value, nil
}

// ResultField extracts a field from the transaction envelope's result object.
func (tc *TestContext) ResultField(field string) (interface{}, error) {
	result, err := tc.GetResponseField("result")
	if err != nil {
		return nil, err
	}
	obj, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("result is not an object: %s", string(tc.LastResponseBody))
	}
	value, ok := obj[field]
	if !ok {
		return nil, fmt.Errorf("result field %s not found: %s", field, string(tc.LastResponseBody))
	}
	return value, nil
}
