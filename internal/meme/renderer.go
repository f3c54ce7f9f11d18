package meme

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// templates is the fixed set of apimeme.com layout names a meme can use.
var templates = []string{
	"10-Guy",
	"Advice-Dog",
	"Actual-Advice-Mallard",
	"Ancient-Aliens",
	"Albert-Cagestein",
	"Bad-Joke-Eel",
	"1990s-First-World-Problems",
	"American-Chopper-Argument",
	"Back-In-My-Day",
	"Awkward-Moment-Sealion",
	"Castaway-Fire",
}

// Templates returns a copy of the fixed template name set.
func Templates() []string {
	out := make([]string, len(templates))
	copy(out, templates)
	return out
}

// MemeRenderer turns top and bottom texts into image bytes.
type MemeRenderer interface {
	Render(ctx context.Context, top, bottom string) ([]byte, error)
}

// APIMemeRenderer renders memes through the apimeme.com API using a
// randomly chosen template.
type APIMemeRenderer struct {
	client *http.Client
	apiURL string
	rng    *rand.Rand
}

// NewAPIMemeRenderer creates a renderer for the given API URL. The random
// source is injected so tests can seed it for deterministic template choice;
// a nil rng falls back to a time-seeded source.
func NewAPIMemeRenderer(client *http.Client, apiURL string, rng *rand.Rand) *APIMemeRenderer {
	if client == nil {
		client = http.DefaultClient
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &APIMemeRenderer{
		client: client,
		apiURL: apiURL,
		rng:    rng,
	}
}

// BuildMemeURL constructs the render request URL. Parameter order is part of
// the API contract: meme, then top, then bottom. Values are query-escaped.
func BuildMemeURL(apiURL, memeName, topText, bottomText string) string {
	return fmt.Sprintf("%s?meme=%s&top=%s&bottom=%s",
		apiURL,
		url.QueryEscape(memeName),
		url.QueryEscape(topText),
		url.QueryEscape(bottomText),
	)
}

// Render picks one template uniformly at random, issues one GET request, and
// returns the raw response body as the image bytes.
func (r *APIMemeRenderer) Render(ctx context.Context, top, bottom string) ([]byte, error) {
	template := templates[r.rng.Intn(len(templates))]
	target := BuildMemeURL(r.apiURL, template, top, bottom)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build meme request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to render meme: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("meme API returned status %d", resp.StatusCode)
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read meme response: %w", err)
	}

	return image, nil
}
