package bank

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

//go:embed questions.json
var embeddedBank []byte

// Loader performs the one-time read of the question bank source.
// The source may be a local file path or an http(s) URL; when empty,
// the bank bundled with the binary is used.
type Loader struct {
	source string
	client *http.Client
}

// NewLoader creates a Loader for the given source.
func NewLoader(source string) *Loader {
	return &Loader{
		source: source,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ResolveSource returns the bank source in priority order:
// explicit value (--bank flag), SPRINKLERPREP_BANK env var, then ""
// meaning the embedded bank.
func ResolveSource(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv("SPRINKLERPREP_BANK")
}

// Load reads, validates and decodes the question bank. On any failure
// it returns an empty Bank together with the error; callers log the
// condition and continue in a degraded state. No retry is attempted.
func (l *Loader) Load(ctx context.Context) (*Bank, error) {
	raw, err := l.read(ctx)
	if err != nil {
		return Empty(), fmt.Errorf("read question bank: %w", err)
	}

	if err := validateBank(raw); err != nil {
		return Empty(), fmt.Errorf("question bank %s: %w", l.describeSource(), err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return Empty(), fmt.Errorf("decode question bank: %w", err)
	}

	return New(questions), nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if l.source == "" {
		return embeddedBank, nil
	}

	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return l.fetch(ctx, l.source)
	}

	return os.ReadFile(l.source)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

func (l *Loader) describeSource() string {
	if l.source == "" {
		return "(embedded)"
	}
	return l.source
}
