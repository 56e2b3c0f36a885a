// Package tutor wraps the LLM provider in the exam instructor persona:
// contextual answer explanations, free-form chat, and mnemonic
// generation for hard-to-remember code facts.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/llm"
)

// FallbackMessage is shown when the provider cannot be reached. The
// quiz and chat flows stay usable without connectivity.
const FallbackMessage = "I'm having trouble connecting to the code books right now. Please try again later."

// Mnemonic is a generated memory aid.
type Mnemonic struct {
	Mnemonic  string `json:"mnemonic"`
	Expansion string `json:"expansion"`
}

// Service answers student questions asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending string
	ready   bool
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestReply starts async reply generation for the given transcript.
// Only one reply is in-flight at a time, new requests replace pending
// ones. The question, when non-nil, is injected as context into the
// latest user message.
func (s *Service) RequestReply(ctx context.Context, transcript []llm.Message, q *bank.Question) {
	go func() {
		reply, err := s.generate(ctx, transcript, q, "tutor_chat")
		if err != nil {
			reply = FallbackMessage
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = reply
		s.ready = true
	}()
}

// ConsumeReply returns the pending reply if one is ready.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeReply() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", false
	}
	reply := s.pending
	s.pending = ""
	s.ready = false
	return reply, true
}

// Ask sends a one-shot question and waits for the reply. Used by the
// CLI; the chat screen uses RequestReply/ConsumeReply instead.
func (s *Service) Ask(ctx context.Context, query string, q *bank.Question) (string, error) {
	transcript := []llm.Message{{Role: llm.RoleUser, Content: query}}
	return s.generate(ctx, transcript, q, "explain_answer")
}

// GenerateMnemonic produces a structured memory aid for a question.
func (s *Service) GenerateMnemonic(ctx context.Context, q bank.Question) (*Mnemonic, error) {
	ctx = llm.WithPurpose(ctx, "mnemonic")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMnemonicUserMessage(q)},
		},
		Schema:      MnemonicSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mnemonic generation: %w", err)
	}

	var out Mnemonic
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse mnemonic response: %w", err)
	}

	return &out, nil
}

func (s *Service) generate(ctx context.Context, transcript []llm.Message, q *bank.Question, purpose string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	if len(transcript) == 0 {
		return "", fmt.Errorf("empty transcript")
	}

	// Inject question context into the latest user turn only; earlier
	// turns already carried their context when they were sent.
	msgs := make([]llm.Message, len(transcript))
	copy(msgs, transcript)
	last := &msgs[len(msgs)-1]
	if last.Role == llm.RoleUser {
		last.Content = buildUserMessage(last.Content, q)
	}

	req := llm.Request{
		System:      systemPrompt,
		Messages:    msgs,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tutor reply: %w", err)
	}

	reply := string(resp.Content)
	if reply == "" {
		reply = "I couldn't generate a response at this time."
	}
	return reply, nil
}
