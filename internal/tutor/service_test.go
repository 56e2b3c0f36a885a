package tutor

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/llm"
)

func testQuestion() bank.Question {
	return bank.Question{
		ID:            101,
		Category:      "MN Amendments",
		Topic:         "Fire Department Connections",
		Question:      "What is the required FDC height range in Minnesota?",
		Answer:        "18 to 48 inches above grade",
		Distractors:   []string{"12 to 36 inches", "24 to 60 inches"},
		Citation:      "MN Rules 7512.2100",
		CodeText:      "FDC shall be located not less than 18 inches nor more than 48 inches above grade.",
		IsMNAmendment: true,
	}
}

func consumeReply(t *testing.T, svc *Service) (string, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if reply, ok := svc.ConsumeReply(); ok {
			return reply, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return "", false
}

func TestService_RepliesWithQuestionContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`As per MN Rules 7512.2100, the FDC must sit **18-48 inches** above grade.`),
	})
	svc := NewService(mock, DefaultConfig())

	q := testQuestion()
	transcript := []llm.Message{
		{Role: llm.RoleUser, Content: "Why is the answer 18 to 48 inches?"},
	}
	svc.RequestReply(t.Context(), transcript, &q)

	reply, ok := consumeReply(t, svc)
	if !ok {
		t.Fatal("expected a reply")
	}
	if !strings.Contains(reply, "18-48") {
		t.Errorf("unexpected reply: %q", reply)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	sent := mock.Calls[0]
	if sent.System == "" {
		t.Error("expected system prompt to be set")
	}
	userMsg := sent.Messages[len(sent.Messages)-1].Content
	if !strings.Contains(userMsg, "MN Rules 7512.2100") {
		t.Errorf("expected citation in user message, got: %q", userMsg)
	}
	if !strings.Contains(userMsg, "MINNESOTA SPECIFIC AMENDMENT") {
		t.Errorf("expected MN amendment flag in user message, got: %q", userMsg)
	}
}

func TestService_NoQuestionContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`A wet pipe system holds water under pressure at all times.`),
	})
	svc := NewService(mock, DefaultConfig())

	transcript := []llm.Message{
		{Role: llm.RoleUser, Content: "What is a wet pipe system?"},
	}
	svc.RequestReply(t.Context(), transcript, nil)

	if _, ok := consumeReply(t, svc); !ok {
		t.Fatal("expected a reply")
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if strings.Contains(userMsg, "Current Quiz Question Context") {
		t.Errorf("expected no question context, got: %q", userMsg)
	}
}

func TestService_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	transcript := []llm.Message{
		{Role: llm.RoleUser, Content: "What is a dry pipe system?"},
	}
	svc.RequestReply(t.Context(), transcript, nil)

	reply, ok := consumeReply(t, svc)
	if !ok {
		t.Fatal("expected a reply")
	}
	if reply != FallbackMessage {
		t.Errorf("expected fallback message, got: %q", reply)
	}
}

func TestService_ConsumeClearsReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`ok`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestReply(t.Context(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, nil)

	if _, ok := consumeReply(t, svc); !ok {
		t.Fatal("expected a reply")
	}
	if _, ok := svc.ConsumeReply(); ok {
		t.Error("expected second ConsumeReply to return false")
	}
}

func TestService_Ask(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`As per NFPA 25, quarterly inspection is required.`),
	})
	svc := NewService(mock, DefaultConfig())

	reply, err := svc.Ask(t.Context(), "How often are alarm devices tested?", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "NFPA 25") {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestService_GenerateMnemonic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"mnemonic":"18 up, 48 cap","expansion":"FDC sits between 18 and 48 inches above grade per MN Rules 7512.2100"}`),
	})
	svc := NewService(mock, DefaultConfig())

	m, err := svc.GenerateMnemonic(t.Context(), testQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Mnemonic != "18 up, 48 cap" {
		t.Errorf("unexpected mnemonic: %q", m.Mnemonic)
	}
	if m.Expansion == "" {
		t.Error("expected non-empty expansion")
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "mnemonic" {
		t.Error("expected schema name 'mnemonic'")
	}
}
