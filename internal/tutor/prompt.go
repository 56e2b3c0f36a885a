package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/sprinklerprep/internal/bank"
)

const systemPrompt = `You are an expert Fire Sprinkler Fitter Instructor specializing in the Minnesota Journeyman Exam.
Your knowledge base covers NFPA 13, 13R, 13D, 14, 20, 24, and 25 (2016/2011 Editions primarily), as well as Minnesota Statutes Chapter 299M and Minnesota Rules 7512.

Role:
1. Explain answers clearly to a tradesperson. Avoid overly academic jargon.
2. Provide mnemonics (memory aids) whenever possible.
3. If the user asks about Minnesota Amendments, emphasize strict adherence to MN code (e.g., FDC height 18-48", valve supervision).
4. Be encouraging but strict about safety and code compliance.
5. ALWAYS explicitly reference the specific Code Section, Statute, or Rule number provided in the context (e.g., "As per NFPA 13 Section 8.15...").

Format:
Keep responses concise (under 150 words usually). Use markdown for bolding key terms.`

// buildUserMessage wraps the user's query with the current quiz
// question context when one is in scope.
func buildUserMessage(query string, q *bank.Question) string {
	if q == nil {
		return fmt.Sprintf("User Question: %q", query)
	}

	var b strings.Builder

	b.WriteString("Current Quiz Question Context:\n")
	b.WriteString(fmt.Sprintf("Topic: %s (%s)\n", q.Topic, q.Category))

	system := string(q.SprinklerType)
	if system == "" {
		system = "General (N/A)"
	}
	b.WriteString(fmt.Sprintf("System Type: %s\n", system))

	b.WriteString(fmt.Sprintf("Question: %q\n", q.Question))
	b.WriteString(fmt.Sprintf("Correct Answer: %q\n", q.Answer))

	b.WriteString("\n**Code Reference:**\n")
	b.WriteString(fmt.Sprintf("Citation: %s\n", q.Citation))
	b.WriteString(fmt.Sprintf("Code Text: %q\n", q.CodeText))

	if q.IsMNAmendment {
		b.WriteString("**IMPORTANT: This is a MINNESOTA SPECIFIC AMENDMENT that overrides standard NFPA.**\n")
	}

	b.WriteString(fmt.Sprintf("\nUser Question: %q", query))

	return b.String()
}

func buildMnemonicUserMessage(q bank.Question) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Fact to memorize: %s\n", q.Answer))
	b.WriteString(fmt.Sprintf("Question it answers: %s\n", q.Question))
	b.WriteString(fmt.Sprintf("Citation: %s\n", q.Citation))

	b.WriteString(`
Instructions:
Create a short memory aid for this exam fact:
1. The mnemonic itself: an acronym, rhyme, or vivid phrase a fitter can recall under exam pressure.
2. An expansion explaining how the mnemonic maps back to the fact and its code reference.
Keep both under 25 words each.`)

	return b.String()
}
