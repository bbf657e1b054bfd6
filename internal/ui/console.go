package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/i18n"
)

// Literal token accepted by the prompt preview besides an empty reply.
const previewConfirmToken = "send"

// Console implements the generation orchestrator's interaction surface on the
// terminal.
type Console struct {
	in    *bufio.Reader
	trans *i18n.Translations
}

func NewConsole(trans *i18n.Translations) *Console {
	return &Console{
		in:    bufio.NewReader(os.Stdin),
		trans: trans,
	}
}

// AcceptDataSharing shows the one-time disclosure and asks for an explicit
// acceptance.
func (c *Console) AcceptDataSharing(disclosure string) bool {
	fmt.Println()
	PrintInfo(disclosure)
	return AskConfirmation(c.trans.GetMessage("ai_consent_question", 0, nil))
}

// ConfirmSend is the modal confirmation used when prompt preview is off.
func (c *Console) ConfirmSend(question string) bool {
	return AskConfirmation(question)
}

// ConfirmPromptPreview prints the exact prompt and reads a typed reply: empty
// or the literal token (case-insensitive) confirms, anything else cancels.
func (c *Console) ConfirmPromptPreview(prompt string) bool {
	fmt.Println()
	fmt.Println(Dim.Sprint("──────── prompt ────────"))
	fmt.Println(prompt)
	fmt.Println(Dim.Sprint("────────────────────────"))
	PrintInfo(c.trans.GetMessage("ai_preview_instructions", 0, nil))
	fmt.Print("> ")

	reply, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	reply = strings.ToLower(strings.TrimSpace(reply))
	return reply == "" || reply == previewConfirmToken
}

func (c *Console) Warn(msg string) {
	PrintWarning(msg)
}

// Progress runs a spinner until the returned stop function is called. Callers
// stop it before anything else writes to the terminal.
func (c *Console) Progress(message string) func() {
	spin := NewSmartSpinner(message)
	spin.Start()
	return spin.Stop
}
