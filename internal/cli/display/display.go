package display

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Chat renders the interactive chat transcript with terminal colors.
type Chat struct {
	profile  termenv.Profile
	disabled bool
}

var (
	defaultChat *Chat
	chatOnce    sync.Once
)

// DefaultChat returns the singleton chat renderer.
func DefaultChat() *Chat {
	chatOnce.Do(func() {
		noColor := os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"
		defaultChat = NewChat(!noColor)
	})
	return defaultChat
}

// NewChat creates a chat renderer.
func NewChat(enabled bool) *Chat {
	return &Chat{
		profile:  termenv.ColorProfile(),
		disabled: !enabled,
	}
}

func (c *Chat) styled(hex, text string) string {
	if c.disabled {
		return text
	}
	return termenv.String(text).Foreground(c.profile.Color(hex)).String()
}

func (c *Chat) stamp() string {
	return c.styled("#6272A4", time.Now().Format("15:04:05"))
}

// Partner prints a message received from the chat partner.
func (c *Chat) Partner(text string) {
	fmt.Printf("%s %s %s\n", c.stamp(), c.styled("#FF79C6", "partner"), text)
}

// You prints the local user's own message.
func (c *Chat) You(text string) {
	fmt.Printf("%s %s %s\n", c.stamp(), c.styled("#8BE9FD", "you"), text)
}

// System prints a matchmaking status line.
func (c *Chat) System(text string) {
	fmt.Printf("%s %s\n", c.stamp(), c.styled("#F1FA8C", "* "+text))
}

// Typing prints the partner typing indicator.
func (c *Chat) Typing() {
	fmt.Printf("%s %s\n", c.stamp(), c.styled("#6272A4", "partner is typing..."))
}
