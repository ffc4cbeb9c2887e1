package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pairchat/pairchat/internal/cli/display"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	connectInterests []string
	connectLogPath   string
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Chat with a random partner",
	Long: `Connects to the server and joins the waiting pool. Once matched you can
type messages; the partner's messages stream back in real time.

Commands while connected:
  /next    skip to a new partner
  /leave   stop chatting but stay connected
  /join    rejoin the waiting pool after /leave
  /quit    disconnect and exit

Examples:
  pairchat connect
  pairchat connect --interests music,games
  pairchat connect --log ~/.pairchat/chat.log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getClient()

		// Refuse to queue while the server is in maintenance.
		if status, err := c.Maintenance(); err == nil && status.Mode == "on" {
			out.Warn("Server is in maintenance: %s", status.Message)
			return nil
		}

		var transcript *slog.Logger
		if connectLogPath != "" {
			transcript = slog.New(slog.NewJSONHandler(&lumberjack.Logger{
				Filename:   connectLogPath,
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     14, // days
				Compress:   true,
			}, nil))
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		session, err := c.Chat(ctx)
		if err != nil {
			out.Error("Failed to connect: %v", err)
			os.Exit(1)
		}
		defer session.Close()

		if err := session.Join(connectInterests); err != nil {
			out.Error("Failed to join: %v", err)
			os.Exit(1)
		}

		chat := display.DefaultChat()
		out.Success("Connected to %s", c.ServerURL())
		if len(connectInterests) > 0 {
			out.KeyValue("Interests", strings.Join(connectInterests, ", "))
		}

		go func() {
			for event := range session.Events() {
				if transcript != nil {
					transcript.Info("event", "type", event.Type, "content", event.Content)
				}
				if jsonOutput {
					out.JSON(event)
					continue
				}
				switch event.Type {
				case "waiting":
					chat.System("waiting for a partner...")
				case "matched":
					if len(event.Interests) > 0 {
						chat.System("matched! shared interests: " + strings.Join(event.Interests, ", "))
					} else {
						chat.System("matched! say hi")
					}
				case "partner_disconnected":
					chat.System("partner left, type /next to find another")
				case "signal":
					// Text-mode participant: media negotiation payloads
					// are shown opaque for debugging.
					chat.System(fmt.Sprintf("signal payload (%d bytes)", len(event.Data)))
				case "message":
					chat.Partner(event.Content)
				case "typing":
					if event.IsTyping {
						chat.Typing()
					}
				}
			}
			stop()
		}()

		lines := make(chan string)
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				lines <- scanner.Text()
			}
			close(lines)
		}()

		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}

				var err error
				switch line {
				case "/quit":
					return nil
				case "/next":
					err = session.Next(connectInterests)
				case "/leave":
					err = session.Leave()
					chat.System("left the chat, /join to queue again")
				case "/join":
					err = session.Join(connectInterests)
				default:
					if err = session.SendMessage(line); err == nil {
						chat.You(line)
						if transcript != nil {
							transcript.Info("event", "type", "sent", "content", line)
						}
					}
				}
				if err != nil {
					out.Error("Send failed: %v", err)
					return nil
				}
			}
		}
	},
}

func init() {
	connectCmd.Flags().StringSliceVar(&connectInterests, "interests", nil, "interest tags used for matching")
	connectCmd.Flags().StringVar(&connectLogPath, "log", "", "write a JSON transcript to this file (rotated)")

	rootCmd.AddCommand(connectCmd)
}
