package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/orchestrators/assistant"
	"github.com/KirkDiggler/pokidex/internal/pkg/clock"
	"github.com/KirkDiggler/pokidex/internal/pkg/idgen"
	chatsession "github.com/KirkDiggler/pokidex/internal/repositories/chat_session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start interactive chat mode",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

const helpText = `Ask me questions about Pokemon! Examples:
  - What are Pikachu's stats?
  - What type is Charizard?
  - What moves can Pikachu learn?
  - You can also run: pokidex identify-image ./pokemon.png
  - Or open file picker: pokidex select-image

Type 'quit' or 'exit' to leave.

`

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	sessions, cleanup, err := a.sessionRepository(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	loop := &chatLoop{
		assistant:  a.assistant,
		sessions:   sessions,
		sessionTTL: a.cfg.SessionTTL,
		ids:        idgen.NewUUID("chat"),
		clock:      clock.New(),
		in:         os.Stdin,
		out:        cmd.OutOrStdout(),
		errOut:     cmd.ErrOrStderr(),
		logger:     a.logger.Named("chat"),
	}
	return loop.run(ctx)
}

// chatLoop is the interactive read-answer loop. The transcript only lives
// for one run and backs the history command.
type chatLoop struct {
	assistant  assistant.Service
	sessions   chatsession.Repository
	sessionTTL time.Duration
	ids        idgen.Generator
	clock      clock.Clock
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	logger     *zap.Logger
}

func (l *chatLoop) run(ctx context.Context) error {
	created, err := l.sessions.Create(ctx, chatsession.CreateInput{
		SessionID: l.ids.Generate(),
		TTL:       l.sessionTTL,
	})
	if err != nil {
		return err
	}
	sessionID := created.Session.ID
	defer func() {
		// the run context may already be cancelled
		if _, err := l.sessions.Delete(context.Background(), chatsession.DeleteInput{SessionID: sessionID}); err != nil {
			l.logger.Debug("session cleanup failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	}()

	fmt.Fprintln(l.out, "Welcome to Pokidex RAG Agent!")
	fmt.Fprintln(l.out, "Ask me anything about Pokemon. Type 'quit' or 'exit' to leave.")
	fmt.Fprintln(l.out)

	lines := readLines(l.in)
	for {
		fmt.Fprint(l.out, "You: ")

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(l.out)
			fmt.Fprintln(l.out, "Goodbye!")
			return nil
		}

		query := strings.TrimSpace(line)
		switch query {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(l.out, "Goodbye!")
			return nil
		case "help":
			fmt.Fprint(l.out, helpText)
			continue
		case "history":
			l.printHistory(ctx, sessionID)
			continue
		}

		l.answer(ctx, sessionID, query)
		fmt.Fprintln(l.out)
	}
}

func (l *chatLoop) answer(ctx context.Context, sessionID, query string) {
	fmt.Fprint(l.out, "Assistant: ")

	out, err := l.assistant.ProcessQuery(ctx, &assistant.ProcessQueryInput{Query: query})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(l.errOut, "Error: %v\n", err)
		fmt.Fprintln(l.out, "Please try again or type 'help' for examples.")
		return
	}
	fmt.Fprintln(l.out, out.Answer)

	_, err = l.sessions.Append(ctx, chatsession.AppendInput{
		SessionID: sessionID,
		Exchange: chatsession.Exchange{
			Question: query,
			Answer:   out.Answer,
			Mode:     string(out.Mode),
			AskedAt:  l.clock.Now(),
		},
	})
	if err != nil {
		l.logger.Warn("failed to record exchange", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (l *chatLoop) printHistory(ctx context.Context, sessionID string) {
	got, err := l.sessions.Get(ctx, chatsession.GetInput{SessionID: sessionID})
	if err != nil {
		fmt.Fprintf(l.errOut, "Error: %v\n", err)
		return
	}

	exchanges := got.Session.Exchanges
	if len(exchanges) == 0 {
		fmt.Fprintln(l.out, "No questions asked yet.")
		fmt.Fprintln(l.out)
		return
	}

	fmt.Fprintf(l.out, "History (%d):\n", len(exchanges))
	for i, ex := range exchanges {
		fmt.Fprintf(l.out, "%d. You: %s\n", i+1, ex.Question)
		fmt.Fprintf(l.out, "   Assistant: %s\n", ex.Answer)
	}
	fmt.Fprintln(l.out)
}

// readLines feeds stdin lines to a channel so the loop can also watch ctx.
// The channel closes at EOF.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
