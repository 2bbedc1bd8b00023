// Package shell is the line based command interpreter driving a player.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/player"
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/video"
)

// Shell reads one command per line and prints the outcome.
type Shell struct {
	session  string
	player   *player.Player
	out      io.Writer
	lines    *bufio.Scanner
	prompter Prompter

	// input is fed by a reader goroutine so that waiting for a line can be abandoned
	input     chan string
	inputErr  error
	startRead sync.Once
	// ctx is the context of the running loop, read by the line prompter
	ctx context.Context
}

type options struct {
	prompter Prompter
	picker   playback.Picker
}

// Option configures a Shell.
type Option func(*options)

// WithPrompter replaces the default prompter, which reads the answer from the
// next input line.
func WithPrompter(p Prompter) Option {
	return func(o *options) { o.prompter = p }
}

// WithPicker replaces the random choice of PLAY_RANDOM.
func WithPicker(pick playback.Picker) Option {
	return func(o *options) { o.picker = pick }
}

// New creates a shell over a fresh player for catalog.
func New(catalog *video.Catalog, in io.Reader, out io.Writer, opts ...Option) *Shell {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Shell{
		session: uuid.NewString(),
		out:     out,
		lines:   bufio.NewScanner(in),
		input:   make(chan string),
		ctx:     context.Background(),
	}

	s.player = player.New(catalog, player.WithListener(s.onEvent), player.WithPicker(o.picker))

	if o.prompter != nil {
		s.prompter = o.prompter
	} else {
		s.prompter = &linePrompter{shell: s}
	}

	return s
}

// Session identifies this shell in the logs.
func (s *Shell) Session() string {
	return s.session
}

// Player exposes the session state.
func (s *Shell) Player() *player.Player {
	return s.player
}

func (s *Shell) read() {
	defer close(s.input)
	for s.lines.Scan() {
		s.input <- s.lines.Text()
	}
	s.inputErr = s.lines.Err()
}

// next waits for the next input line. ok is false at the end of input.
func (s *Shell) next(ctx context.Context) (line string, ok bool, err error) {
	s.startRead.Do(func() { go s.read() })

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok = <-s.input:
		if !ok {
			return "", false, s.inputErr
		}
		return line, true, nil
	}
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Shell) onEvent(e playback.Event) {
	log.Debugf("[%s] event %s %q", s.session, e.Kind, e.Video.ID())
	s.println(render.Event(e))
}

func (s *Shell) fail(action string, err error) {
	log.Warnf("[%s] %s: %s", s.session, action, err)
	s.println(render.ErrorMessage(action, err))
}

// Run executes commands until EXIT, the end of input, or ctx is done.
// A pending read is abandoned when ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.ctx = ctx
	log.Infof("[%s] shell started", s.session)
	defer log.Infof("[%s] shell finished", s.session)

	if viper.GetBool(key.ShellWelcome) {
		s.println(fmt.Sprintf("Hello and welcome to %s, what would you like to do?", constant.App))
		s.println("Enter HELP for list of available commands or EXIT to terminate.")
	}

	prompt := viper.GetString(key.ShellPrompt)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if prompt != "" {
			_, _ = fmt.Fprint(s.out, prompt)
		}

		line, ok, err := s.next(ctx)
		if !ok {
			return err
		}

		if s.Execute(line) {
			return nil
		}
	}
}

// Execute runs a single command line. It reports whether the shell should exit.
func (s *Shell) Execute(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	verb, args := strings.ToUpper(fields[0]), fields[1:]
	if verb == exitVerb {
		s.println(fmt.Sprintf("%s has now terminated its execution. Thank you and goodbye!", constant.App))
		return true
	}

	cmd, ok := commands[verb]
	if !ok {
		log.Debugf("[%s] unknown command %q", s.session, verb)
		s.println(unknown(verb))
		return false
	}

	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		s.println("Usage: " + cmd.usage)
		return false
	}

	log.Debugf("[%s] command %s %v", s.session, verb, args)
	cmd.run(s, args)
	return false
}

func unknown(verb string) string {
	msg := "Please enter a valid command, type HELP for a list of available commands."

	closest := lo.MinBy(verbs(), func(a, b string) bool {
		return levenshtein.Distance(verb, a) < levenshtein.Distance(verb, b)
	})
	if levenshtein.Distance(verb, closest) <= 3 {
		msg += fmt.Sprintf(" Did you mean %s?", closest)
	}
	return msg
}
