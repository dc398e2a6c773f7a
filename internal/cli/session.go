package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/artpar/auweb/internal/app"
	"github.com/artpar/auweb/internal/beautify"
	"github.com/artpar/auweb/internal/config"
	"github.com/artpar/auweb/internal/highlight"
	httpclient "github.com/artpar/auweb/internal/protocol/http"
	"github.com/spf13/cobra"
)

// session is what every command needs before it can do its work.
type session struct {
	configPath string
	config     *config.Config
	level      slog.Level
	logger     *slog.Logger
}

// newSession loads the config named by --config (or the default location)
// and builds a logger at --log-level writing to the command's stderr.
func newSession(cmd *cobra.Command) (*session, error) {
	level, err := parseLevel(stringFlag(cmd, "log-level", "warn"))
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	path := stringFlag(cmd, "config", "")
	if path == "" {
		if path, err = config.Path(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", path)

	return &session{configPath: path, config: cfg, level: level, logger: logger}, nil
}

// newApp builds the exchange pipeline from the session's config.
func (s *session) newApp(opts ...httpclient.Option) *app.App {
	clientOpts := []httpclient.Option{httpclient.WithTimeout(s.config.Timeout)}
	if !s.config.FollowRedirects {
		clientOpts = append(clientOpts, httpclient.WithNoRedirects())
	}
	clientOpts = append(clientOpts, opts...)

	return app.New(
		httpclient.NewClient(clientOpts...),
		app.WithBeautifier(s.beautifier()),
		app.WithVariables(s.config.Variables),
		app.WithLogger(s.logger),
	)
}

func (s *session) beautifier() *beautify.Beautifier {
	return beautify.New(beautify.WithStrictHTML(s.config.Beautify.StrictHTML))
}

func (s *session) highlighter() *highlight.Highlighter {
	return highlight.New(s.config.Highlight.Style, s.config.Highlight.Formatter)
}

// logTo sends the session's log to w from now on.
func (s *session) logTo(w io.Writer) {
	s.logger = newLogger(w, s.level)
}

func parseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// stringFlag reads a flag that may be inherited from the root command. A
// command run on its own, as in tests, falls back to def.
func stringFlag(cmd *cobra.Command, name, def string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return def
	}
	return f.Value.String()
}
