package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/artpar/auweb/internal/app"
	"github.com/artpar/auweb/internal/core"
	"github.com/artpar/auweb/internal/display"
	"github.com/artpar/auweb/internal/draft"
	httpclient "github.com/artpar/auweb/internal/protocol/http"
	"github.com/artpar/auweb/internal/script"
	"github.com/spf13/cobra"
)

// SendOptions holds options for the send command.
type SendOptions struct {
	Headers     []string
	HeadersFile string
	Data        string
	Form        bool
	Highlight   string
	Raw         bool
	NoColor     bool
	Eval        string
	Timeout     time.Duration
}

// NewSendCommand creates the send command.
func NewSendCommand() *cobra.Command {
	opts := &SendOptions{}

	cmd := &cobra.Command{
		Use:   "send [METHOD] URL",
		Short: "Send an HTTP request",
		Long: `Send an HTTP request and print the status, headers and beautified body.

METHOD is one of GET, POST_FORM, POST_RAW, PUT, PATCH, DELETE, HEAD or
OPTIONS; a plain POST sends the body as typed. Without METHOD the request is
a GET, or a POST when --data is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Headers, "header", "H", nil, "Request header line (format: Name: value)")
	cmd.Flags().StringVar(&opts.HeadersFile, "headers-file", "", "File with one header per line")
	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "Request body, or @file to read it from a file")
	cmd.Flags().BoolVar(&opts.Form, "form", false, "Send the body as key=value lines, form encoded")
	cmd.Flags().StringVar(&opts.Highlight, "highlight", "", "Highlight the body as this kind or file extension")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print the body without beautifying it")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable syntax highlighting")
	cmd.Flags().StringVar(&opts.Eval, "eval", "", "JavaScript expression over `response` to print instead of the response")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Request timeout (default from config)")

	return cmd
}

func runSend(cmd *cobra.Command, args []string, opts *SendOptions) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	d, err := opts.draft(args)
	if err != nil {
		return err
	}

	var clientOpts []httpclient.Option
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, httpclient.WithTimeout(opts.Timeout))
	}

	result, err := s.newApp(clientOpts...).Exchange(cmd.Context(), d)
	if err != nil {
		printWarnings(cmd, app.Warnings(err))
		return err
	}
	printWarnings(cmd, result.Warnings)

	if opts.Eval != "" {
		out, err := script.Eval(cmd.Context(), opts.Eval, result.Response)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	if opts.Raw {
		result.Pretty = result.Response.Body().String()
	}

	ctx := display.NewContext(nil)
	if !opts.NoColor {
		ctx = display.NewContext(s.highlighter())
	}
	return printResult(cmd, ctx, result)
}

// draft turns the command line into the same draft the TUI would send.
func (o *SendOptions) draft(args []string) (draft.Draft, error) {
	d := draft.Draft{URL: args[len(args)-1], Highlight: o.Highlight}

	body, err := readArg(o.Data)
	if err != nil {
		return d, err
	}
	d.Body = body

	switch {
	case len(args) == 2:
		m, err := core.ParseMethod(args[0])
		if err != nil {
			return d, err
		}
		d.Method = m
	case body != "":
		d.Method = core.MethodPostRaw
	default:
		d.Method = core.MethodGet
	}
	if o.Form && d.Method == core.MethodPostRaw {
		d.Method = core.MethodPostForm
	}

	var lines []string
	if o.HeadersFile != "" {
		data, err := os.ReadFile(o.HeadersFile)
		if err != nil {
			return d, fmt.Errorf("failed to read headers file: %w", err)
		}
		lines = append(lines, string(data))
	}
	lines = append(lines, o.Headers...)
	d.Headers = strings.Join(lines, "\n")

	return d, nil
}

// readArg returns v, or the contents of the file named after a leading "@".
func readArg(v string) (string, error) {
	name, ok := strings.CutPrefix(v, "@")
	if !ok {
		return v, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

func printResult(cmd *cobra.Command, ctx *display.Context, result *app.Result) error {
	out := cmd.OutOrStdout()
	resp := result.Response

	var body, hdrs display.Buffer
	if err := ctx.Render(&body, &hdrs, result); err != nil {
		// Highlighting failed; body still holds the plain text.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	fmt.Fprintf(out, "HTTP %s\n", resp.Status().Text())
	fmt.Fprintf(out, "Time: %dms\n", resp.Timing().Total.Milliseconds())
	fmt.Fprint(out, hdrs.Text())

	if !resp.Body().IsEmpty() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.TrimRight(body.Text(), "\n"))
	}

	return nil
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
}
