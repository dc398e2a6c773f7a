package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/artpar/auweb/internal/display"
	"github.com/artpar/auweb/internal/mimetype"
	"github.com/spf13/cobra"
)

// BeautifyOptions holds options for the beautify command.
type BeautifyOptions struct {
	ContentType string
	Color       bool
}

// NewBeautifyCommand creates the beautify command.
func NewBeautifyCommand() *cobra.Command {
	opts := &BeautifyOptions{}

	cmd := &cobra.Command{
		Use:   "beautify [FILE]",
		Short: "Pretty-print a JSON, XML or HTML document",
		Long: `Format a document the way response bodies are formatted, without sending
anything. The document is read from FILE, or from stdin when FILE is omitted
or "-". Text that cannot be parsed is printed unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBeautify(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ContentType, "content-type", "t", "text/plain", "Content-Type of the document")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "Syntax highlight the output")

	return cmd
}

func runBeautify(cmd *cobra.Command, args []string, opts *BeautifyOptions) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	mediaType, ok := mimetype.Parse(opts.ContentType)
	if !ok {
		s.logger.Warn("unparseable content type, treating as text/plain", "content_type", opts.ContentType)
		mediaType = mimetype.TextPlain
	}
	kind := mimetype.Classify(mediaType)
	pretty := s.beautifier().Beautify(kind, text)

	if !opts.Color {
		fmt.Fprintln(cmd.OutOrStdout(), pretty)
		return nil
	}

	ctx := display.NewContext(s.highlighter())
	ctx.Extension = kind.Extension()
	ctx.MediaType = mediaType.String()

	var out display.Buffer
	if err := ctx.RenderBody(&out, pretty); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out.Text(), "\n"))
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
