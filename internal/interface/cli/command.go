package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/news-summarizer/internal/domain/session"
	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

var (
	errEmptyInput    = errors.New("nothing to summarize: input is empty")
	errSummaryFailed = errors.New("summarization failed")
)

// Dependencies are the collaborators the command drives.
type Dependencies struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// NewService builds the summarization client for the chosen endpoint.
	NewService      func(endpoint, apiKey string) summarizer.Service
	Clipboard       session.Clipboard
	Logger          *slog.Logger
	DefaultEndpoint string
}

type options struct {
	preset   string
	file     string
	endpoint string
	apiKey   string
	copy     bool
}

// NewRootCommand builds the `summarize` command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "summarize [text]",
		Short: "Summarize pasted text with a hosted summarization model",
		Long: "Reads text from the arguments, --file, or stdin, sends it to the summarization endpoint " +
			"and prints the summary. Use --copy to place the summary on the clipboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, deps)
		},
	}
	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.preset, "preset", "p", string(session.DefaultPreset), "summary length: short, medium or detailed")
	flags.StringVarP(&opts.file, "file", "f", "", "read the text from a file")
	flags.StringVar(&opts.endpoint, "endpoint", deps.DefaultEndpoint, "summarization endpoint URL")
	flags.StringVar(&opts.apiKey, "api-key", "", "bearer token sent to the endpoint")
	flags.BoolVarP(&opts.copy, "copy", "c", false, "copy the summary to the clipboard")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options, deps Dependencies) error {
	preset, err := session.ParsePreset(opts.preset)
	if err != nil {
		return err
	}
	input, err := readInput(cmd.InOrStdin(), args, opts.file)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	notifier := session.NotifierFunc(func(message string) {
		fmt.Fprintln(errOut, RenderNotice(message))
	})
	ctrl := session.NewController(deps.NewService(opts.endpoint, opts.apiKey), deps.Clipboard, notifier, deps.Logger)
	ctrl.SetInput(input)
	if err := ctrl.SetPreset(preset); err != nil {
		return err
	}
	if !ctrl.View().CanSubmit {
		return errEmptyInput
	}

	fmt.Fprintln(errOut, RenderBusy())
	ctrl.Submit(cmd.Context())

	state := ctrl.State()
	fmt.Fprintln(cmd.OutOrStdout(), Render(state))
	if state.LastError != "" {
		return errSummaryFailed
	}

	if opts.copy {
		if _, err := ctrl.CopySummary(cmd.Context()); err != nil {
			return err
		}
	}
	return nil
}

func readInput(stdin io.Reader, args []string, file string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errSummaryFailed):
		return 2
	default:
		return 1
	}
}
