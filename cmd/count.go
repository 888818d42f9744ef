package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wgomg/nucleo/internal/config"
	"github.com/wgomg/nucleo/internal/nucleotide"
	"github.com/wgomg/nucleo/internal/render"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type countOptions struct {
	envFile string
	file    string
	fasta   bool
	output  string
	width   int
}

func countCmd() *cobra.Command {
	var opts countOptions

	cmd := &cobra.Command{
		Use:   "count [SEQUENCE]",
		Short: "Count nucleotides in a sequence",
		Long: `Count nucleotides in a sequence given as an argument, read from --file,
or read from standard input when neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `Read the sequence from a file ("-" for stdin)`)
	cmd.Flags().BoolVar(&opts.fasta, "fasta", false, "Drop FASTA header lines starting with '>'")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json, yaml")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Bar chart width (default: COUNTER_CHART_WIDTH)")

	return cmd
}

func runCount(stdin io.Reader, stdout io.Writer, args []string, opts countOptions) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	width := cfg.Counter.ChartWidth
	if opts.width < 0 {
		return fmt.Errorf("--width must not be negative, got %d", opts.width)
	}
	if opts.width > 0 {
		width = opts.width
	}

	raw, err := readSequence(stdin, args, opts.file)
	if err != nil {
		return err
	}
	if opts.fasta {
		raw, err = stripFastaHeaders(strings.NewReader(raw))
		if err != nil {
			return fmt.Errorf("read fasta: %w", err)
		}
	}

	analysis := nucleotide.Analyze(raw)

	switch opts.output {
	case outputText:
		return render.Text(stdout, analysis, width)
	case outputJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	case outputYAML:
		enc := yaml.NewEncoder(stdout)
		defer enc.Close()
		return enc.Encode(analysis)
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
}

func readSequence(stdin io.Reader, args []string, file string) (string, error) {
	if len(args) > 0 && file != "" {
		return "", fmt.Errorf("give either a SEQUENCE argument or --file, not both")
	}
	if len(args) > 0 {
		return args[0], nil
	}

	src := stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("open sequence file: %w", err)
		}
		defer f.Close()
		src = f
	}

	b, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read sequence: %w", err)
	}
	return string(b), nil
}

// stripFastaHeaders keeps the sequence lines of FASTA input, line breaks
// included, so normalization sees the same text minus the headers.
func stripFastaHeaders(r io.Reader) (string, error) {
	var b strings.Builder
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if !strings.HasPrefix(line, ">") {
			b.WriteString(line)
		}
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}
