package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"CycleSkip/common"
	"CycleSkip/cycle"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

var (
	configPath    string
	maxIterations string
	method        string
	verbose       bool
	grouped       bool

	part      int
	inputPath string
	steps     string

	rootCmd = &cobra.Command{
		Use:           "solve",
		Short:         "Answer quests that need astronomically many simulation steps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clapperCmd = &cobra.Command{
		Use:   "clapper",
		Short: "Pseudo-random clap dance (shout after N rounds, repeated shout, highest shout)",
		RunE:  runQuest("clapper", solveClapper),
	}
	wheelCmd = &cobra.Command{
		Use:   "wheel",
		Short: "Cat grin of fortune (faces after N pulls, coins over N pulls, lever extremes)",
		RunE:  runQuest("wheel", solveWheel),
	}
	dialCmd = &cobra.Command{
		Use:   "dial",
		Short: "Mountain lock dial (number after N turns)",
		RunE:  runQuest("dial", solveDial),
	}
	lightCmd = &cobra.Command{
		Use:   "light",
		Short: "Game of Light (lit tiles over N rounds, centre pattern matches)",
		RunE:  runQuest("light", solveLight),
	}
	enigmaCmd = &cobra.Command{
		Use:   "enigma",
		Short: "EniCode (concatenated, tail and summed modular powers)",
		RunE:  runQuest("enigma", solveEnigma),
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with max_iterations, method and per-quest steps")
	rootCmd.PersistentFlags().StringVar(&maxIterations, "max-iterations", "", "Give up when no state repeats within this many steps. Can use M, G, T, P and E as power of ten")
	rootCmd.PersistentFlags().StringVar(&method, "method", "", "Repeat detection method: exact or floyd")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&grouped, "grouped", false, "Print numbers in the answer with thousands separators")

	for _, cmd := range []*cobra.Command{clapperCmd, wheelCmd, dialCmd, lightCmd, enigmaCmd} {
		cmd.Flags().IntVar(&part, "part", 1, "Quest part (1, 2 or 3)")
		cmd.Flags().StringVar(&inputPath, "input", "", "Puzzle input file (stdin when empty)")
		cmd.Flags().StringVar(&steps, "steps", "", "Override the step count of the part. Can use M, G, T, P and E as power of ten")
		rootCmd.AddCommand(cmd)
	}
}

// run is everything a quest needs to produce its answer.
type run struct {
	part    int
	input   io.Reader
	steps   *big.Int
	options []cycle.Option
}

type solver func(r run) (string, error)

// defaultSteps are the step counts each quest part asks about.
var defaultSteps = map[string][3]string{
	"clapper": {"10", "2024", "0"},
	"wheel":   {"100", "202420242024", "256"},
	"dial":    {"2025", "20252025", "202520252025"},
	"light":   {"10", "2025", "1G"},
	"enigma":  {"0", "0", "0"},
}

func runQuest(quest string, solve solver) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if part < 1 || part > 3 {
			return fmt.Errorf("part must be 1, 2 or 3, got %d", part)
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
			With("run", uuid.NewString(), "quest", quest, "part", part)

		config, err := common.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if maxIterations != "" {
			config.MaxIterations = maxIterations
		}
		if method != "" {
			config.Method = method
		}
		options, err := config.Options()
		if err != nil {
			return err
		}
		options = append(options, cycle.WithLogger(log))

		stepString := defaultSteps[quest][part-1]
		if s, ok := config.Steps[quest]; ok {
			stepString = s
		}
		if steps != "" {
			stepString = steps
		}
		target, err := common.DecodeLimit(stepString)
		if err != nil {
			return err
		}
		p := message.NewPrinter(message.MatchLanguage("en"))
		log.Debug("solving", "steps", group(p, target), "literal", common.FormatLimit(target))

		input := cmd.InOrStdin()
		if inputPath != "" {
			f, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer func(f *os.File) {
				_ = f.Close()
			}(f)
			input = f
		}

		answer, err := solve(run{part: part, input: input, steps: target, options: options})
		if err != nil {
			return fmt.Errorf("%s part %d: %w", quest, part, err)
		}

		if grouped {
			answer = groupFields(p, answer)
		}
		_, err = p.Fprintf(cmd.OutOrStdout(), "Part %d: %s\n", part, answer)
		return err
	}
}

// group renders n with the printer's thousands separators.
func group(p *message.Printer, n *big.Int) string {
	if n.IsInt64() {
		return p.Sprintf("%d", n.Int64())
	}
	return humanize.BigComma(n)
}

// groupFields groups every integer in a space separated answer and leaves
// anything else alone.
func groupFields(p *message.Printer, answer string) string {
	fields := strings.Split(answer, " ")
	for i, field := range fields {
		if n, ok := new(big.Int).SetString(field, 10); ok {
			fields[i] = group(p, n)
		}
	}
	return strings.Join(fields, " ")
}
