// Package cmd implements the calcphone CLI commands.
//
// The command structure mirrors the toolkit CLI: a root command that
// dispatches to registered subcommands (eval, run, keys, info).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/calcphone/cmd/calcphone/internal/config"
	"github.com/go-drift/calcphone/pkg/calc"
	"github.com/go-drift/calcphone/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(env *Env, args []string) error
	SubCommands []*Command
}

// Env carries the streams and global flags for one invocation.
type Env struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	ConfigPath string
	Verbose    bool
}

var rootCmd = &Command{
	Name:  "calcphone",
	Short: "calcphone - a four-function calculator",
	Long: `calcphone drives the calculator engine from the command line.

Keys are the labels printed on the keypad (see "calcphone keys"), or ASCII
spellings such as * / - and +/-. Numbers may be typed as one word: "12.5"
is the same as the keys 1 2 . 5.

Operators are applied left to right as they are entered: 2 + 3 × 4 = is 20.

Use "calcphone <command> --help" for more information about a command.`,
	Usage: "calcphone <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments and standard streams.
func Execute() error {
	return ExecuteArgs(os.Args[1:], &Env{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
}

// ExecuteArgs runs the CLI with the given arguments. Errors are printed to
// env.Stderr before being returned.
func ExecuteArgs(args []string, env *Env) (err error) {
	prev := errors.SetHandler(&errors.LogHandler{Out: env.Stderr})
	defer errors.SetHandler(prev)
	defer errors.Recover("cmd.Execute", "", func(p *errors.PanicError) {
		err = fmt.Errorf("internal error: %v", p.Value)
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	})

	err = execute(args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	}
	return err
}

func execute(args []string, env *Env) error {
	if len(args) == 0 {
		printHelp(env.Stdout, rootCmd)
		return nil
	}

	// Handle global flags and extract --config
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(env.Stdout, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(env.Stdout, "calcphone version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			env.Verbose = true
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			env.ConfigPath = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config=") {
				env.ConfigPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(env.Stdout, rootCmd)
		return nil
	}

	if env.Verbose {
		errors.SetHandler(&errors.LogHandler{Out: env.Stderr, Verbose: true})
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(env.Stderr, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(env.Stdout, cmd)
			return nil
		}
	}

	return cmd.Run(env, cmdArgs)
}

// resolveConfig loads --config if given, else calcphone.yaml from the
// working directory when present.
func resolveConfig(env *Env) (*config.Resolved, error) {
	if env.ConfigPath != "" {
		return config.ResolveFile(env.ConfigPath)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Resolve(dir)
}

// newEngine builds an engine from the resolved configuration.
func newEngine(env *Env) (*calc.Engine, error) {
	cfg, err := resolveConfig(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return calc.NewEngineWithOptions(cfg.EngineOptions()), nil
}

func printHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config FILE        Read settings from FILE (default: ./calcphone.yaml)")
	fmt.Fprintln(w, "  --verbose            Log engine errors in detail")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  calcphone eval 2 + 3 x 4 =     Prints 20")
	fmt.Fprintln(w, "  calcphone eval --trace 50 %    Shows the display after every key")
	fmt.Fprintln(w, "  echo '1 / 0 =' | calcphone run")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
