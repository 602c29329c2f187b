package cmd

import (
	"bufio"
	"fmt"
	"strings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Read keys from standard input",
		Long: `Run an interactive calculator on standard input.

Each line holds one or more keys separated by spaces. After every line the
display is printed. A line with an unknown key is rejected as a whole and
the calculator is left unchanged.

Type "q" or "quit", or close the input, to stop.`,
		Usage: "calcphone run",
		Run:   runRun,
	})
}

func runRun(env *Env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("run takes no arguments (got %q)", strings.Join(args, " "))
	}

	engine, err := newEngine(env)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(env.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		events, err := parseInput([]string{line})
		if err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v\n", err)
			continue
		}
		for _, ev := range events {
			engine.Apply(ev)
		}
		fmt.Fprintln(env.Stdout, engine.Display())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
