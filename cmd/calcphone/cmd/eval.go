package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "eval",
		Short: "Press a sequence of keys and print the display",
		Long: `Press each key in order on a fresh calculator and print the final display.

Flags:
  --trace    Print every key with the display it produced

Use "--" before the keys if one of them looks like a flag.

Examples:
  calcphone eval 2 + 3 x 4 =
  calcphone eval --trace 5 / 0 = 7`,
		Usage: "calcphone eval [--trace] KEY...",
		Run:   runEval,
	})
}

func runEval(env *Env, args []string) error {
	trace := false
	var keys []string
	for i, arg := range args {
		if arg == "--" {
			keys = append(keys, args[i+1:]...)
			break
		}
		if arg == "--trace" {
			trace = true
			continue
		}
		keys = append(keys, arg)
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys given\n\nUsage: calcphone eval [--trace] KEY...")
	}

	events, err := parseInput(keys)
	if err != nil {
		return err
	}

	engine, err := newEngine(env)
	if err != nil {
		return err
	}

	for _, ev := range events {
		display := engine.Apply(ev)
		if trace {
			fmt.Fprintf(env.Stdout, "%-3s %s\n", ev.Label(), display)
		}
	}
	if !trace {
		fmt.Fprintln(env.Stdout, engine.Display())
	}
	return nil
}
