package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show resolved app settings",
		Long: `Show the app identity and engine settings after applying calcphone.yaml.

Missing values are derived from go.mod in the project directory: the app
name from the last module path element, the app id from the reversed host.`,
		Usage: "calcphone info",
		Run:   runInfo,
	})
}

func runInfo(env *Env, args []string) error {
	cfg, err := resolveConfig(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintf(env.Stdout, "App:          %s (%s)\n", cfg.AppName, cfg.AppID)
	fmt.Fprintf(env.Stdout, "Version:      %s\n", cfg.Version)
	if cfg.ModulePath != "" {
		fmt.Fprintf(env.Stdout, "Module:       %s\n", cfg.ModulePath)
	}
	fmt.Fprintf(env.Stdout, "Error marker: %s\n", cfg.ErrorMarker)
	return nil
}
