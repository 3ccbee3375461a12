package main

import (
	"flag"
	"fmt"
	"os"

	"jfor/repl"
)

const version = "jfor v0.1.0 - structured FOR-loop scripting engine"

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	args := flag.Args()
	switch {
	case len(args) == 0:
		// Interactive REPL
		if err := runREPL(*configPath, *verbose); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

	case len(args) == 1 && args[0] == "demo":
		if err := DemoMode(*configPath, *verbose); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

	case len(args) == 1:
		if err := BatchMode(args[0], *configPath, *verbose); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

	default:
		printUsage()
		os.Exit(0)
	}
}

// printUsage prints the two-line usage message for invalid invocations
func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  jfor [--config <path>] [--verbose] [demo | <program.jfor>]")
}

// printHelp displays help information
func printHelp() {
	fmt.Println(version)
	fmt.Println()
	fmt.Println("Usage: jfor [options] [demo | <program.jfor>]")
	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println("  jfor                      Run the interactive REPL")
	fmt.Println("  jfor demo                 Run the built-in demonstration program")
	fmt.Println("  jfor <program.jfor>       Run a program file")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <path>           Path to configuration file")
	fmt.Println("  --verbose                 Enable verbose output")
	fmt.Println("  --version                 Show version information")
	fmt.Println("  --help                    Show this help message")
	fmt.Println()
	fmt.Println("Configuration files are searched at ~/.jfor/config.yaml and ./config.yaml")
	fmt.Println("unless --config is given.")
}

// runREPL starts the interactive session
func runREPL(configPath string, verbose bool) error {
	cfg, err := LoadConfig(resolveConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}
	if verbose {
		cfg.Engine.Verbose = true
	}

	eng, rt, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer rt.Cleanup()

	replInstance, err := repl.NewREPLWithConfig(repl.Config{
		Engine:         eng,
		Prompt:         cfg.REPL.Prompt,
		ContinuePrompt: "... ",
		HistoryFile:    cfg.REPL.HistoryFile,
		HistorySize:    cfg.REPL.HistorySize,
		ShowWelcome:    cfg.REPL.ShowWelcome,
	})
	if err != nil {
		return err
	}

	return replInstance.Run()
}

// resolveConfigPath falls back to the default config locations when no
// explicit path is given
func resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	home, _ := os.UserHomeDir()
	defaultPaths := []string{}
	if home != "" {
		defaultPaths = append(defaultPaths, home+"/.jfor/config.yaml")
	}
	defaultPaths = append(defaultPaths, "./config.yaml")

	for _, path := range defaultPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
