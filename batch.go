package main

import (
	"fmt"
	"os"
	"time"

	"jfor/engine"
	"jfor/factory"
	"jfor/logging"
	"jfor/runtime"
)

// DemoProgram exercises all three FOR forms against the Lua evaluator
const DemoProgram = `# Demo: all three FOR styles

print "Counter (ALGOL/BASIC style):"
for i = 1 to 5 by 2 do
    print i
end

print "Iterator:"
for w in ["Hello","Bonjour","Hola"] do
    print w .. " World!"
end

print "C-style semicolon loop:"
for (j = 0; j < 5; j = j + 1) do
    print j
end

print "While-style using semicolons (omit init/step):"
x = 3
for (; x > 0; ) do
    print x
    x = x - 1
end
`

// newLogger builds the application logger from configuration
func newLogger(cfg *Config) (logging.Logger, error) {
	loggerConfig := logging.LoggerConfig{}
	loggerConfig.ApplyLogLevel(cfg.Logging.Level)

	writers := []logging.Writer{logging.NewConsoleWriter()}
	if cfg.Logging.File != "" {
		fileWriter, err := logging.NewFileWriter(cfg.Logging.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %v", err)
		}
		writers = []logging.Writer{logging.NewMultiWriter(writers[0], fileWriter)}
	}
	loggerConfig.Writers = writers

	return logging.NewDefaultLoggerWithConfig(loggerConfig), nil
}

// newEvaluator creates and initializes the configured expression runtime
func newEvaluator(cfg *Config) (runtime.ExpressionRuntime, error) {
	registry := factory.NewRuntimeRegistry()
	timeout := time.Duration(cfg.Evaluator.EvalTimeoutSeconds) * time.Second
	if err := registry.RegisterFactory(factory.NewLuaRuntimeFactoryWithTimeout(timeout)); err != nil {
		return nil, err
	}

	rt, err := registry.CreateRuntimeForLanguage(cfg.Evaluator.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluator runtime: %v", err)
	}

	if err := rt.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize evaluator runtime: %v", err)
	}

	return rt, nil
}

// buildEngine wires the evaluator, logger and output into an engine
func buildEngine(cfg *Config) (*engine.Engine, runtime.ExpressionRuntime, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	rt, err := newEvaluator(cfg)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.NewWithConfig(engine.Config{
		Runtime: rt,
		Output:  os.Stdout,
		Logger:  log,
		Verbose: cfg.Engine.Verbose,
	})
	return eng, rt, nil
}

// BatchMode runs a program file once and exits
func BatchMode(filePath string, configPath string, verbose bool) error {
	cfg, err := LoadConfig(resolveConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}
	if verbose {
		cfg.Engine.Verbose = true
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read program file: %v", err)
	}

	eng, rt, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer rt.Cleanup()

	return eng.Run(string(content))
}

// DemoMode runs the built-in demonstration program
func DemoMode(configPath string, verbose bool) error {
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

	return eng.Run(DemoProgram)
}
