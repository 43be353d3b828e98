package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/xvzc/containers/internal/ptr"
)

const configFilename = "containers.toml"

func CreateCommand(
	runFunc func(ctx context.Context, configPath string, cfg *Config) error,
	version string,
) *cli.Command {
	cli.RootCommandHelpTemplate = createHelpTemplate()

	cmd := &cli.Command{
		Name:        "containers",
		Description: "Walk through a set of generic containers step by step",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "clean",
				Usage: `
				If set, all configuration files will be ignored`,
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `
				Custom location of the config file to load. Options given through the command
				line flags will override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("CONTAINERS_CONFIG"),
			},

			&cli.StringSliceFlag{
				Name: "demo",
				Usage: fmt.Sprintf(`
				Demos to run, in the order given. Can be given multiple times or as
				a comma separated list. (default: all, one of %v)`, availableDemos),
				Validator: func(ss []string) error {
					for _, s := range ss {
						if err := checkDemo(s); err != nil {
							return err
						}
					}

					return nil
				},
			},

			&cli.StringFlag{
				Name: "log-level",
				Usage: `
				Set log level (default: 'info')`,
				OnlyOnce:  true,
				Validator: checkLogLevel,
			},

			&cli.BoolFlag{
				Name: "silent",
				Usage: `
				Do not show the banner at start up`,
				OnlyOnce: true,
			},

			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage: `
				Print version`,
				OnlyOnce: true,
			},

			&cli.IntSliceFlag{
				Name: "tree-values",
				Usage: `
				Values inserted into the binary search tree (default: 10,5,15,3,7,13,17)`,
				Validator: checkValues,
			},

			&cli.IntSliceFlag{
				Name: "tree-search",
				Usage: `
				Values looked up in the binary search tree (default: 7,8)`,
				Validator: checkValues,
			},

			&cli.IntSliceFlag{
				Name: "graph-nodes",
				Usage: `
				Vertices added to the graph before any edge (default: 1,2)`,
				Validator: checkValues,
			},

			&cli.StringSliceFlag{
				Name: "graph-edges",
				Usage: `
				Undirected edges in the form <from>:<to>; missing vertices are created.
				(default: 1:2,1:3,3:4)`,
				Validator: func(ss []string) error {
					for _, s := range ss {
						if err := checkEdge(s); err != nil {
							return err
						}
					}

					return nil
				},
			},

			&cli.IntSliceFlag{
				Name: "graph-remove",
				Usage: `
				Vertices removed from the graph after all edges are added (default: 3)`,
				Validator: checkValues,
			},

			&cli.IntSliceFlag{
				Name: "list-first",
				Usage: `
				Values pushed to the head of the linked list (default: 10,20)`,
				Validator: checkValues,
			},

			&cli.IntSliceFlag{
				Name: "list-last",
				Usage: `
				Values appended to the tail of the linked list (default: 30,40)`,
				Validator: checkValues,
			},

			&cli.IntFlag{
				Name: "list-remove-first",
				Usage: `
				Number of elements removed from the head of the linked list (default: 1, max: 255)`,
				OnlyOnce:  true,
				Validator: intValidator(checkUint8),
			},

			&cli.IntFlag{
				Name: "list-remove-last",
				Usage: `
				Number of elements removed from the tail of the linked list (default: 1, max: 255)`,
				OnlyOnce:  true,
				Validator: intValidator(checkUint8),
			},

			&cli.IntSliceFlag{
				Name: "stack-values",
				Usage: `
				Values pushed onto the stack (default: 10,20,30,40,50)`,
				Validator: checkValues,
			},

			&cli.IntFlag{
				Name: "stack-pop",
				Usage: `
				Number of elements popped from the stack (default: 1, max: 255)`,
				OnlyOnce:  true,
				Validator: intValidator(checkUint8),
			},

			&cli.IntSliceFlag{
				Name: "queue-values",
				Usage: `
				Values enqueued (default: 10,20,30,40,50)`,
				Validator: checkValues,
			},

			&cli.IntFlag{
				Name: "queue-dequeue",
				Usage: `
				Number of elements dequeued (default: 1, max: 255)`,
				OnlyOnce:  true,
				Validator: intValidator(checkUint8),
			},

			&cli.IntSliceFlag{
				Name: "array-values",
				Usage: `
				Values appended to the array (default: 10,20,30,40,50)`,
				Validator: checkValues,
			},

			&cli.IntFlag{
				Name: "array-get-index",
				Usage: `
				Index of the array element to read (default: 2)`,
				OnlyOnce:  true,
				Validator: intValidator(checkNonNegative),
			},

			&cli.IntFlag{
				Name: "array-index-of",
				Usage: `
				Value whose index is looked up in the array (default: 30)`,
				OnlyOnce:  true,
				Validator: intValidator(checkValue),
			},

			&cli.IntFlag{
				Name: "array-remove-index",
				Usage: `
				Index of the array element to remove (default: 3)`,
				OnlyOnce:  true,
				Validator: intValidator(checkNonNegative),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				_, _ = fmt.Fprintf(cmd.Root().Writer, "containers %s\n", version)
				return nil
			}

			var tomlCfg *Config
			var configPath string
			if !cmd.Bool("clean") {
				lookupPaths := []string{
					path.Join(string(os.PathSeparator), "etc", configFilename),
					xdgConfigPath(),
					path.Join(os.Getenv("HOME"), ".config", "containers", configFilename),
				}

				p, err := searchTomlFile(cmd.String("config"), lookupPaths)
				if err != nil {
					return err
				}

				if p != "" {
					configPath = p
					tomlCfg, err = fromTomlFile(p)
					if err != nil {
						return fmt.Errorf("error parsing toml config: %w", err)
					}
				}
			}

			argsCfg, err := parseConfigFromArgs(cmd)
			if err != nil {
				return fmt.Errorf("error parsing config from args: %w", err)
			}

			finalCfg := NewConfig().Merge(tomlCfg).Merge(argsCfg)

			home := os.Getenv("HOME")
			if home != "" {
				configPath = strings.Replace(configPath, home, "~", 1)
			}

			return runFunc(ctx, configPath, finalCfg)
		},
	}

	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage: `
        show help`,
	}

	return cmd
}

func createHelpTemplate() string {
	return fmt.Sprintf(`DESCRIPTION:
  %s
USAGE:
  %s {{if .Flags}}%s{{end}}
GLOBAL OPTIONS:
  {{range .VisibleFlags}}%s{{if .Aliases}}{{range .Aliases}}%s{{end}}{{end}} %s %s
	{{end}}
	`,
		"{{.Name}} - {{.Description}}",
		"{{.Name}}",
		"[global options]",
		"--{{.Name}}",
		", -{{.}}",
		"{{.TypeName}}",
		"{{.Usage}}",
	)
}

// xdgConfigPath is empty when XDG_CONFIG_HOME is unset so that the lookup
// does not resolve to a relative path.
func xdgConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		return ""
	}

	return path.Join(dir, "containers", configFilename)
}

func intValidator(check func(int64) error) func(int) error {
	return func(v int) error {
		return check(int64(v))
	}
}

// parseConfigFromArgs only fills the fields whose flags were given, so that
// unset flags never override values from the toml file.
func parseConfigFromArgs(cmd *cli.Command) (*Config, error) {
	cfg := &Config{
		General: &GeneralOptions{},
		Tree:    &TreeOptions{},
		Graph:   &GraphOptions{},
		List:    &ListOptions{},
		Stack:   &StackOptions{},
		Queue:   &QueueOptions{},
		Array:   &ArrayOptions{},
	}

	// General
	if cmd.IsSet("log-level") {
		cfg.General.LogLevel = ptr.FromValue(MustParseLogLevel(cmd.String("log-level")))
	}

	if cmd.IsSet("silent") {
		cfg.General.Silent = ptr.FromValue(cmd.Bool("silent"))
	}

	if cmd.IsSet("demo") {
		demos := make([]DemoKind, 0, len(cmd.StringSlice("demo")))
		for _, s := range cmd.StringSlice("demo") {
			demos = append(demos, MustParseDemoKind(s))
		}
		cfg.General.Demos = demos
	}

	// Tree
	if cmd.IsSet("tree-values") {
		cfg.Tree.Values = ptr.CloneSlice(cmd.IntSlice("tree-values"))
	}

	if cmd.IsSet("tree-search") {
		cfg.Tree.Search = ptr.CloneSlice(cmd.IntSlice("tree-search"))
	}

	// Graph
	if cmd.IsSet("graph-nodes") {
		cfg.Graph.Nodes = ptr.CloneSlice(cmd.IntSlice("graph-nodes"))
	}

	if cmd.IsSet("graph-edges") {
		edges := make([]Edge, 0, len(cmd.StringSlice("graph-edges")))
		for _, s := range cmd.StringSlice("graph-edges") {
			edges = append(edges, MustParseEdge(s))
		}
		cfg.Graph.Edges = edges
	}

	if cmd.IsSet("graph-remove") {
		cfg.Graph.Remove = ptr.CloneSlice(cmd.IntSlice("graph-remove"))
	}

	// List
	if cmd.IsSet("list-first") {
		cfg.List.First = ptr.CloneSlice(cmd.IntSlice("list-first"))
	}

	if cmd.IsSet("list-last") {
		cfg.List.Last = ptr.CloneSlice(cmd.IntSlice("list-last"))
	}

	if cmd.IsSet("list-remove-first") {
		cfg.List.RemoveFirst = ptr.FromValue(uint8(cmd.Int("list-remove-first")))
	}

	if cmd.IsSet("list-remove-last") {
		cfg.List.RemoveLast = ptr.FromValue(uint8(cmd.Int("list-remove-last")))
	}

	// Stack
	if cmd.IsSet("stack-values") {
		cfg.Stack.Values = ptr.CloneSlice(cmd.IntSlice("stack-values"))
	}

	if cmd.IsSet("stack-pop") {
		cfg.Stack.Pop = ptr.FromValue(uint8(cmd.Int("stack-pop")))
	}

	// Queue
	if cmd.IsSet("queue-values") {
		cfg.Queue.Values = ptr.CloneSlice(cmd.IntSlice("queue-values"))
	}

	if cmd.IsSet("queue-dequeue") {
		cfg.Queue.Dequeue = ptr.FromValue(uint8(cmd.Int("queue-dequeue")))
	}

	// Array
	if cmd.IsSet("array-values") {
		cfg.Array.Values = ptr.CloneSlice(cmd.IntSlice("array-values"))
	}

	if cmd.IsSet("array-get-index") {
		cfg.Array.GetIndex = ptr.FromValue(cmd.Int("array-get-index"))
	}

	if cmd.IsSet("array-index-of") {
		cfg.Array.IndexOf = ptr.FromValue(cmd.Int("array-index-of"))
	}

	if cmd.IsSet("array-remove-index") {
		cfg.Array.RemoveIndex = ptr.FromValue(cmd.Int("array-remove-index"))
	}

	return cfg, nil
}
