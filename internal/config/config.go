package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/containers/internal/ptr"
)

var _ merger[*Config] = (*Config)(nil)

type Config struct {
	General *GeneralOptions `toml:"general"`
	Tree    *TreeOptions    `toml:"tree"`
	Graph   *GraphOptions   `toml:"graph"`
	List    *ListOptions    `toml:"list"`
	Stack   *StackOptions   `toml:"stack"`
	Queue   *QueueOptions   `toml:"queue"`
	Array   *ArrayOptions   `toml:"array"`
}

func (c *Config) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type config")
	}

	c.General = findStructFrom[GeneralOptions](m, "general", &err)
	c.Tree = findStructFrom[TreeOptions](m, "tree", &err)
	c.Graph = findStructFrom[GraphOptions](m, "graph", &err)
	c.List = findStructFrom[ListOptions](m, "list", &err)
	c.Stack = findStructFrom[StackOptions](m, "stack", &err)
	c.Queue = findStructFrom[QueueOptions](m, "queue", &err)
	c.Array = findStructFrom[ArrayOptions](m, "array", &err)

	return err
}

// NewConfig returns the built-in scenario every demo runs when nothing
// else is configured.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: ptr.FromValue(zerolog.InfoLevel),
			Silent:   ptr.FromValue(false),
			Demos: []DemoKind{
				DemoTree, DemoGraph, DemoList, DemoStack, DemoQueue, DemoArray,
			},
		},
		Tree: &TreeOptions{
			Values: []int{10, 5, 15, 3, 7, 13, 17},
			Search: []int{7, 8},
		},
		Graph: &GraphOptions{
			Nodes: []int{1, 2},
			Edges: []Edge{
				{From: 1, To: 2},
				{From: 1, To: 3},
				{From: 3, To: 4},
			},
			Remove: []int{3},
		},
		List: &ListOptions{
			First:       []int{10, 20},
			Last:        []int{30, 40},
			RemoveFirst: ptr.FromValue(uint8(1)),
			RemoveLast:  ptr.FromValue(uint8(1)),
		},
		Stack: &StackOptions{
			Values: []int{10, 20, 30, 40, 50},
			Pop:    ptr.FromValue(uint8(1)),
		},
		Queue: &QueueOptions{
			Values:  []int{10, 20, 30, 40, 50},
			Dequeue: ptr.FromValue(uint8(1)),
		},
		Array: &ArrayOptions{
			Values:      []int{10, 20, 30, 40, 50},
			GetIndex:    ptr.FromValue(2),
			IndexOf:     ptr.FromValue(30),
			RemoveIndex: ptr.FromValue(3),
		},
	}
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		General: c.General.Clone(),
		Tree:    c.Tree.Clone(),
		Graph:   c.Graph.Clone(),
		List:    c.List.Clone(),
		Stack:   c.Stack.Clone(),
		Queue:   c.Queue.Clone(),
		Array:   c.Array.Clone(),
	}
}

func (origin *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &Config{
		General: origin.General.Merge(overrides.General),
		Tree:    origin.Tree.Merge(overrides.Tree),
		Graph:   origin.Graph.Merge(overrides.Graph),
		List:    origin.List.Merge(overrides.List),
		Stack:   origin.Stack.Merge(overrides.Stack),
		Queue:   origin.Queue.Merge(overrides.Queue),
		Array:   origin.Array.Merge(overrides.Array),
	}
}
