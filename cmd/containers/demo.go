package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog"
	"github.com/xvzc/containers/internal/config"
	"github.com/xvzc/containers/internal/datastruct/array"
	"github.com/xvzc/containers/internal/datastruct/graph"
	"github.com/xvzc/containers/internal/datastruct/list"
	"github.com/xvzc/containers/internal/datastruct/queue"
	"github.com/xvzc/containers/internal/datastruct/stack"
	"github.com/xvzc/containers/internal/datastruct/tree"
	"github.com/xvzc/containers/internal/ptr"
	"github.com/xvzc/containers/internal/render"
)

type demoFunc func(w io.Writer, logger zerolog.Logger, cfg *config.Config) error

var demos = map[config.DemoKind]demoFunc{
	config.DemoTree:  runTreeDemo,
	config.DemoGraph: runGraphDemo,
	config.DemoList:  runListDemo,
	config.DemoStack: runStackDemo,
	config.DemoQueue: runQueueDemo,
	config.DemoArray: runArrayDemo,
}

// printer remembers the first write error so that a demo can print freely
// and check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) print(s string) {
	p.printf("%s", s)
}

func foundText(ok bool) string {
	if ok {
		return "found"
	}

	return "not found"
}

// ┌──────┐
// │ TREE │
// └──────┘
func runTreeDemo(w io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	p := &printer{w: w}
	p.print(render.Section("Binary Search Tree"))

	bst := tree.NewBinarySearchTree[int]()
	for _, v := range cfg.Tree.Values {
		bst.Insert(v)
		logger.Debug().Int("value", v).Msg("insert")
	}

	p.printf("insert     : %s\n", render.Join(cfg.Tree.Values))
	p.printf("in-order   : %s\n", render.Join(slices.Collect(bst.InOrder())))
	p.printf("pre-order  : %s\n", render.Join(slices.Collect(bst.PreOrder())))
	p.printf("post-order : %s\n", render.Join(slices.Collect(bst.PostOrder())))

	for _, v := range cfg.Tree.Search {
		ok := bst.Search(v)
		logger.Debug().Int("value", v).Bool("found", ok).Msg("search")
		p.printf("search %d  : %s\n", v, foundText(ok))
	}

	if minV, ok := bst.FindMin(); ok {
		p.printf("min        : %d\n", minV)
	} else {
		p.printf("min        : %s\n", "-")
	}

	if maxV, ok := bst.FindMax(); ok {
		p.printf("max        : %d\n", maxV)
	} else {
		p.printf("max        : %s\n", "-")
	}

	// in-order successor of the root
	if root := bst.Root(); root != nil {
		if v, ok := root.Right().Min(); ok {
			p.printf("successor  : %d\n", v)
		}
	}

	p.printf("height     : %d\n", bst.Height())

	diagram, err := render.Tree(bst.Root())
	if err != nil {
		return err
	}
	p.print(diagram)

	return p.err
}

// ┌───────┐
// │ GRAPH │
// └───────┘
func runGraphDemo(w io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	p := &printer{w: w}
	p.print(render.Section("Graph"))

	g := graph.NewGraph[int]()
	for _, v := range cfg.Graph.Nodes {
		g.AddNode(v)
		logger.Debug().Int("node", v).Msg("add node")
	}

	for _, e := range cfg.Graph.Edges {
		g.AddEdge(e.From, e.To)
		logger.Debug().Int("from", e.From).Int("to", e.To).Msg("add edge")
	}

	table, err := render.Graph(g)
	if err != nil {
		return err
	}
	p.print(table)

	if len(cfg.Graph.Remove) == 0 {
		return p.err
	}

	for _, v := range cfg.Graph.Remove {
		if !g.HasNode(v) {
			logger.Debug().Int("node", v).Msg("remove skipped, no such node")
		} else {
			logger.Debug().Int("node", v).Msg("remove node")
		}
		g.RemoveNode(v)
	}

	p.printf("after removing %s\n", render.Join(cfg.Graph.Remove))

	table, err = render.Graph(g)
	if err != nil {
		return err
	}
	p.print(table)

	return p.err
}

// ┌─────────────┐
// │ LINKED LIST │
// └─────────────┘
func runListDemo(w io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	p := &printer{w: w}
	p.print(render.Section("Linked List"))

	l := list.NewLinkedList[int]()
	for _, v := range cfg.List.First {
		l.AddFirst(v)
		logger.Debug().Int("value", v).Msg("add first")
	}

	for _, v := range cfg.List.Last {
		l.AddLast(v)
		logger.Debug().Int("value", v).Msg("add last")
	}

	p.printf("list         : %s\n", render.Sequence[int](l))

	for range ptr.FromPtr(cfg.List.RemoveFirst) {
		v, ok := l.RemoveFirst()
		if !ok {
			p.printf("remove first : %s\n", "empty")
			break
		}
		logger.Debug().Int("value", v).Msg("remove first")
		p.printf("remove first : %d\n", v)
	}

	for range ptr.FromPtr(cfg.List.RemoveLast) {
		v, ok := l.RemoveLast()
		if !ok {
			p.printf("remove last  : %s\n", "empty")
			break
		}
		logger.Debug().Int("value", v).Msg("remove last")
		p.printf("remove last  : %d\n", v)
	}

	p.printf("list         : %s\n", render.Sequence[int](l))
	for i := range l.Len() {
		v, _ := l.Get(i)
		p.printf("get(%d)       : %d\n", i, v)
	}
	p.printf("empty        : %t\n", l.IsEmpty())

	var drained []int
	for v, ok := l.RemoveFirst(); ok; v, ok = l.RemoveFirst() {
		drained = append(drained, v)
	}
	logger.Debug().Ints("values", drained).Msg("drain")

	p.printf("drain        : %s\n", render.Join(drained))
	p.printf("list         : %s\n", render.Sequence[int](l))

	return p.err
}

// ┌───────┐
// │ STACK │
// └───────┘
func runStackDemo(w io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	p := &printer{w: w}
	p.print(render.Section("Stack"))

	s := stack.NewStack[int]()
	for _, v := range cfg.Stack.Values {
		s.Push(v)
		logger.Debug().Int("value", v).Msg("push")
	}

	p.printf("stack : %s\n", render.Sequence[int](s))

	for range ptr.FromPtr(cfg.Stack.Pop) {
		v, ok := s.Pop()
		if !ok {
			p.printf("pop   : %s\n", "empty")
			break
		}
		logger.Debug().Int("value", v).Msg("pop")
		p.printf("pop   : %d\n", v)
	}

	if v, ok := s.Peek(); ok {
		p.printf("peek  : %d\n", v)
	} else {
		p.printf("peek  : %s\n", "empty")
	}

	p.printf("stack : %s\n", render.Sequence[int](s))
	p.printf("empty : %t\n", s.IsEmpty())
	p.printf("size  : %d\n", s.Len())

	s.Clear()
	logger.Debug().Msg("clear")
	p.printf("clear : %s\n", render.Sequence[int](s))

	return p.err
}

// ┌───────┐
// │ QUEUE │
// └───────┘
func runQueueDemo(w io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	p := &printer{w: w}
	p.print(render.Section("Queue"))

	q := queue.NewQueue[int]()
	for _, v := range cfg.Queue.Values {
		q.Enqueue(v)
		logger.Debug().Int("value", v).Msg("enqueue")
	}

	p.printf("queue   : %s\n", render.Sequence[int](q))

	for range ptr.FromPtr(cfg.Queue.Dequeue) {
		v, ok := q.Dequeue()
		if !ok {
			p.printf("dequeue : %s\n", "empty")
			break
		}
		logger.Debug().Int("value", v).Msg("dequeue")
		p.printf("dequeue : %d\n", v)
	}

	if v, ok := q.Peek(); ok {
		p.printf("peek    : %d\n", v)
	} else {
		p.printf("peek    : %s\n", "empty")
	}

	p.printf("queue   : %s\n", render.Sequence[int](q))
	p.printf("empty   : %t\n", q.IsEmpty())
	p.printf("size    : %d\n", q.Len())

	q.Clear()
	logger.Debug().Msg("clear")
	p.printf("clear   : %s\n", render.Sequence[int](q))

	return p.err
}

// ┌───────┐
// │ ARRAY │
// └───────┘
func runArrayDemo(w io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	p := &printer{w: w}
	p.print(render.Section("Array"))

	a := array.NewArray[int]()
	for _, v := range cfg.Array.Values {
		a.Add(v)
		logger.Debug().Int("value", v).Msg("add")
	}

	p.printf("array  : %s\n", render.Sequence[int](a))

	if cfg.Array.GetIndex != nil {
		i := *cfg.Array.GetIndex
		if v, ok := a.Get(i); ok {
			p.printf("get    : [%d] %d\n", i, v)
		} else {
			p.printf("get    : [%d] %s\n", i, "out of range")
		}
	}

	if cfg.Array.IndexOf != nil {
		v := *cfg.Array.IndexOf
		p.printf("index  : %d at %d\n", v, a.IndexOf(v))
	}

	if cfg.Array.RemoveIndex != nil {
		i := *cfg.Array.RemoveIndex
		if v, ok := a.Remove(i); ok {
			logger.Debug().Int("index", i).Int("value", v).Msg("remove")
			p.printf("remove : [%d] %d\n", i, v)
		} else {
			logger.Debug().Int("index", i).Msg("remove skipped, index out of range")
			p.printf("remove : [%d] %s\n", i, "out of range")
		}
	}

	p.printf("array  : %s\n", render.Sequence[int](a))
	p.printf("empty  : %t\n", a.IsEmpty())
	p.printf("size   : %d\n", a.Len())

	a.Clear()
	logger.Debug().Msg("clear")
	p.printf("clear  : %s\n", render.Sequence[int](a))

	return p.err
}
