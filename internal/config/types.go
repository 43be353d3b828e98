package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/containers/internal/ptr"
)

type cloner[T any] interface {
	Clone() T
}

type merger[T any] interface {
	cloner[T]
	Merge(overrides T) T
}

// ┌─────────────────┐
// │ GENERAL OPTIONS │
// └─────────────────┘
var _ merger[*GeneralOptions] = (*GeneralOptions)(nil)

type DemoKind int

const (
	DemoTree DemoKind = iota
	DemoGraph
	DemoList
	DemoStack
	DemoQueue
	DemoArray
)

var availableDemos = []string{"tree", "graph", "list", "stack", "queue", "array"}

func (k DemoKind) String() string {
	return availableDemos[k]
}

type GeneralOptions struct {
	LogLevel *zerolog.Level `toml:"log-level"`
	Silent   *bool          `toml:"silent"`
	Demos    []DemoKind     `toml:"demos"`
}

func (o *GeneralOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type general config")
	}

	o.Silent = findFrom(m, "silent", parseBoolFn(), &err)
	o.Demos = findSliceFrom(m, "demos", parseDemoFn(), &err)
	if p := findFrom(m, "log-level", parseStringFn(checkLogLevel), &err); isOk(p, err) {
		o.LogLevel = ptr.FromValue(MustParseLogLevel(*p))
	}

	return err
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}

	return &GeneralOptions{
		LogLevel: ptr.Clone(o.LogLevel),
		Silent:   ptr.Clone(o.Silent),
		Demos:    ptr.CloneSlice(o.Demos),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GeneralOptions{
		LogLevel: ptr.CloneOr(overrides.LogLevel, origin.LogLevel),
		Silent:   ptr.CloneOr(overrides.Silent, origin.Silent),
		Demos:    ptr.CloneSliceOr(overrides.Demos, origin.Demos),
	}
}

// ┌──────────────┐
// │ TREE OPTIONS │
// └──────────────┘
var _ merger[*TreeOptions] = (*TreeOptions)(nil)

type TreeOptions struct {
	Values []int `toml:"values"`
	Search []int `toml:"search"`
}

func (o *TreeOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type tree config")
	}

	o.Values = findSliceFrom(m, "values", parseIntFn[int](checkValue), &err)
	o.Search = findSliceFrom(m, "search", parseIntFn[int](checkValue), &err)

	return err
}

func (o *TreeOptions) Clone() *TreeOptions {
	if o == nil {
		return nil
	}

	return &TreeOptions{
		Values: ptr.CloneSlice(o.Values),
		Search: ptr.CloneSlice(o.Search),
	}
}

func (origin *TreeOptions) Merge(overrides *TreeOptions) *TreeOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &TreeOptions{
		Values: ptr.CloneSliceOr(overrides.Values, origin.Values),
		Search: ptr.CloneSliceOr(overrides.Search, origin.Search),
	}
}

// ┌───────────────┐
// │ GRAPH OPTIONS │
// └───────────────┘
var _ merger[*GraphOptions] = (*GraphOptions)(nil)

// Edge is an undirected edge between two vertices.
type Edge struct {
	From int
	To   int
}

type GraphOptions struct {
	Nodes  []int  `toml:"nodes"`
	Edges  []Edge `toml:"edges"`
	Remove []int  `toml:"remove"`
}

func (o *GraphOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type graph config")
	}

	o.Nodes = findSliceFrom(m, "nodes", parseIntFn[int](checkValue), &err)
	o.Edges = findSliceFrom(m, "edges", parseEdgeFn(), &err)
	o.Remove = findSliceFrom(m, "remove", parseIntFn[int](checkValue), &err)

	return err
}

func (o *GraphOptions) Clone() *GraphOptions {
	if o == nil {
		return nil
	}

	return &GraphOptions{
		Nodes:  ptr.CloneSlice(o.Nodes),
		Edges:  ptr.CloneSlice(o.Edges),
		Remove: ptr.CloneSlice(o.Remove),
	}
}

func (origin *GraphOptions) Merge(overrides *GraphOptions) *GraphOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GraphOptions{
		Nodes:  ptr.CloneSliceOr(overrides.Nodes, origin.Nodes),
		Edges:  ptr.CloneSliceOr(overrides.Edges, origin.Edges),
		Remove: ptr.CloneSliceOr(overrides.Remove, origin.Remove),
	}
}

// ┌──────────────┐
// │ LIST OPTIONS │
// └──────────────┘
var _ merger[*ListOptions] = (*ListOptions)(nil)

type ListOptions struct {
	First       []int  `toml:"first"`
	Last        []int  `toml:"last"`
	RemoveFirst *uint8 `toml:"remove-first"`
	RemoveLast  *uint8 `toml:"remove-last"`
}

func (o *ListOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type list config")
	}

	o.First = findSliceFrom(m, "first", parseIntFn[int](checkValue), &err)
	o.Last = findSliceFrom(m, "last", parseIntFn[int](checkValue), &err)
	o.RemoveFirst = findFrom(m, "remove-first", parseIntFn[uint8](checkUint8), &err)
	o.RemoveLast = findFrom(m, "remove-last", parseIntFn[uint8](checkUint8), &err)

	return err
}

func (o *ListOptions) Clone() *ListOptions {
	if o == nil {
		return nil
	}

	return &ListOptions{
		First:       ptr.CloneSlice(o.First),
		Last:        ptr.CloneSlice(o.Last),
		RemoveFirst: ptr.Clone(o.RemoveFirst),
		RemoveLast:  ptr.Clone(o.RemoveLast),
	}
}

func (origin *ListOptions) Merge(overrides *ListOptions) *ListOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &ListOptions{
		First:       ptr.CloneSliceOr(overrides.First, origin.First),
		Last:        ptr.CloneSliceOr(overrides.Last, origin.Last),
		RemoveFirst: ptr.CloneOr(overrides.RemoveFirst, origin.RemoveFirst),
		RemoveLast:  ptr.CloneOr(overrides.RemoveLast, origin.RemoveLast),
	}
}

// ┌───────────────┐
// │ STACK OPTIONS │
// └───────────────┘
var _ merger[*StackOptions] = (*StackOptions)(nil)

type StackOptions struct {
	Values []int  `toml:"values"`
	Pop    *uint8 `toml:"pop"`
}

func (o *StackOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type stack config")
	}

	o.Values = findSliceFrom(m, "values", parseIntFn[int](checkValue), &err)
	o.Pop = findFrom(m, "pop", parseIntFn[uint8](checkUint8), &err)

	return err
}

func (o *StackOptions) Clone() *StackOptions {
	if o == nil {
		return nil
	}

	return &StackOptions{
		Values: ptr.CloneSlice(o.Values),
		Pop:    ptr.Clone(o.Pop),
	}
}

func (origin *StackOptions) Merge(overrides *StackOptions) *StackOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &StackOptions{
		Values: ptr.CloneSliceOr(overrides.Values, origin.Values),
		Pop:    ptr.CloneOr(overrides.Pop, origin.Pop),
	}
}

// ┌───────────────┐
// │ QUEUE OPTIONS │
// └───────────────┘
var _ merger[*QueueOptions] = (*QueueOptions)(nil)

type QueueOptions struct {
	Values  []int  `toml:"values"`
	Dequeue *uint8 `toml:"dequeue"`
}

func (o *QueueOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type queue config")
	}

	o.Values = findSliceFrom(m, "values", parseIntFn[int](checkValue), &err)
	o.Dequeue = findFrom(m, "dequeue", parseIntFn[uint8](checkUint8), &err)

	return err
}

func (o *QueueOptions) Clone() *QueueOptions {
	if o == nil {
		return nil
	}

	return &QueueOptions{
		Values:  ptr.CloneSlice(o.Values),
		Dequeue: ptr.Clone(o.Dequeue),
	}
}

func (origin *QueueOptions) Merge(overrides *QueueOptions) *QueueOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &QueueOptions{
		Values:  ptr.CloneSliceOr(overrides.Values, origin.Values),
		Dequeue: ptr.CloneOr(overrides.Dequeue, origin.Dequeue),
	}
}

// ┌───────────────┐
// │ ARRAY OPTIONS │
// └───────────────┘
var _ merger[*ArrayOptions] = (*ArrayOptions)(nil)

type ArrayOptions struct {
	Values      []int `toml:"values"`
	GetIndex    *int  `toml:"get-index"`
	IndexOf     *int  `toml:"index-of"`
	RemoveIndex *int  `toml:"remove-index"`
}

func (o *ArrayOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type array config")
	}

	o.Values = findSliceFrom(m, "values", parseIntFn[int](checkValue), &err)
	o.GetIndex = findFrom(m, "get-index", parseIntFn[int](checkNonNegative), &err)
	o.IndexOf = findFrom(m, "index-of", parseIntFn[int](checkValue), &err)
	o.RemoveIndex = findFrom(m, "remove-index", parseIntFn[int](checkNonNegative), &err)

	return err
}

func (o *ArrayOptions) Clone() *ArrayOptions {
	if o == nil {
		return nil
	}

	return &ArrayOptions{
		Values:      ptr.CloneSlice(o.Values),
		GetIndex:    ptr.Clone(o.GetIndex),
		IndexOf:     ptr.Clone(o.IndexOf),
		RemoveIndex: ptr.Clone(o.RemoveIndex),
	}
}

func (origin *ArrayOptions) Merge(overrides *ArrayOptions) *ArrayOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &ArrayOptions{
		Values:      ptr.CloneSliceOr(overrides.Values, origin.Values),
		GetIndex:    ptr.CloneOr(overrides.GetIndex, origin.GetIndex),
		IndexOf:     ptr.CloneOr(overrides.IndexOf, origin.IndexOf),
		RemoveIndex: ptr.CloneOr(overrides.RemoveIndex, origin.RemoveIndex),
	}
}
