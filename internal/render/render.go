// Package render turns containers into printable text with pterm.
package render

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/stacks/arraystack"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/xvzc/containers/internal/datastruct"
	"github.com/xvzc/containers/internal/datastruct/graph"
	"github.com/xvzc/containers/internal/datastruct/tree"
	"golang.org/x/exp/constraints"
)

const emptyMark = "-"

type treeFrame[T constraints.Ordered] struct {
	node  *tree.Node[T]
	level int
	label string
}

// TreeLeveledList flattens the subtree at root in pre-order. Children are
// labelled "L" or "R" so that a lone child keeps its side.
func TreeLeveledList[T constraints.Ordered](root *tree.Node[T]) pterm.LeveledList {
	if root == nil {
		return pterm.LeveledList{}
	}

	var items pterm.LeveledList

	s := arraystack.New[treeFrame[T]]()
	s.Push(treeFrame[T]{node: root})
	for !s.Empty() {
		f, _ := s.Pop()
		items = append(items, pterm.LeveledListItem{
			Level: f.level,
			Text:  f.label + fmt.Sprint(f.node.Value()),
		})

		// right first so that left is printed first
		if r := f.node.Right(); r != nil {
			s.Push(treeFrame[T]{node: r, level: f.level + 1, label: "R: "})
		}
		if l := f.node.Left(); l != nil {
			s.Push(treeFrame[T]{node: l, level: f.level + 1, label: "L: "})
		}
	}

	return items
}

func Tree[T constraints.Ordered](root *tree.Node[T]) (string, error) {
	if root == nil {
		return emptyMark + "\n", nil
	}

	return pterm.DefaultTree.
		WithRoot(putils.TreeFromLeveledList(TreeLeveledList(root))).
		Srender()
}

// GraphTableData lists each vertex with its neighbors in insertion order.
func GraphTableData[T comparable](g *graph.Graph[T]) pterm.TableData {
	data := pterm.TableData{{"vertex", "neighbors"}}
	for v, ns := range g.All() {
		data = append(data, []string{fmt.Sprint(v), Join(ns)})
	}

	return data
}

func Graph[T comparable](g *graph.Graph[T]) (string, error) {
	if g.Len() == 0 {
		return emptyMark + "\n", nil
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(GraphTableData(g)).
		Srender()
}

// Join prints values separated by commas, or a dash when there are none.
func Join[T any](values []T) string {
	if len(values) == 0 {
		return emptyMark
	}

	ss := make([]string, 0, len(values))
	for _, v := range values {
		ss = append(ss, fmt.Sprint(v))
	}

	return strings.Join(ss, ", ")
}

func Sequence[T any](s datastruct.Sequence[T]) string {
	return fmt.Sprintf("%s (len %d)", Join(s.Values()), s.Len())
}

func Section(title string) string {
	return pterm.DefaultSection.Sprint(title)
}

// Banner renders the big title followed by a bullet list of run details.
func Banner(details []string) (string, error) {
	cyan := putils.LettersFromStringWithStyle("contain", pterm.NewStyle(pterm.FgCyan))
	purple := putils.LettersFromStringWithStyle("ers", pterm.NewStyle(pterm.FgLightMagenta))

	title, err := pterm.DefaultBigText.WithLetters(cyan, purple).Srender()
	if err != nil {
		return "", err
	}

	items := make([]pterm.BulletListItem, 0, len(details))
	for _, d := range details {
		items = append(items, pterm.BulletListItem{Level: 0, Text: d})
	}

	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return "", err
	}

	return title + "\n" + list, nil
}
