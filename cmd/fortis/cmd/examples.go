package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-fortis/fortis/examples/counter"
	"github.com/go-fortis/fortis/examples/todo"
	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/factory"
)

// example builds one bundled app with f.
type example func(f *factory.Factory, title string) dom.Node

var examples = map[string]example{
	"todo": func(f *factory.Factory, title string) dom.Node {
		return todo.App(f, "light", title)
	},
	"counter": func(f *factory.Factory, _ string) dom.Node {
		return counter.App(f, 0, 1)
	},
}

func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupExample(name string) (example, error) {
	ex, ok := examples[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown example %q: must be one of %v", name, exampleNames())
	}
	return ex, nil
}
