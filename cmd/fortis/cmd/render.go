package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-fortis/fortis/pkg/component"
	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
	"github.com/go-fortis/fortis/pkg/factory"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output string            // output file path
	Title  string            // document title
	Attrs  map[string]string // attributes set on the app's first component
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render [example]",
		Short: "Render an example app to HTML",
		Long: `Render a bundled example app as a complete HTML document.

Component boundaries are written as declarative shadow roots. Attributes
given with --attr are written to the app's first component after it is
built, as a script would, so the output shows the re-rendered state.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.Config.Example
			if len(args) == 1 {
				name = args[0]
			}
			return runRender(opts, name, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "document title (default from config or module path)")
	cmd.Flags().StringToStringVar(&opts.Attrs, "attr", nil, "attribute to set on the app's component (name=value)")

	return cmd
}

func runRender(opts *RenderOptions, name string, cmd *cobra.Command) (err error) {
	ex, err := lookupExample(name)
	if err != nil {
		return err
	}
	defer errors.RecoverWithCallback("cmd.render", func(r any) {
		err = fmt.Errorf("example %q failed to build: %v", name, r)
	})

	title := opts.Title
	if title == "" {
		title = opts.Config.Title
	}

	f := factory.New(nil)
	app := ex(f, title)
	if len(opts.Attrs) > 0 {
		host, ok := firstHost(app)
		if !ok {
			return fmt.Errorf("example %q has no component to set attributes on", name)
		}
		keys := make([]string, 0, len(opts.Attrs))
		for k := range opts.Attrs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			host.Element().SetAttribute(strings.ToLower(k), opts.Attrs[k])
		}
	}

	doc := f.Build("html", factory.Props{"lang": "en"},
		f.Build("head", nil,
			f.Build("meta", factory.Props{"charset": "utf-8"}),
			f.Build("title", nil, title),
		),
		f.Build("body", nil, app),
	)

	w := cmd.OutOrStdout()
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	if err := writeDocument(w, doc); err != nil {
		return err
	}
	slog.Debug("rendered example", "example", name, "title", title, "output", opts.Output, "components", f.Registry().Len())
	return nil
}

func writeDocument(w io.Writer, doc dom.Node) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := dom.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// firstHost returns the first component host in n's composed tree.
func firstHost(n dom.Node) (*component.Host, bool) {
	var found *component.Host
	dom.WalkComposed(n, func(cur dom.Node) bool {
		if found != nil {
			return false
		}
		if h, ok := component.HostOf(cur); ok {
			found = h
			return false
		}
		return true
	})
	return found, found != nil
}
