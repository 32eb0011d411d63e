// Package topics provides topic-based documentation for Cobra CLI
// applications. Topics are markdown or text files read from an fs.FS,
// typically an embedded directory, and shown by a "docs" command.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager manages documentation topics
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic represents a documentation topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager over fsys and scans it for topics
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	if err := tm.scanTopics(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

func (tm *TopicManager) scanTopics() error {
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name; "--name" finds "name" too
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	topic, exists := tm.topics[name]
	return topic, exists
}

// ListTopics returns every topic name, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the topic formatted by the manager's renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

// NewCommand builds a "docs [topic]" command listing or showing topics.
// renderer, when non-nil, replaces the manager's renderer at run time.
func (tm *TopicManager) NewCommand(renderer func(cmd *cobra.Command) Renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: "Display documentation topics",
		Long:  "Docs lists the available documentation topics, or shows one of them.",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				names := tm.ListTopics()
				if len(names) == 0 {
					_, _ = fmt.Fprintln(out, "No documentation topics available.")
					return nil
				}
				_, _ = fmt.Fprintln(out, "Available topics:")
				for _, name := range names {
					_, _ = fmt.Fprintf(out, "  %s\n", name)
				}
				_, _ = fmt.Fprintf(out, "\nUse '%s docs <topic>' to read about a specific topic.\n", cmd.Root().Name())
				return nil
			}

			topic, exists := tm.GetTopic(args[0])
			if !exists {
				return fmt.Errorf("unknown topic %q (available: %s)", args[0], strings.Join(tm.ListTopics(), ", "))
			}

			r := tm.renderer
			if renderer != nil {
				if override := renderer(cmd); override != nil {
					r = override
				}
			}
			_, _ = fmt.Fprint(out, r.Render(topic.Content, path.Ext(topic.FilePath)))
			return nil
		},
	}
}

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and its file extension
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
