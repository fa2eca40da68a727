package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/casskell/outline_viewer/pkg/analysis"
	"github.com/casskell/outline_viewer/pkg/config"
	"github.com/casskell/outline_viewer/pkg/export"
	"github.com/casskell/outline_viewer/pkg/loader"
	"github.com/casskell/outline_viewer/pkg/model"
	"github.com/casskell/outline_viewer/pkg/notes"
	"github.com/casskell/outline_viewer/pkg/outline"
	"github.com/casskell/outline_viewer/pkg/ui"
	"github.com/casskell/outline_viewer/pkg/updater"
	"github.com/casskell/outline_viewer/pkg/watcher"
)

const version = "0.1.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	path := flag.String("path", "", "Course repository path (default: current directory)")
	robot := flag.Bool("robot", false, "Print the outline as plain text and exit")
	exportID := flag.String("export", "", "Write a snapshot for the given item ID and exit")
	stats := flag.Bool("stats", false, "Print outline health statistics and exit")
	preview := flag.Bool("preview", false, "Serve the snapshot directory over HTTP and exit on interrupt")
	checkUpdate := flag.Bool("check-update", false, "Check for a newer release and exit")
	flag.Parse()

	if *help {
		fmt.Println("Usage: ov [options]")
		fmt.Println("\nA TUI viewer for course content outlines.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Println("ov version " + version)
		os.Exit(0)
	}

	if *checkUpdate {
		tag, url, err := updater.NewChecker().Check("v" + version)
		if err != nil {
			fmt.Printf("Update check failed: %v\n", err)
			os.Exit(1)
		}
		if tag == "" {
			fmt.Println("ov is up to date.")
		} else {
			fmt.Printf("New release %s available: %s\n", tag, url)
		}
		os.Exit(0)
	}

	repoPath := *path
	if repoPath == "" {
		var err error
		repoPath, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error resolving working directory: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(repoPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	outlinePath := resolveUnder(repoPath, cfg.OutlinePath)

	items, err := loadOutline(repoPath, cfg)
	if err != nil {
		fmt.Printf("Error loading outline: %v\n", err)
		fmt.Println("Make sure the repository has a .studio/outline.jsonl file.")
		os.Exit(1)
	}
	if len(items) == 0 {
		fmt.Println("No outline items found.")
		os.Exit(0)
	}

	if *stats {
		fmt.Print(analysis.Analyze(items).Report())
		os.Exit(0)
	}

	snapshotDir := filepath.Join(repoPath, ".studio", "snapshots")

	if *exportID != "" {
		if err := exportItem(items, *exportID, snapshotDir); err != nil {
			fmt.Printf("Error exporting %s: %v\n", *exportID, err)
			os.Exit(1)
		}
		if !*preview {
			os.Exit(0)
		}
	}

	if *preview {
		if err := export.StartPreview(snapshotDir); err != nil {
			fmt.Printf("Error running preview server: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *robot || !term.IsTerminal(int(os.Stdout.Fd())) {
		printPlainOutline(items)
		os.Exit(0)
	}

	noteDB, err := notes.OpenDB(resolveUnder(repoPath, cfg.NotesDBPath))
	if err != nil {
		fmt.Printf("Warning: notes disabled: %v\n", err)
		noteDB = nil
	}
	if noteDB != nil {
		defer noteDB.Close()
	}

	m := ui.NewModel(items, noteDB, snapshotDir)
	p := tea.NewProgram(m, tea.WithAltScreen())

	w, err := watcher.Watch(outlinePath, cfg.Debounce(), func() {
		reloaded, err := loadOutline(repoPath, cfg)
		if err != nil {
			return
		}
		p.Send(ui.ItemsReloadedMsg{Items: reloaded})
	})
	if err != nil {
		fmt.Printf("Warning: live reload disabled: %v\n", err)
	} else {
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running outline viewer: %v\n", err)
		os.Exit(1)
	}
}

// resolveUnder joins a config-relative path onto the repository root.
func resolveUnder(repoPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(repoPath, p)
}

// loadOutline reads the outline and materializes ancestor chains. The
// conventional .studio layout goes through loader.LoadItems; an
// explicitly configured outline path is read directly.
func loadOutline(repoPath string, cfg config.Config) ([]model.Item, error) {
	var (
		items []model.Item
		err   error
	)
	if cfg.OutlinePath == config.Default().OutlinePath {
		items, err = loader.LoadItems(repoPath)
	} else {
		items, err = loader.LoadItemsFromFile(resolveUnder(repoPath, cfg.OutlinePath))
	}
	if err != nil {
		return nil, err
	}
	return loader.BuildAncestorInfo(items), nil
}

// exportItem writes a chain snapshot for one item.
func exportItem(items []model.Item, id, dir string) error {
	tree, err := loader.LoadOutlineTree(id, items)
	if err != nil {
		return err
	}
	target := outline.NewNode(*tree.Root, nil, plainTemplate{})
	if err := target.Render(); err != nil {
		return err
	}
	chain, err := outline.RenderAncestors(target)
	if err != nil {
		return err
	}
	return export.Snapshot(dir, chain)
}

// plainTemplate renders unstyled rows for robot and export output.
type plainTemplate struct{}

func (plainTemplate) RenderItem(it model.Item, depth int) (string, error) {
	name := it.DisplayName
	if name == "" {
		name = it.ID
	}
	return fmt.Sprintf("%s %s [%s]", name, badge(it), it.ID), nil
}

func badge(it model.Item) string {
	if it.VisibilityState == "" {
		return "(" + string(it.Category) + ")"
	}
	return fmt.Sprintf("(%s, %s)", it.Category, it.VisibilityState)
}

// printPlainOutline prints the whole content tree as indented text,
// roots first, children nested beneath their parents.
func printPlainOutline(items []model.Item) {
	for _, rootID := range loader.Roots(items) {
		tree, err := loader.LoadOutlineTree(rootID, items)
		if err != nil {
			continue
		}
		tree.Walk(func(it *model.Item, depth int) {
			row, _ := plainTemplate{}.RenderItem(*it, depth)
			fmt.Println(strings.Repeat("  ", depth) + row)
		})
	}
}
