package viewer

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/sandevgo/nutshell/internal/export"
	"github.com/sandevgo/nutshell/pkg/log"
)

// Watch notifies the viewer whenever the posts file is rewritten. The
// directory is watched, not the file itself, so atomic
// write-temp-then-rename updates are seen too.
func Watch(ctx context.Context, path string) (<-chan tea.Msg, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	msgs := make(chan tea.Msg, 1)

	go func() {
		defer close(msgs)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				log.FromCtx(ctx).Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("posts file changed")
				select {
				case msgs <- reloadMsg{}:
				default: // a reload is already pending
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case msgs <- watchErrMsg{err: err}:
				default:
				}
			}
		}
	}()

	return msgs, func() { watcher.Close() }, nil
}

// Run loads the posts file and blocks inside the TUI until quit.
func Run(ctx context.Context, path string) error {
	posts, err := export.ReadPostsJSON(path)
	if err != nil {
		return err
	}

	msgs, stop, err := Watch(ctx, path)
	if err != nil {
		return err
	}
	defer stop()

	p := tea.NewProgram(New(path, posts, msgs), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
