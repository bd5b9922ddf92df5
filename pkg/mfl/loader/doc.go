// Package loader loads MFL flow definition files from disk and watches them
// for changes.
//
// Load handles a single file or a directory of .yaml/.yml files and reports
// a per-file Result, so one broken definition does not hide the others.
//
// Watcher layers fsnotify on top of Load with debouncing: editors typically
// write a file several times in quick succession, and the debouncer folds
// each burst into a single reload.
//
//	w, err := loader.NewWatcher(&loader.WatcherConfig{Path: "flows/"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go w.Watch(ctx, func(results []loader.Result) {
//	    for _, r := range results {
//	        if r.Err != nil {
//	            slog.Error("definition broken", "path", r.Path, "error", r.Err)
//	        }
//	    }
//	})
package loader
