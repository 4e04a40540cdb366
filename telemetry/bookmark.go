package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPoolSaturated BookmarkType = "pool_saturated"
	BookmarkNearMiss      BookmarkType = "near_miss"
	BookmarkStalledLoop   BookmarkType = "stalled_loop"
	BookmarkSpeedDrop     BookmarkType = "speed_drop"
)

// nearMissClearance is the clearance above the contact floor that counts as
// scraping the ground or water.
const nearMissClearance = 0.05

// stalledWindows is the number of consecutive windows without a transition
// that marks the loop as stuck.
const stalledWindows = 3

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags windows worth a closer look.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	quietWindows int // consecutive windows without a transition
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if stats.SplashesDropped > 0 {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkPoolSaturated,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d splashes dropped by a full pool", stats.SplashesDropped),
		})
	}

	if stats.SpeedMean > 0 && stats.MinClearance < nearMissClearance {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkNearMiss,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Clearance fell to %.3f above the contact floor", stats.MinClearance),
		})
	}

	if b := bd.checkStalledLoop(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSpeedDrop(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkStalledLoop fires once when the loop goes quiet for several windows.
func (bd *BookmarkDetector) checkStalledLoop(stats WindowStats) *Bookmark {
	if stats.Transitions > 0 {
		bd.quietWindows = 0
		return nil
	}
	bd.quietWindows++
	if bd.quietWindows != stalledWindows {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkStalledLoop,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("No state transitions for %d windows", stalledWindows),
	}
}

// checkSpeedDrop fires when mean speed falls below half its rolling average.
func (bd *BookmarkDetector) checkSpeedDrop(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.SpeedMean
	}
	avg := total / float64(len(history))
	if avg <= 0 || stats.SpeedMean >= avg*0.5 {
		return nil
	}

	return &Bookmark{
		Type:        BookmarkSpeedDrop,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Mean speed %.1f is %.0f%% of average (%.1f)", stats.SpeedMean, stats.SpeedMean/avg*100, avg),
	}
}
