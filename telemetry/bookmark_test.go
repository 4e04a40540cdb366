package telemetry

import (
	"testing"
)

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_PoolSaturated(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bookmarks := bd.Check(WindowStats{WindowEndTick: 600, Transitions: 2, SpeedMean: 30, MinClearance: 3, SplashesDropped: 2})
	if !hasBookmark(bookmarks, BookmarkPoolSaturated) {
		t.Error("expected pool_saturated bookmark")
	}

	bookmarks = bd.Check(WindowStats{WindowEndTick: 1200, Transitions: 2, SpeedMean: 30, MinClearance: 3})
	if hasBookmark(bookmarks, BookmarkPoolSaturated) {
		t.Error("unexpected pool_saturated bookmark without drops")
	}
}

func TestBookmarkDetector_NearMiss(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bookmarks := bd.Check(WindowStats{WindowEndTick: 600, Transitions: 1, SpeedMean: 25, MinClearance: 0})
	if !hasBookmark(bookmarks, BookmarkNearMiss) {
		t.Error("expected near_miss bookmark")
	}
}

func TestBookmarkDetector_StalledLoop(t *testing.T) {
	bd := NewBookmarkDetector(10)

	fired := 0
	for i := 0; i < 6; i++ {
		bookmarks := bd.Check(WindowStats{WindowEndTick: int32(i * 600), SpeedMean: 30, MinClearance: 2})
		if hasBookmark(bookmarks, BookmarkStalledLoop) {
			fired++
			if i != stalledWindows-1 {
				t.Errorf("stalled_loop fired at window %d, want %d", i, stalledWindows-1)
			}
		}
	}
	if fired != 1 {
		t.Errorf("stalled_loop fired %d times, want once", fired)
	}
}

func TestBookmarkDetector_SpeedDrop(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Transitions: 3, SpeedMean: 30, MinClearance: 2})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Transitions: 3, SpeedMean: 10, MinClearance: 2})
	if !hasBookmark(bookmarks, BookmarkSpeedDrop) {
		t.Error("expected speed_drop bookmark")
	}
}
