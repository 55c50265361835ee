package menu

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-fexplorer/internal/models"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 30, 0, time.UTC)

func sampleEntries() []models.Entry {
	return []models.Entry{
		{Name: "docs", Path: "/srv/docs", Kind: models.KindDirectory, Size: 4096, Mode: fs.ModeDir | 0o755, Owner: "root", Group: "root", ModTime: fixedTime},
		{Name: "run.sh", Path: "/srv/run.sh", Kind: models.KindFile, Size: 312, Mode: 0o755, Owner: "alice", Group: "users", ModTime: fixedTime},
		{Name: "notes.txt", Path: "/srv/notes.txt", Kind: models.KindFile, Size: 1536, Mode: 0o644, Owner: "1001", Group: "1001", ModTime: fixedTime},
	}
}

func TestRenderMenu(t *testing.T) {
	menu := RenderMenu()

	require.Contains(t, menu, "  1.  List files (simple)")
	require.Contains(t, menu, "  10. Search files")
	require.Contains(t, menu, "  0.  Exit")
	snaps.MatchSnapshot(t, menu)
}

func TestRenderListing(t *testing.T) {
	snaps.MatchSnapshot(t, RenderListing("/srv", sampleEntries()))
	snaps.MatchSnapshot(t, RenderListing("/empty", nil))
}

func TestRenderDetailedListing(t *testing.T) {
	out := RenderDetailedListing("/srv", sampleEntries())

	require.Contains(t, out, "drwxr-xr-x")
	require.Contains(t, out, "<DIR>")
	require.Contains(t, out, "1.5 KiB")
	require.Contains(t, out, "2024-03-09 14:05")
	snaps.MatchSnapshot(t, out)
}

func TestRenderInfo(t *testing.T) {
	entry := &models.Entry{
		Name:       "notes.txt",
		Path:       "/srv/notes.txt",
		Kind:       models.KindFile,
		Size:       1536,
		Mode:       0o640,
		Owner:      "alice",
		Group:      "users",
		ModTime:    fixedTime,
		AccessTime: fixedTime.Add(time.Hour),
		ChangeTime: fixedTime.Add(2 * time.Hour),
		MIMEType:   "text/plain; charset=utf-8",
	}

	out := RenderInfo(entry)
	require.Contains(t, out, "-rw-r----- (640)")
	require.Contains(t, out, "1.5 KiB (1536 bytes)")
	require.Contains(t, out, "2024-03-09 16:05:30")
	snaps.MatchSnapshot(t, out)
}

func TestRenderSearchResult(t *testing.T) {
	empty := &models.SearchResult{Root: "/a", Pattern: "zzz", Paths: []string{}}
	require.Equal(t, "No files found matching pattern.", RenderSearchResult(empty))

	found := &models.SearchResult{Root: "/a", Pattern: "b", Paths: []string{"/a/b.txt", "/a/c/b_old.txt"}}
	snaps.MatchSnapshot(t, RenderSearchResult(found))
}

func TestRenderOutcome(t *testing.T) {
	require.Contains(t, RenderSuccess("File created: a"), "✓ File created: a")
	require.Contains(t, RenderError(errors.New("boom")), "✗ Error: boom")
}
