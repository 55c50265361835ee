package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/jakoblorz/go-fexplorer/internal/models"
	"github.com/jakoblorz/go-fexplorer/internal/tui"
)

const (
	tableTimeLayout = "2006-01-02 15:04"
	infoTimeLayout  = "2006-01-02 15:04:05"

	listingRule = 80
	infoRule    = 60
	menuRule    = 40
)

// RenderBanner renders the greeting shown once at start-up.
func RenderBanner() string {
	return tui.BannerStyle.Render("Welcome to File Explorer")
}

// RenderGoodbye renders the farewell line printed on exit.
func RenderGoodbye() string {
	return tui.SuccessStyle.Render("Thank you for using File Explorer!")
}

// RenderMenu renders the numbered main menu grouped in sections.
func RenderMenu() string {
	var b strings.Builder

	b.WriteString(tui.MenuTitleStyle.Render("FILE EXPLORER MENU"))
	b.WriteString("\n")
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(tui.SectionStyle.Render(s.title + ":"))
		b.WriteString("\n")
		for _, a := range s.actions {
			fmt.Fprintf(&b, "  %-4s%s\n", strconv.Itoa(int(a))+".", a.Label())
		}
	}
	b.WriteString(tui.SubtleStyle.Render(strings.Repeat("-", menuRule)))

	return b.String()
}

func renderHeader(title string, width int) string {
	return tui.HeaderStyle.Render(title) + "\n" + strings.Repeat("=", width)
}

// RenderListing renders the simple listing of dir: directories first,
// marked with [DIR], then files.
func RenderListing(dir string, entries []models.Entry) string {
	var b strings.Builder

	b.WriteString(renderHeader("Current Directory: "+dir, listingRule))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(tui.SubtleStyle.Render("(empty)"))
		b.WriteString("\n")
	}
	for _, e := range entries {
		if e.IsDir() {
			b.WriteString(tui.DirStyle.Render("[DIR]  " + e.Name))
		} else {
			b.WriteString("       " + styleName(e))
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("=", listingRule))

	return b.String()
}

// RenderDetailedListing renders dir as a table with permissions, owner,
// group, size and modification time.
func RenderDetailedListing(dir string, entries []models.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			models.FormatPermissions(e.Mode),
			e.Owner,
			e.Group,
			formatListingSize(e),
			e.ModTime.Format(tableTimeLayout),
			styleName(e),
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tui.SubtleStyle).
		Headers("Permissions", "Owner", "Group", "Size", "Modified", "Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.HeaderStyle.Padding(0, 1)
			}
			return cell
		})

	return renderHeader("Current Directory: "+dir, listingRule) + "\n" + t.Render()
}

func formatListingSize(e models.Entry) string {
	if e.IsDir() {
		return "<DIR>"
	}
	return humanize.IBytes(uint64(e.Size))
}

func styleName(e models.Entry) string {
	switch {
	case e.IsDir():
		return tui.DirStyle.Render(e.Name)
	case e.Kind == models.KindSymlink:
		return tui.SymlinkStyle.Render(e.Name)
	case e.IsExecutable():
		return tui.ExecStyle.Render(e.Name)
	default:
		return e.Name
	}
}

// RenderInfo renders the information card of one entry.
func RenderInfo(e *models.Entry) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(tui.LabelStyle.Render(label+":") + value + "\n")
	}

	b.WriteString(renderHeader("File Information: "+e.Name, infoRule))
	b.WriteString("\n")
	line("Type", e.Kind.String())
	line("Size", fmt.Sprintf("%s (%d bytes)", humanize.IBytes(uint64(e.Size)), e.Size))
	line("Permissions", fmt.Sprintf("%s (%s)", models.FormatPermissions(e.Mode), models.OctalPermissions(e.Mode)))
	line("Owner", e.Owner)
	line("Group", e.Group)
	if e.MIMEType != "" {
		line("MIME Type", e.MIMEType)
	}
	line("Modified", e.ModTime.Format(infoTimeLayout))
	line("Accessed", e.AccessTime.Format(infoTimeLayout))
	line("Changed", e.ChangeTime.Format(infoTimeLayout))
	b.WriteString(strings.Repeat("=", infoRule))

	return b.String()
}

// RenderSearchStart renders the line printed before a search begins.
func RenderSearchStart(pattern, root string) string {
	return tui.PromptStyle.Render(fmt.Sprintf("Searching for '%s' in %s...", pattern, root))
}

// RenderSearchResult renders the paths found by a search.
func RenderSearchResult(result *models.SearchResult) string {
	if result.IsEmpty() {
		return "No files found matching pattern."
	}

	var b strings.Builder
	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("Found %d result(s):", result.Len())))
	for _, p := range result.Paths {
		b.WriteString("\n  " + p)
	}
	return b.String()
}

// RenderSuccess renders the outcome line of a successful command.
func RenderSuccess(msg string) string {
	return tui.SuccessStyle.Render("✓ " + msg)
}

// RenderError renders the outcome line of a failed command.
func RenderError(err error) string {
	return tui.ErrorStyle.Render("✗ Error: " + err.Error())
}
