package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sectionWidth = 60

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, titleStyle.Render("    ╔══════════════════════════════════════╗"))
	fmt.Fprintln(w, titleStyle.Render("    ║  Chat Room  ")+highlightStyle.Render(padRight(version, 25))+titleStyle.Render("║"))
	fmt.Fprintln(w, titleStyle.Render("    ╚══════════════════════════════════════╝"))
	fmt.Fprintln(w, dimStyle.Render("    Terminal chat room shell"))
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := sectionWidth - lipgloss.Width(headerContent)
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	fmt.Fprintln(w, sectionStyle.Render("┌"+headerContent+strings.Repeat("─", remainingWidth)+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, sectionStyle.Render("└"+strings.Repeat("─", sectionWidth)+"┘"))
}

// PrintSection writes body lines between a section header and footer
func PrintSection(w io.Writer, title, body string) {
	PrintSectionHeader(w, title)
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
	PrintSectionFooter(w)
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
