package ui

import (
	"strings"

	"github.com/jshelley/ccsm/internal/format"
)

// bannerLines is a figlet-style rendering of "CLAUDE CODE SESSION MANAGER".
var bannerLines = []string{
	"  ___ _      _  _   _ ___  ___    ___ ___  ___  ___   ___ ___ ___ ___ ___ ___  _  _   __  __   _   _  _   _   ___ ___ ___ ",
	" / __| |    /_\\| | | |   \\| __|  / __/ _ \\|   \\| __| / __| __/ __/ __|_ _/ _ \\| \\| | |  \\/  | /_\\ | \\| | /_\\ / __| __| _ \\",
	"| (__| |__ / _ \\ |_| | |) | _|  | (_| (_) | |) | _|  \\__ \\ _|\\__ \\__ \\| | (_) | .` | | |\\/| |/ _ \\| .` |/ _ \\ (_ | _||   /",
	" \\___|____/_/ \\_\\___/|___/|___|  \\___\\___/|___/|___| |___/___|___/___/___\\___/|_|\\_| |_|  |_/_/ \\_\\_|\\_/_/ \\_\\___|___|_|_\\",
}

// BannerHeight is the number of rows the banner occupies, including the
// blank line beneath it.
var BannerHeight = len(bannerLines) + 1

// ShowBanner reports whether the banner fits without crowding out the panes.
func ShowBanner(height int) bool {
	return height > BannerHeight+5
}

// RenderBanner renders the banner truncated to width, with a trailing blank
// line separating it from the list header.
func RenderBanner(width int) string {
	var b strings.Builder
	for _, line := range bannerLines {
		b.WriteString(BannerStyle.Render(format.Truncate(line, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
