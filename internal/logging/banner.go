package logging

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 62

var logo = []string{
	`     ____       __    _ __        __   ____      __       __`,
	`    / __ \_____/ /_  (_) /_____ _/ /  /  _/___  / /____  / /`,
	`   / / / / ___/ __ \/ / __/ __ ` + "`" + `/ /   / // __ \/ __/ _ \/ / `,
	`  / /_/ / /  / /_/ / / /_/ /_/ / /  _/ // / / / /_/  __/ /  `,
	`  \____/_/  /_.___/_/\__/\__,_/_/  /___/_/ /_/\__/\___/_/   `,
}

var signature = []string{
	"01001111 01110010 01100010 01101001 01110100 01100001 01101100",
	"00100000 01001001 01101110 01110100 01100101 01101100 00000000",
}

// no colours: the same text goes to the console and the log file
var titleStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder(), true, false).
	Width(ruleWidth).
	Align(lipgloss.Center).
	Padding(1, 0)

// Banner renders the identification banner for a tool
func Banner(title string) string {
	var b strings.Builder
	for _, line := range logo {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Rule('#'))
	b.WriteString("\n")
	b.WriteString(strings.Join(signature, "\n"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Orbital Intel\n" + title))
	b.WriteString("\n")
	b.WriteString(strings.Join(signature, "\n"))
	b.WriteString("\n")
	b.WriteString(Rule('#'))
	return b.String()
}

// Rule returns a horizontal separator line
func Rule(ch rune) string {
	return strings.Repeat(string(ch), ruleWidth)
}

// Box frames the given lines between two '#' rules
func Box(lines ...string) string {
	short := strings.Repeat("#", 45)
	return short + "\n" + strings.Join(lines, "\n") + "\n" + short
}
