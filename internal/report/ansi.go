package report

import "strings"

// ANSI escape codes used in the terminal report.
const (
	ansiGreen  = "\033[92m"
	ansiRed    = "\033[91m"
	ansiYellow = "\033[93m"
	ansiReset  = "\033[0m"
)

var ansiReplacer = strings.NewReplacer(
	ansiGreen, `<span style="color: #00ff00;">`,
	ansiRed, `<span style="color: #ff0000;">`,
	ansiYellow, `<span style="color: #ffff00;">`,
	ansiReset, `</span>`,
)

// convertANSI rewrites ANSI color codes as HTML spans so the terminal report
// renders the same in a browser.
func convertANSI(text string) string {
	return ansiReplacer.Replace(text)
}
