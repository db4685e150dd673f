package report

import (
	"html"
	"html/template"
	"strings"
)

// page is the data passed to the HTML template. Body is pre-escaped report
// text with ANSI codes already rewritten as spans.
type page struct {
	Title string
	Body  template.HTML
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - sleeper-log Report</title>
    <style>
        body {
            font-family: 'Monaco', 'Menlo', 'Ubuntu Mono', 'Consolas', 'Courier New', monospace;
            background-color: #0d1117;
            color: #c9d1d9;
            margin: 20px;
            padding: 20px;
            line-height: 1.2;
            font-size: 13px;
        }

        pre {
            white-space: pre;
            margin: 0;
            padding: 0;
            overflow-x: auto;
        }

        .terminal {
            background-color: #161b22;
            border: 1px solid #30363d;
            border-radius: 8px;
            padding: 20px;
            box-shadow: 0 4px 12px rgba(0, 0, 0, 0.3);
        }

        .blocks {
            letter-spacing: -0.1em;
        }

        @media (max-width: 768px) {
            body {
                margin: 10px;
                padding: 10px;
                font-size: 11px;
            }
        }
    </style>
</head>
<body>
    <div class="terminal">
        <pre class="blocks">{{.Body}}</pre>
    </div>
</body>
</html>
`))

// BuildHTML wraps an already-rendered text report in the terminal-themed HTML
// page. The text is escaped before the ANSI codes are converted, so league
// and team names cannot inject markup.
func BuildHTML(title, textReport string) (string, error) {
	if title == "" {
		title = "Fantasy League"
	}

	body := convertANSI(html.EscapeString(textReport))

	var b strings.Builder
	err := pageTemplate.Execute(&b, page{
		Title: title,
		Body:  template.HTML(body),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
