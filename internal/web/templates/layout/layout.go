package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string
	Message string
}

// PageData carries what every page needs
type PageData struct {
	Title    string
	Language string
	Flash    *FlashMessage
}

// Base wraps page content in the common document shell
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang=%q>
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s - Olímpicos</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"></script>
<link rel="stylesheet" href="/static/app.css"/>
</head>
<body>
<header class="site-header"><a href="/">🏛️ Olímpicos</a></header>
<main class="container">`, htmlLang(data.Language), templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if data.Flash != nil {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s" role="alert">%s</div>`,
				templ.EscapeString(data.Flash.Type), templ.EscapeString(data.Flash.Message)); err != nil {
				return err
			}
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main>
</body>
</html>`)
		return err
	})
}

func htmlLang(language string) string {
	if language == "en" {
		return "en"
	}
	return "pt-BR"
}
