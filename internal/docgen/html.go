package docgen

import (
	"fmt"
	"html"
	"strings"

	"github.com/devtools-pro/backend/pkg/models"
)

const htmlStyle = `body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; max-width: 1200px; margin: 0 auto; padding: 20px; }
        h1 { color: #333; border-bottom: 3px solid #007bff; padding-bottom: 10px; }
        h2 { color: #555; margin-top: 30px; }
        h3 { color: #666; margin-top: 20px; }
        .endpoint { background: #f8f9fa; padding: 15px; margin: 10px 0; border-radius: 5px; border-left: 4px solid #007bff; }
        .method { display: inline-block; padding: 3px 8px; border-radius: 3px; font-weight: bold; margin-right: 10px; }
        .get { background: #28a745; color: white; }
        .post { background: #17a2b8; color: white; }
        .put { background: #ffc107; color: #333; }
        .delete { background: #dc3545; color: white; }
        .parameter { margin: 5px 0; }
        code { background: #e9ecef; padding: 2px 5px; border-radius: 3px; font-family: 'Courier New', monospace; }`

// HTML renders a standalone documentation page for the definition.
// User-supplied strings are escaped.
func HTML(def models.APIDefinition) string {
	description := def.Description
	if description == "" {
		description = "No description"
	}
	baseURL := def.BaseURL
	if baseURL == "" {
		baseURL = "/api/v1"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "    <title>%s - API Documentation</title>\n", html.EscapeString(def.Name))
	fmt.Fprintf(&b, "    <style>\n        %s\n    </style>\n", htmlStyle)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "    <h1>%s</h1>\n", html.EscapeString(def.Name))
	fmt.Fprintf(&b, "    <p>%s</p>\n", html.EscapeString(description))
	b.WriteString("    <h2>Endpoints</h2>\n")

	for _, ep := range def.Endpoints {
		method := strings.ToUpper(ep.Method)
		if method == "" {
			method = "GET"
		}
		path := ep.Path
		if path == "" {
			path = "/"
		}
		epDesc := ep.Description
		if epDesc == "" {
			epDesc = "No description"
		}

		b.WriteString("    <div class=\"endpoint\">\n")
		b.WriteString("        <h3>\n")
		fmt.Fprintf(&b, "            <span class=\"method %s\">%s</span>\n", strings.ToLower(method), method)
		fmt.Fprintf(&b, "            <code>%s%s</code>\n", html.EscapeString(baseURL), html.EscapeString(path))
		b.WriteString("        </h3>\n")
		fmt.Fprintf(&b, "        <p>%s</p>\n", html.EscapeString(epDesc))
		b.WriteString("        <h4>Parameters:</h4>\n")
		if len(ep.Parameters) == 0 {
			b.WriteString("        <p>No parameters</p>\n")
		} else {
			for _, param := range ep.Parameters {
				requirement := "Optional"
				if param.Required {
					requirement = "Required"
				}
				fmt.Fprintf(&b, "        <div class=\"parameter\">\n            <strong>%s</strong> (%s) - %s\n        </div>\n",
					html.EscapeString(param.Name), html.EscapeString(param.Type), requirement)
			}
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("</body>\n</html>")
	return b.String()
}
