package handler

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

const indexFile = "index.html"

var contentTypes = map[string]string{
	".html": "text/html; charset=UTF-8",
	".htm":  "text/html; charset=UTF-8",
	".css":  "text/css",
	".js":   "application/javascript",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".ico":  "image/x-icon",
	".json": "application/json",
	".txt":  "text/plain",
}

var notFoundPage = template.Must(template.New("404").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>404 - Movie Tickets</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; min-height: 100vh;
               display: flex; align-items: center; justify-content: center;
               background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%); }
        .container { max-width: 600px; text-align: center; background: white; padding: 40px;
                     border-radius: 10px; box-shadow: 0 4px 15px rgba(0,0,0,0.1); }
        h1 { color: #e63946; font-size: 48px; margin-bottom: 20px; }
        p { color: #666; font-size: 18px; margin-bottom: 30px; }
        .details { background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;
                   font-family: monospace; font-size: 14px; color: #666; text-align: left; }
        .btn { display: inline-block; padding: 12px 24px; background: #e63946; color: white;
               text-decoration: none; border-radius: 5px; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>404</h1>
        <p>Oops! The page you're looking for doesn't exist.</p>
        <div class="details">{{.}}</div>
        <a class="btn" href="/">Go to Homepage</a>
    </div>
</body>
</html>
`))

// Static serves files below root for every non-API path.  "/" maps to
// index.html and extensionless paths get ".html".  Paths that leave root,
// directories and missing files get the HTML 404 page.
type Static struct {
	root string
	log  *slog.Logger
}

func NewStatic(root string, log *slog.Logger) (*Static, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Static{root: abs, log: log}, nil
}

func (s *Static) Serve(c echo.Context) error {
	reqPath := c.Request().URL.Path
	if strings.HasPrefix(reqPath, "/api/") {
		return echo.ErrNotFound
	}

	rel := strings.TrimPrefix(reqPath, "/")
	if rel == "" {
		rel = indexFile
	} else if path.Ext(rel) == "" && !strings.HasSuffix(rel, "/") {
		rel += ".html"
	}

	full, ok := s.resolve(rel)
	if !ok {
		return s.notFound(c, "Access denied")
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("stat static file", slog.String("path", full), slog.Any("err", err))
		}
		return s.notFound(c, "File not found: "+rel)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, contentType(rel), data)
}

// resolve joins rel onto the root and reports whether the result stays
// inside it.
func (s *Static) resolve(rel string) (string, bool) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}

func (s *Static) notFound(c echo.Context, detail string) error {
	var buf bytes.Buffer
	if err := notFoundPage.Execute(&buf, detail); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusNotFound, buf.Bytes())
}

func contentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return echo.MIMEOctetStream
}
