// Command export pre-renders the complete website into a directory of
// static files, one page per enumerated path plus the sitemap and
// robots.txt. The output can be served by any static host.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/catalog"
	"github.com/swissquality-storen/web/internal/content"
	"github.com/swissquality-storen/web/internal/handlers"
	"github.com/swissquality-storen/web/internal/platform/config"
	"github.com/swissquality-storen/web/internal/site"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "dist", "output directory")
	flag.Parse()

	cfg, err := config.LoadStatic()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	if err := run(cfg, logger, outDir); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger, outDir string) error {
	cat, err := catalog.Load(
		filepath.Join(cfg.Paths.DataDir, "services.json"),
		filepath.Join(cfg.Paths.DataDir, "locations.json"),
	)
	if err != nil {
		return err
	}

	siteCfg := site.Default
	if cfg.Site.BaseURL != "" {
		siteCfg.BaseURL = cfg.Site.BaseURL
	}

	renderer, err := handlers.NewRenderer(cfg.Paths.TemplatesDir, false)
	if err != nil {
		return err
	}

	server, err := handlers.NewServer(handlers.ServerDeps{
		Catalog:  cat,
		Content:  content.NewStore(cfg.Paths.ContentDir, time.Hour),
		Renderer: renderer,
		Site:     siteCfg,
		Company:  site.DefaultCompany,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	router := server.Routes()

	start := time.Now()
	paths := enumerate(cat)
	for _, p := range paths {
		if err := renderPath(router, outDir, p); err != nil {
			return err
		}
	}

	if err := copyAssets(cfg.Paths.PublicDir, outDir); err != nil {
		return err
	}

	logger.Info("export complete",
		zap.Int("pages", len(paths)),
		zap.String("out", outDir),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// enumerate lists every page path of the site: the static routes, one path
// per service, one per region, and the full service×location cross product.
func enumerate(cat *catalog.Catalog) []string {
	paths := []string{
		"/", "/angebote", "/regionen", "/showroom", "/ueber-uns", "/occasionen",
		"/kontakt", "/impressum", "/datenschutz", "/agb",
		"/sitemap.xml", "/robots.txt",
	}
	for _, slug := range cat.ServiceSlugs() {
		paths = append(paths, "/angebote/"+slug)
	}
	for _, slug := range cat.LocationSlugs() {
		paths = append(paths, "/regionen/"+slug)
	}
	for _, slug := range cat.CombinedSlugs() {
		paths = append(paths, "/"+slug)
	}
	return paths
}

func renderPath(router http.Handler, outDir, path string) error {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return fmt.Errorf("render %s: status %d", path, rec.Code)
	}

	target := targetFile(outDir, path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, rec.Body.Bytes(), 0o644)
}

// targetFile maps a URL path to its on-disk file: plain pages become
// directory indexes, file-like paths keep their name.
func targetFile(outDir, path string) string {
	if strings.Contains(filepath.Base(path), ".") {
		return filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(path, "/")))
	}
	if path == "/" {
		return filepath.Join(outDir, "index.html")
	}
	return filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(path, "/")), "index.html")
}

func copyAssets(publicDir, outDir string) error {
	if publicDir == "" {
		return nil
	}
	if _, err := os.Stat(publicDir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(publicDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := os.Create(target)
		if err != nil {
			return err
		}
		defer dst.Close()
		_, err = io.Copy(dst, src)
		return err
	})
}
