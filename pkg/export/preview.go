package export

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

// DefaultPreviewPort is the first port tried for the preview server.
const DefaultPreviewPort = 9000

// PreviewPortRangeEnd bounds the port scan when the default is taken.
const PreviewPortRangeEnd = 9100

// PreviewServer serves a snapshot directory locally so exported SVG and
// JSON renderings can be inspected in a browser.
type PreviewServer struct {
	dir    string
	port   int
	server *http.Server
}

// NewPreviewServer creates a preview server for the given snapshot directory.
func NewPreviewServer(dir string, port int) *PreviewServer {
	return &PreviewServer{dir: dir, port: port}
}

// URL returns the address the server listens on.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

// Start serves the snapshot directory until the process is interrupted.
func (p *PreviewServer) Start() error {
	if _, err := os.Stat(p.dir); os.IsNotExist(err) {
		return fmt.Errorf("snapshot directory does not exist: %s", p.dir)
	}

	mux := http.NewServeMux()
	mux.Handle("/", noCacheMiddleware(http.FileServer(http.Dir(p.dir))))
	mux.HandleFunc("/__preview__/status", p.statusHandler)

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", p.port),
		Handler: mux,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	fmt.Printf("Snapshot preview running at %s\n", p.URL())
	fmt.Printf("Serving: %s\n", p.dir)
	fmt.Println("Press Ctrl+C to stop")

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return p.server.Shutdown(ctx)
	case err := <-errChan:
		return err
	}
}

// Stop gracefully stops the preview server.
func (p *PreviewServer) Stop() error {
	if p.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

// statusHandler reports the server state and snapshot count as JSON.
func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	var fileCount int
	filepath.Walk(p.dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			fileCount++
		}
		return nil
	})

	fmt.Fprintf(w, `{"status":"running","port":%d,"dir":%q,"file_count":%d}`,
		p.port, p.dir, fileCount)
}

// noCacheMiddleware keeps browsers from caching snapshots between exports.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an open port in the given range.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}

// StartPreview serves dir on the first open preview port.
func StartPreview(dir string) error {
	port, err := FindAvailablePort(DefaultPreviewPort, PreviewPortRangeEnd)
	if err != nil {
		return fmt.Errorf("could not find available port: %w", err)
	}
	return NewPreviewServer(dir, port).Start()
}
