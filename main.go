package main

import (
	// standard library
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	// third-party
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	// internal
	"github.com/halftonelab/halftone/internal/config"
	"github.com/halftonelab/halftone/internal/database"
	"github.com/halftonelab/halftone/internal/dither"
	"github.com/halftonelab/halftone/internal/imageprocessing"
	"github.com/halftonelab/halftone/internal/logging"
	"github.com/halftonelab/halftone/internal/server"
	"github.com/halftonelab/halftone/internal/version"
)

func main() {
	_ = godotenv.Load()

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Println(version.String())
			return
		case "serve":
			runServe()
			return
		}
	}
	runConvert(args)
}

// runConvert is the one-shot CLI path: decode, prepare, dither, write.
func runConvert(args []string) {
	fs := flag.NewFlagSet("halftone", flag.ExitOnError)
	kernel := fs.String("kernel", "floyd-steinberg", "diffusion kernel to apply")
	width := fs.Int("width", 0, "target width (requires -height)")
	height := fs.Int("height", 0, "target height (requires -width)")
	fill := fs.Bool("fill", false, "crop to fill the target geometry instead of letterboxing")
	blur := fs.Float64("blur", 0, "Gaussian blur sigma applied before dithering")
	seed := fs.Int64("seed", 0, "seed for the random kernel (default: current time)")
	list := fs.Bool("list-kernels", false, "print the kernel catalog and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: halftone [flags] input [output]\n")
		fmt.Fprintf(fs.Output(), "       halftone serve\n\n")
		fmt.Fprintf(fs.Output(), "Dithers input down to black and white and writes the result.\n")
		fmt.Fprintf(fs.Output(), "When output is omitted, <input>_dithered.png is written.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if *list {
		for _, name := range dither.Names() {
			fmt.Println(name)
		}
		return
	}

	input := fs.Arg(0)
	if input == "" {
		fs.Usage()
		os.Exit(2)
	}
	output := fs.Arg(1)
	if output == "" {
		output = derivedOutputPath(input)
	}

	// Reject unknown kernels before any decoding work.
	if _, err := dither.ByName(*kernel); err != nil {
		logging.ErrorWithComponent(logging.ComponentConvert, "Unknown kernel",
			"kernel", *kernel, "available", strings.Join(dither.Names(), ", "))
		os.Exit(1)
	}

	start := time.Now()

	f, err := os.Open(input)
	if err != nil {
		logging.ErrorWithComponent(logging.ComponentCodec, "Failed to open input", "path", input, "error", err)
		os.Exit(1)
	}
	img, format, err := imageprocessing.Decode(f)
	f.Close()
	if err != nil {
		logging.ErrorWithComponent(logging.ComponentCodec, "Failed to decode input", "path", input, "error", err)
		os.Exit(1)
	}

	mode := imageprocessing.FitContain
	if *fill {
		mode = imageprocessing.FitCover
	}
	m := imageprocessing.Prepare(img, imageprocessing.Options{
		Width:     *width,
		Height:    *height,
		Mode:      mode,
		BlurSigma: float32(*blur),
	})

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	n, err := dither.Apply(m, *kernel, rand.New(rand.NewSource(s)))
	if err != nil {
		logging.ErrorWithComponent(logging.ComponentDither, "Dithering failed", "error", err)
		os.Exit(1)
	}

	if err := imageprocessing.EncodeFile(output, m); err != nil {
		logging.ErrorWithComponent(logging.ComponentCodec, "Failed to write output", "path", output, "error", err)
		os.Exit(1)
	}

	logging.InfoWithComponent(logging.ComponentConvert, "Wrote dithered image",
		"input", input, "format", format, "output", output,
		"kernel", *kernel, "pixels", n, "duration", time.Since(start))
}

// derivedOutputPath turns input.jpg into input_dithered.png.
func derivedOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_dithered.png"
}

// runServe starts the HTTP surface with graceful shutdown.
func runServe() {
	logging.InfoWithComponent(logging.ComponentStartup, "Starting halftone server", "version", version.String())

	settings, err := config.LoadSettings()
	if err != nil {
		logging.ErrorWithComponent(logging.ComponentStartup, "Invalid configuration", "error", err)
		os.Exit(1)
	}
	if _, err := dither.ByName(settings.DefaultKernel); err != nil {
		logging.ErrorWithComponent(logging.ComponentStartup, "Invalid default kernel",
			"kernel", settings.DefaultKernel, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var jobs *database.JobService
	if settings.History {
		if err := os.MkdirAll(settings.DataDir, 0o755); err != nil {
			logging.ErrorWithComponent(logging.ComponentStartup, "Failed to create data directory",
				"path", settings.DataDir, "error", err)
			os.Exit(1)
		}
		db, err := database.Open(filepath.Join(settings.DataDir, "halftone.db"))
		if err != nil {
			logging.ErrorWithComponent(logging.ComponentStartup, "Failed to open database", "error", err)
			os.Exit(1)
		}
		defer database.Close(db)
		jobs = database.NewJobService(db)

		if retention := settings.Retention(); retention > 0 {
			go cleanupLoop(ctx, jobs, retention)
		}
	}

	if mode := config.Get("GIN_MODE", ""); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := fmt.Sprintf(":%d", settings.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: server.New(settings, jobs).Router(),
	}

	go func() {
		logging.InfoWithComponent(logging.ComponentStartup, "Listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorWithComponent(logging.ComponentStartup, "Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.InfoWithComponent(logging.ComponentShutdown, "Shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorWithComponent(logging.ComponentShutdown, "Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logging.InfoWithComponent(logging.ComponentShutdown, "Server stopped")
}

// cleanupLoop prunes aged render-job rows once a day.
func cleanupLoop(ctx context.Context, jobs *database.JobService, retention time.Duration) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := jobs.CleanupOlderThan(retention)
			if err != nil {
				logging.ErrorWithComponent(logging.ComponentDatabase, "History cleanup failed", "error", err)
				continue
			}
			if deleted > 0 {
				logging.InfoWithComponent(logging.ComponentDatabase, "Pruned render history", "deleted", deleted)
			}
		}
	}
}
