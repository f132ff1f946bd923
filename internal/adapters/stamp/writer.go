// Package stamp records fingerprints of the generated artifacts.
package stamp

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Filename is the stamp file written next to the generated artifacts.
const Filename = ".ninjify_stamp.json"

// stampFile is the on-disk stamp format: xxhash64 fingerprints of both
// artifacts plus an echo of the settings that produced them, so a wrapping
// build can detect both artifact and configuration drift.
type stampFile struct {
	Artifacts []artifactStamp `json:"artifacts"`
	Config    configEcho      `json:"config"`
}

type artifactStamp struct {
	File string `json:"file"`
	Hash string `json:"hash"`
}

type configEcho struct {
	Graph         string `json:"graph"`
	Suffix        string `json:"suffix,omitempty"`
	RemoteExecDir string `json:"remote_exec_dir,omitempty"`
	Jobs          int    `json:"jobs"`
}

// Writer implements ports.Stamper.
type Writer struct {
	log ports.Logger
}

// NewWriter creates a new Writer.
func NewWriter(log ports.Logger) *Writer {
	return &Writer{log: log}
}

// Stamp fingerprints the build description and the wrapper script and
// writes the stamp file into the output directory. Both artifacts are
// hashed concurrently.
func (w *Writer) Stamp(ctx context.Context, cfg domain.Config) error {
	files := []string{cfg.NinjaPath(), cfg.ScriptPath()}
	stamps := make([]artifactStamp, len(files))

	eg, _ := errgroup.WithContext(ctx)
	for i, path := range files {
		eg.Go(func() error {
			sum, err := hashFile(path)
			if err != nil {
				return err
			}
			stamps[i] = artifactStamp{
				File: filepath.Base(path),
				Hash: strconv.FormatUint(sum, 16),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := stampFile{
		Artifacts: stamps,
		Config: configEcho{
			Graph:         cfg.GraphPath,
			Suffix:        cfg.Suffix,
			RemoteExecDir: cfg.RemoteExecDir,
			Jobs:          cfg.NumJobs,
		},
	}
	data, err := json.MarshalIndent(out, "", " ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode stamp")
	}

	path := filepath.Join(cfg.OutputDir, Filename)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // stamp is not sensitive
		return zerr.Wrap(err, "failed to write stamp file")
	}

	w.log.Info("wrote " + path)
	return nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path derives from config
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open artifact for stamping")
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, zerr.Wrap(err, "failed to hash artifact")
	}
	return h.Sum64(), nil
}
