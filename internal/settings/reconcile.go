package settings

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/ini.v1"
)

// RadiusSetter receives the published maximum lookup radius.
type RadiusSetter interface {
	SetMaxLookupRadius(float64)
}

// Reconciler brings the INI file at Path in line with Schema and publishes
// the lookup radius. Failures never stop the host; they fall back to
// defaults and are logged.
type Reconciler struct {
	Path   string
	Schema Schema
	Logger *slog.Logger
}

// NewReconciler returns a Reconciler for the General schema at path.
func NewReconciler(path string) *Reconciler {
	return &Reconciler{Path: path, Schema: General}
}

func (r *Reconciler) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Reconcile creates the file if needed, rewrites it with defaults when it does
// not match the schema, and publishes the clamped radius to dst. It always
// returns true.
func (r *Reconciler) Reconcile(dst RadiusSetter) bool {
	log := r.logger().With("path", r.Path)

	rebuild, err := ensureFile(r.Path)
	if err != nil {
		log.Warn("failed to create settings file", "error", err)
	}

	f, err := ini.Load(r.Path)
	if err != nil {
		log.Warn("failed to load settings file, using defaults", "error", err)
		f = ini.Empty()
		rebuild = true
	}

	if !rebuild && r.Schema.NeedsRebuild(f) {
		log.Info("settings file does not match schema", "section", r.Schema.Section)
		rebuild = true
	}

	if rebuild {
		if err := r.Schema.WriteDefaults(f); err != nil {
			log.Error("failed to write default settings", "error", err)
		} else if err := f.SaveTo(r.Path); err != nil {
			log.Error("failed to save settings file", "error", err)
		} else {
			log.Debug("wrote default settings")
		}
	}

	spec, _ := r.Schema.Spec(KeyMaxRefLookupDistance)
	radius := spec.Clamp(r.Schema.Float(f, KeyMaxRefLookupDistance))
	dst.SetMaxLookupRadius(radius)
	log.Debug("published max lookup radius", "radius", radius)

	return true
}

// ensureFile creates an empty file at path if nothing exists there and
// reports whether it did.
func ensureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return true, err
	}
	return true, f.Close()
}
