package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/mandel/internal/export"
	"github.com/san-kum/mandel/internal/mandel"
)

const (
	metadataFile  = "metadata.json"
	imageFile     = "render.png"
	histogramFile = "histogram.csv"
)

// Store keeps finished renders on disk, one directory per render.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Timestamp     time.Time `json:"timestamp"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Zoom          int       `json:"zoom"`
	CenterRe      float64   `json:"center_re"`
	CenterIm      float64   `json:"center_im"`
	MaxIterations int       `json:"max_iterations"`
	Backend       string    `json:"backend"`
	ElapsedMs     float64   `json:"elapsed_ms"`
	Checksum      string    `json:"checksum"`
}

func (m RunMetadata) View() mandel.ViewParameters {
	return mandel.ViewParameters{
		Width:         m.Width,
		Height:        m.Height,
		Zoom:          m.Zoom,
		CenterRe:      m.CenterRe,
		CenterIm:      m.CenterIm,
		MaxIterations: m.MaxIterations,
	}
}

// Render is everything Save persists about one render.
type Render struct {
	Name      string
	View      mandel.ViewParameters
	Backend   string
	Elapsed   time.Duration
	Frame     *mandel.Framebuffer
	Histogram []float64
}

func (s *Store) Save(r Render) (string, error) {
	if r.Frame == nil {
		return "", fmt.Errorf("storage: render has no frame")
	}

	name := filepath.Base(filepath.Clean("/" + r.Name))
	if name == "/" || name == "." {
		name = "render"
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Name:          name,
		Timestamp:     now,
		Width:         r.View.Width,
		Height:        r.View.Height,
		Zoom:          r.View.Zoom,
		CenterRe:      r.View.CenterRe,
		CenterIm:      r.View.CenterIm,
		MaxIterations: r.View.MaxIterations,
		Backend:       r.Backend,
		ElapsedMs:     float64(r.Elapsed.Microseconds()) / 1000,
		Checksum:      fmt.Sprintf("%016x", r.Frame.Checksum()),
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	imgFile, err := os.Create(filepath.Join(runDir, imageFile))
	if err != nil {
		return "", err
	}
	defer imgFile.Close()
	if err := export.WritePNG(imgFile, r.Frame); err != nil {
		return "", err
	}
	if err := imgFile.Close(); err != nil {
		return "", err
	}

	if len(r.Histogram) > 0 {
		if err := writeHistogram(filepath.Join(runDir, histogramFile), r.Histogram); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeHistogram(path string, hist []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"bin", "count"}); err != nil {
		return err
	}
	for i, v := range hist {
		if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', -1, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the stored renders, oldest first. Directories without
// readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrame(runID string) (*mandel.Framebuffer, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, imageFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.ReadPNG(f)
}

// LoadHistogram returns the stored histogram, or nil if none was saved.
func (s *Store) LoadHistogram(runID string) ([]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, histogramFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []float64{}, nil
	}

	hist := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: histogram %s: %w", runID, err)
		}
		hist = append(hist, v)
	}
	return hist, nil
}
