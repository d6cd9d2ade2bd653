package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/mandel/internal/analysis"
	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/config"
	"github.com/san-kum/mandel/internal/display"
	"github.com/san-kum/mandel/internal/mandel"
	"github.com/san-kum/mandel/internal/storage"
	"github.com/san-kum/mandel/internal/tui"
	"github.com/san-kum/mandel/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	// view
	width      int
	height     int
	zoom       int
	centerRe   float64
	centerIm   float64
	iterations int
	// rendering
	backend    string
	workers    int
	background string
	output     string
	theme      string
	// output
	save     bool
	name     string
	columns  int
	braille  bool
	bins     int
	plotRows int
)

// main runs the root command; it exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command and flag. The bare command opens the
// terminal viewer.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mandel",
		Short:        "mandelbrot set renderer",
		SilenceUsage: true,
		RunE:         runViewer,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mandel", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset view")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	rootCmd.PersistentFlags().IntVar(&zoom, "zoom", config.DefaultZoom, "zoom exponent (base 2)")
	rootCmd.PersistentFlags().Float64Var(&centerRe, "re", config.DefaultCenterRe, "real part of the view centre")
	rootCmd.PersistentFlags().Float64Var(&centerIm, "im", config.DefaultCenterIm, "imaginary part of the view centre")
	rootCmd.PersistentFlags().IntVar(&iterations, "iter", config.DefaultMaxIterations, "maximum iterations")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "compute backend (serial, cpu)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "worker goroutines (0 = all cpus)")
	rootCmd.PersistentFlags().StringVar(&background, "background", config.DefaultBackground, "background colour")
	rootCmd.Flags().StringVar(&theme, "theme", "cyberpunk", fmt.Sprintf("viewer theme %v", viz.ThemeNames()))

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the view to a file or the terminal",
		RunE:  renderView,
	}
	renderCmd.Flags().StringVarP(&output, "out", "o", "", "output file (.png, .svg); terminal preview when empty")
	renderCmd.Flags().BoolVar(&save, "save", false, "store the render in the data directory")
	renderCmd.Flags().StringVar(&name, "name", "", "name for the stored render (default: preset or \"view\")")
	renderCmd.Flags().IntVar(&columns, "cols", 80, "terminal preview width in cells")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "print a colour preview of the view",
		RunE:  previewView,
	}
	previewCmd.Flags().IntVar(&columns, "cols", 80, "preview width in cells")
	previewCmd.Flags().BoolVar(&braille, "braille", false, "monochrome braille silhouette")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "escape statistics and iteration histogram",
		RunE:  statsView,
	}
	statsCmd.Flags().IntVar(&bins, "bins", 60, "histogram bins")
	statsCmd.Flags().IntVar(&plotRows, "rows", 12, "histogram plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset views",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored renders",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "preview a stored render",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&columns, "cols", 80, "preview width in cells")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare serial and parallel rendering",
		RunE:  benchView,
	}

	galleryCmd := &cobra.Command{
		Use:   "gallery [dir]",
		Short: "render every preset to PNG files",
		Args:  cobra.ExactArgs(1),
		RunE:  renderGallery,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal viewer",
		RunE:  runViewer,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "cyberpunk", fmt.Sprintf("viewer theme %v", viz.ThemeNames()))

	rootCmd.AddCommand(renderCmd, previewCmd, statsCmd, presetsCmd, listCmd, showCmd, benchCmd, galleryCmd, tuiCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("zoom") {
		cfg.Zoom = zoom
	}
	if flags.Changed("re") {
		cfg.CenterRe = centerRe
	}
	if flags.Changed("im") {
		cfg.CenterIm = centerIm
	}
	if flags.Changed("iter") {
		cfg.MaxIterations = iterations
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		cfg.Output = output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config) *mandel.Renderer {
	opts := []mandel.Option{mandel.WithBackground(cfg.BackgroundColor())}
	if b := cfg.ComputeBackend(); b != nil {
		opts = append(opts, mandel.WithBackend(b))
	}
	return mandel.NewRenderer(opts...)
}

func trace(cfg *config.Config) (*mandel.Renderer, *mandel.EscapeMap, time.Duration, error) {
	r := newRenderer(cfg)
	vp := cfg.View()

	start := time.Now()
	em, err := r.Trace(context.Background(), vp)
	if err != nil {
		return nil, nil, 0, err
	}
	return r, em, time.Since(start), nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg.View(), newRenderer(cfg), theme)
}

func renderView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	vp := cfg.View()

	fmt.Printf("%s %s\n", viz.HeaderStyle.Render("rendering"), viz.Subtle.Render(vp.String()))
	r, em, elapsed, err := trace(cfg)
	if err != nil {
		return err
	}
	fb := em.Colorize(r.Background())

	var surface display.Surface
	if cfg.Output != "" {
		surface = &display.FileSurface{Path: cfg.Output, Background: r.Background(), SVGScale: 1}
	} else {
		surface = &display.TerminalSurface{Out: os.Stdout, Columns: columns}
	}
	origin := image.Pt(cfg.Origin.X, cfg.Origin.Y)
	if err := surface.Present(fb, vp.Width, vp.Height, origin); err != nil {
		return err
	}

	summary := analysis.Summarize(em)
	backendName := r.Backend(vp.Width).Name()
	fmt.Println(viz.Metric("backend", backendName))
	fmt.Println(viz.Metric("time", elapsed.Round(time.Microsecond).String()))
	fmt.Println(viz.Metric("escaped", fmt.Sprintf("%d / %d", summary.Escaped, summary.Total)))
	fmt.Println(viz.Metric("checksum", fmt.Sprintf("%016x", fb.Checksum())))
	if cfg.Output != "" {
		fmt.Println(viz.Metric("written", cfg.Output))
	}

	if !save {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runName := name
	if runName == "" {
		runName = preset
	}
	if runName == "" {
		runName = "view"
	}
	runID, err := st.Save(storage.Render{
		Name:      runName,
		View:      vp,
		Backend:   backendName,
		Elapsed:   elapsed,
		Frame:     fb,
		Histogram: analysis.Histogram(em, bins),
	})
	if err != nil {
		return err
	}
	fmt.Println(viz.Metric("run id", runID))
	return nil
}

func previewView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r := newRenderer(cfg)
	fb, err := r.Render(context.Background(), cfg.View())
	if err != nil {
		return err
	}

	if braille {
		fmt.Println(viz.Silhouette(fb, r.Background(), columns).String())
		return nil
	}
	fmt.Println(viz.Preview(fb, columns))
	return nil
}

func statsView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	_, em, elapsed, err := trace(cfg)
	if err != nil {
		return err
	}

	summary := analysis.Summarize(em)
	fmt.Println(viz.GradientTitle.Render(cfg.View().String()))
	lines := []string{
		summary.String(),
		viz.MetricLabel.Render("escaped ") + viz.ProgressBar(summary.EscapedFraction(), 30),
		viz.Metric("skipped steps", fmt.Sprintf("%d", summary.SkippedSteps(em.MaxIterations))),
		viz.Metric("time", elapsed.Round(time.Microsecond).String()),
	}
	fmt.Println(viz.GlassPanel.Render(strings.Join(lines, "\n")))
	fmt.Println(viz.Separator(60))

	hist := analysis.Histogram(em, bins)
	fmt.Println(analysis.PlotHistogram(hist, 0, plotRows, "escaped pixels per iteration band"))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tZOOM\tCENTRE\tSPAN\tITER")
	for _, n := range config.ListPresets() {
		p := config.GetPreset(n)
		re, im := p.View().Span()
		fmt.Fprintf(w, "%s\t%d\t%.11g%+.11gi\t%.3g x %.3g\t%d\n", n, p.Zoom, p.CenterRe, p.CenterIm, re, im, p.MaxIterations)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSIZE\tZOOM\tITER\tBACKEND\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%s\t%.1fms\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Zoom,
			run.MaxIterations,
			run.Backend,
			run.ElapsedMs,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	fb, err := st.LoadFrame(runID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", viz.HeaderStyle.Render(meta.Name), viz.Subtle.Render(meta.View().String()))
	fmt.Println(viz.Preview(fb, columns))

	hist, err := st.LoadHistogram(runID)
	if err != nil {
		return err
	}
	if len(hist) > 0 {
		fmt.Println(viz.MetricLabel.Render("iterations ") + viz.SparklineChart(hist, min(len(hist), columns)))
	}
	return nil
}

func renderGallery(cmd *cobra.Command, args []string) error {
	dir := args[0]

	names := config.ListPresets()
	views := make([]mandel.ViewParameters, len(names))
	for i, n := range names {
		p := config.GetPreset(n)
		if cmd.Flags().Changed("width") {
			p.Width = width
		}
		if cmd.Flags().Changed("height") {
			p.Height = height
		}
		if cmd.Flags().Changed("iter") {
			p.MaxIterations = iterations
		}
		views[i] = p.View()
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r := newRenderer(cfg)

	fmt.Printf("rendering %d presets...\n", len(views))
	start := time.Now()
	frames, err := mandel.RenderBatch(context.Background(), r, views)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start).Round(time.Millisecond))

	for i, fb := range frames {
		path := filepath.Join(dir, names[i]+".png")
		surface := &display.FileSurface{Path: path, Background: r.Background()}
		if err := surface.Present(fb, views[i].Width, views[i].Height, image.Point{}); err != nil {
			return err
		}
		fmt.Println(viz.Metric(names[i], path))
	}
	return nil
}

func benchView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	vp := cfg.View()
	bg := cfg.BackgroundColor()

	backends := []compute.Backend{
		compute.NewSerialBackend(),
		compute.NewCPUBackend(cfg.Workers),
	}

	fmt.Printf("benchmarking %s\n\n", vp)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tTIME\tPIXELS/SEC\tSPEEDUP\tCHECKSUM")

	var reference *mandel.Framebuffer
	var baseline time.Duration
	for _, b := range backends {
		r := mandel.NewRenderer(mandel.WithBackend(b), mandel.WithBackground(bg))

		start := time.Now()
		fb, err := r.Render(context.Background(), vp)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		if reference == nil {
			reference = fb
			baseline = elapsed
		} else if !fb.Equal(reference) {
			w.Flush()
			return fmt.Errorf("backend %s produced a different image than %s", b.Name(), backends[0].Name())
		}

		pixels := float64(vp.Width * vp.Height)
		fmt.Fprintf(w, "%s\t%v\t%.0f\t%.2fx\t%016x\n",
			b.Name(), elapsed.Round(time.Microsecond), pixels/elapsed.Seconds(),
			baseline.Seconds()/elapsed.Seconds(), fb.Checksum())
	}

	return w.Flush()
}
