package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bam"
	"github.com/san-kum/bam/internal/accuracy"
	"github.com/san-kum/bam/internal/audio"
	"github.com/san-kum/bam/internal/config"
	"github.com/san-kum/bam/internal/export"
	"github.com/san-kum/bam/internal/gui"
	"github.com/san-kum/bam/internal/tablegen"
	"github.com/san-kum/bam/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// table
	verifyTable bool

	// gen
	outDir    string
	genFormat string

	// plot
	traceName  string
	samples    int
	plotWidth  int
	plotHeight int

	// export
	csvPath   string
	svgPath   string
	phasor    bool
	svgWidth  int
	svgHeight int

	// tone
	toneFreq float64
	toneSecs float64
	toneVol  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bam",
		Short: "integer sine/cosine on the 16384-unit circle",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	evalCmd := &cobra.Command{
		Use:   "eval [angle]...",
		Short: "evaluate sin/cos at the given angles",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEval,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "dump the quarter-wave table",
		RunE:  runTable,
	}
	tableCmd.Flags().BoolVar(&verifyTable, "verify", false, "check the generator contract against the shipped table")

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "regenerate the table artifact",
		RunE:  runGen,
	}
	genCmd.Flags().StringVarP(&outDir, "out", "o", "sine16", "artifact directory")
	genCmd.Flags().StringVar(&genFormat, "format", "bin", "output format (bin|go)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot a trace in the terminal",
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&traceName, "trace", "", "trace name (see error for the list)")
	plotCmd.Flags().IntVar(&samples, "samples", 0, "sample count")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "plot height")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "accuracy report against the float reference",
		RunE:  runCheck,
	}
	checkCmd.Flags().IntVar(&samples, "samples", 0, "sweep sample count (default full circle)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export wave data as CSV and SVG",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&csvPath, "csv", "", "CSV output path")
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "SVG output path")
	exportCmd.Flags().BoolVar(&phasor, "phasor", false, "render the phasor circle instead of the wave")
	exportCmd.Flags().IntVar(&samples, "samples", 0, "sample count")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run()
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "graphical scope view",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			gui.Run(cfg.GUI.Width, cfg.GUI.Height)
		},
	}

	toneCmd := &cobra.Command{
		Use:   "tone",
		Short: "play the table as an audio tone",
		RunE:  runTone,
	}
	toneCmd.Flags().Float64VarP(&toneFreq, "freq", "f", 0, "frequency in Hz")
	toneCmd.Flags().Float64VarP(&toneSecs, "duration", "d", 0, "duration in seconds")
	toneCmd.Flags().Float64Var(&toneVol, "volume", 0, "volume in (0, 1]")

	rootCmd.AddCommand(evalCmd, tableCmd, genCmd, plotCmd, checkCmd, exportCmd, liveCmd, guiCmd, toneCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the --config file, falling back to defaults when no
// file is given or the given path does not exist.
func loadConfig() *config.Config {
	if configFile == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return config.DefaultConfig()
		}
		fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func runEval(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANGLE\tDEG\tSIN\tCOS\tREF_SIN\tREF_COS\tERR_SIN\tERR_COS")

	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 16)
		if err != nil {
			return fmt.Errorf("bad angle %q: %w", arg, err)
		}
		angle := uint16(v)

		s, c := bam.SinCos(angle)
		theta := 2 * math.Pi * float64(angle&0x3fff) / bam.Turn
		refS := int32(math.Round(bam.Amplitude * math.Sin(theta)))
		refC := int32(math.Round(bam.Amplitude * math.Cos(theta)))

		fmt.Fprintf(w, "%d\t%.2f\t%d\t%d\t%d\t%d\t%d\t%d\n",
			angle, 360*float64(angle&0x3fff)/bam.Turn, s, c, refS, refC, s-refS, c-refC)
	}

	return w.Flush()
}

func runTable(cmd *cobra.Command, args []string) error {
	table := bam.Table()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tANGLE\tDEG\tHEX\tVALUE")

	for i, v := range table {
		angle := i * 256
		fmt.Fprintf(w, "%d\t%d\t%.3f\t%#04x\t%d\n", i, angle, 360*float64(angle)/bam.Turn, v, v)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if verifyTable {
		if err := tablegen.Verify(table); err != nil {
			return err
		}
		if generated := tablegen.Generate(); generated != table {
			return fmt.Errorf("shipped table does not match the generator output")
		}
		fmt.Println("\ntable verified: 17 entries, monotone, 0..32767, matches generator")
	}

	return nil
}

func runGen(cmd *cobra.Command, args []string) error {
	table := tablegen.Generate()

	switch genFormat {
	case "go":
		fmt.Print(tablegen.GoLiteral(table))
		return nil
	case "bin":
		if err := tablegen.WriteDir(outDir, table); err != nil {
			return err
		}
		fmt.Printf("wrote %s/sine16.bin and %s/metadata.json\n", outDir, outDir)
		return nil
	default:
		return fmt.Errorf("unknown format: %s (want bin or go)", genFormat)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if traceName == "" {
		traceName = cfg.Plot.Trace
	}
	if samples <= 0 {
		samples = cfg.Plot.Samples
	}
	if plotWidth <= 0 {
		plotWidth = cfg.Plot.Width
	}
	if plotHeight <= 0 {
		plotHeight = cfg.Plot.Height
	}

	registry := export.NewRegistry()
	trace, err := registry.Get(traceName)
	if err != nil {
		return err
	}

	data := make([]float64, samples)
	for i := range data {
		data[i] = trace(uint16(i * bam.Turn / samples))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s over one turn (%d samples)", traceName, samples)),
	)
	fmt.Println(graph)

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	rep := accuracy.Compare(samples)

	fmt.Printf("accuracy over %d samples (counts of %d)\n\n", rep.Samples, bam.Amplitude)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FUNC\tMAX\tAT\tMEAN\tRMS\tP99")
	fmt.Fprintf(w, "sin\t%d\t%d\t%.3f\t%.3f\t%.1f\n",
		rep.Sin.MaxAbs, rep.Sin.MaxAbsAngle, rep.Sin.Mean, rep.Sin.RMS, rep.Sin.P99)
	fmt.Fprintf(w, "cos\t%d\t%d\t%.3f\t%.3f\t%.1f\n",
		rep.Cos.MaxAbs, rep.Cos.MaxAbsAngle, rep.Cos.Mean, rep.Cos.RMS, rep.Cos.P99)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nworst sine error per quadrant:")
	for q, m := range rep.QuadrantMax {
		fmt.Printf("  q%d: %d\n", q, m)
	}

	fmt.Printf("\nTHD: %.6f%%\n", 100*accuracy.THD(4096))

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if csvPath == "" && svgPath == "" {
		csvPath = cfg.Export.CSVPath
		svgPath = cfg.Export.SVGPath
	}
	if samples <= 0 {
		samples = cfg.Export.Samples
	}

	if csvPath != "" {
		if err := export.WriteCSV(csvPath, export.Samples(samples)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}

	if svgPath != "" {
		var svg string
		if phasor {
			svg = export.PhasorSVG(cfg.Export.SVGHeight, samples)
		} else {
			svg = export.WaveSVG(cfg.Export.SVGWidth, cfg.Export.SVGHeight, samples)
		}
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	return nil
}

func runTone(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if toneFreq <= 0 {
		toneFreq = cfg.Tone.Frequency
	}
	if toneSecs <= 0 {
		toneSecs = cfg.Tone.Duration
	}
	if toneVol <= 0 {
		toneVol = cfg.Tone.Volume
	}

	tone := audio.NewTone(toneFreq, toneVol)
	if err := tone.Start(); err != nil {
		return err
	}

	fmt.Printf("playing %.2f Hz for %.1fs\n", toneFreq, toneSecs)
	time.Sleep(time.Duration(toneSecs * float64(time.Second)))
	tone.Stop()

	return nil
}
