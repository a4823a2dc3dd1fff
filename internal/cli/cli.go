// Package cli provides the motlife command line interface.
//
//	motlife
//	├── assign             solve a cost matrix read from a YAML file
//	│   └── --file, -f
//	├── sync               pair two timestamp series
//	│   └── --file, -f
//	├── track              run tracker over frames read from a YAML file
//	│   ├── --file, -f
//	│   └── --linger         keep metrics endpoint up after the run
//	├── config             print effective configuration
//	└── --config, -c       configuration file (defaults are used when empty)
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/LdDl/mot-lifecycle/internal/config"
	"github.com/LdDl/mot-lifecycle/internal/metrics"
	"github.com/LdDl/mot-lifecycle/mot"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is reported by --version
var Version = "dev"

// AssignInput is the YAML document read by the assign command
type AssignInput struct {
	Cost mot.CostMatrix `yaml:"cost"`
	// Optional external identifiers of rows and columns
	Agents []int `yaml:"agents,omitempty"`
	Tasks  []int `yaml:"tasks,omitempty"`
}

// AssignOutput is the YAML document printed by the assign command
type AssignOutput struct {
	Status        string    `yaml:"status"`
	MatchedAgents []int     `yaml:"matched_agents"`
	MatchedTasks  []int     `yaml:"matched_tasks"`
	MatchedCosts  []float64 `yaml:"matched_costs"`
	Unassigned    []int     `yaml:"unassigned"`
	Newborn       []int     `yaml:"newborn"`
}

// SyncInput is the YAML document read by the sync command
type SyncInput struct {
	A []float64 `yaml:"a"`
	B []float64 `yaml:"b"`
	// Absent means pairs are never dropped
	MaxGap *float64 `yaml:"max_gap,omitempty"`
}

// SyncPair is one paired timestamp
type SyncPair struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// TrackInput is the YAML document read by the track command
type TrackInput struct {
	Frames []FrameInput `yaml:"frames"`
}

// FrameInput is one frame of detections
type FrameInput struct {
	Timestamp  float64          `yaml:"timestamp"`
	Detections []DetectionInput `yaml:"detections"`
}

// DetectionInput is a single detection. Box is [x, y, width, height]
type DetectionInput struct {
	Box   []float64 `yaml:"box"`
	Label string    `yaml:"label,omitempty"`
}

// TrackOutput is the YAML document printed by the track command
type TrackOutput struct {
	Frames []FrameOutput  `yaml:"frames"`
	Tracks []TrackSummary `yaml:"tracks"`
}

// FrameOutput summarizes one processed frame
type FrameOutput struct {
	Timestamp float64 `yaml:"timestamp"`
	Status    string  `yaml:"status"`
	Matched   []int   `yaml:"matched"`
	Lost      []int   `yaml:"lost"`
	Born      []int   `yaml:"born"`
}

// TrackSummary describes one track after the sequence has finished
type TrackSummary struct {
	ID           int     `yaml:"id"`
	Label        string  `yaml:"label,omitempty"`
	Start        float64 `yaml:"start"`
	End          float64 `yaml:"end"`
	Observations int     `yaml:"observations"`
}

type options struct {
	configFile string
	verbose    bool
}

// BuildCLI creates root command
func BuildCLI() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "motlife",
		Short:         "Track assignment and lifecycle engine",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				mot.SetLogWriters(cmd.ErrOrStderr(), cmd.ErrOrStderr(), nil)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(buildAssignCommand(opts))
	rootCmd.AddCommand(buildSyncCommand())
	rootCmd.AddCommand(buildTrackCommand(opts))
	rootCmd.AddCommand(buildConfigCommand(opts))

	return rootCmd
}

func buildAssignCommand(opts *options) *cobra.Command {
	var inputFile string
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Solve a cost matrix and print matched, lost and newborn indices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			var input AssignInput
			if err := readYAML(inputFile, &input); err != nil {
				return err
			}
			return runAssign(cfg, input, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "YAML file with cost matrix")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runAssign(cfg *config.Config, input AssignInput, w io.Writer) error {
	assigner, err := cfg.NewAssigner()
	if err != nil {
		return err
	}
	result, err := assigner.Match(input.Cost, input.Agents, input.Tasks)
	if err != nil {
		return errors.Wrap(err, "assignment failed")
	}
	return writeYAML(w, AssignOutput{
		Status:        result.Status.String(),
		MatchedAgents: result.MatchedAgents,
		MatchedTasks:  result.MatchedTasks,
		MatchedCosts:  result.MatchedCosts,
		Unassigned:    result.Unassigned,
		Newborn:       result.Newborn,
	})
}

func buildSyncCommand() *cobra.Command {
	var inputFile string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pair two timestamp series minimizing total time difference",
		RunE: func(cmd *cobra.Command, args []string) error {
			var input SyncInput
			if err := readYAML(inputFile, &input); err != nil {
				return err
			}
			return runSync(input, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "YAML file with timestamp series")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runSync(input SyncInput, w io.Writer) error {
	maxGap := mot.NoThreshold
	if input.MaxGap != nil {
		maxGap = *input.MaxGap
	}
	ai, bi, err := mot.MatchTimestamps(input.A, input.B, maxGap)
	if err != nil {
		return errors.Wrap(err, "timestamp sync failed")
	}
	pairs := make([]SyncPair, len(ai))
	for k := range ai {
		pairs[k] = SyncPair{A: input.A[ai[k]], B: input.B[bi[k]]}
	}
	return writeYAML(w, pairs)
}

func buildTrackCommand(opts *options) *cobra.Command {
	var inputFile string
	var linger time.Duration
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Run tracker over frames and print per-frame transitions and final tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			var input TrackInput
			if err := readYAML(inputFile, &input); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			var observer mot.FrameObserver
			if cfg.Metrics.Enabled {
				collector, err := metrics.NewCollector(reg, cfg.Metrics.Namespace)
				if err != nil {
					return errors.Wrap(err, "failed to register metrics")
				}
				observer = collector
				srv, addr, err := serveMetrics(fmt.Sprintf(":%d", cfg.Metrics.Port), reg)
				if err != nil {
					return err
				}
				log.Printf("Metrics server listening on %s\n", addr)
				defer shutdownMetrics(srv)
			}

			if err := runTrack(cfg, input, observer, cmd.OutOrStdout()); err != nil {
				return err
			}
			if cfg.Metrics.Enabled && linger > 0 {
				waitForSignal(cmd.Context(), linger)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "YAML file with frames")
	cmd.Flags().DurationVar(&linger, "linger", 0, "keep serving metrics after the run until timeout or SIGINT/SIGTERM")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runTrack(cfg *config.Config, input TrackInput, observer mot.FrameObserver, w io.Writer) error {
	seq, err := cfg.NewSequencer(observer)
	if err != nil {
		return err
	}
	output := TrackOutput{
		Frames: make([]FrameOutput, 0, len(input.Frames)),
	}
	for i, frame := range input.Frames {
		detections := make([]mot.Detection, len(frame.Detections))
		for j, detection := range frame.Detections {
			if len(detection.Box) != 4 {
				return errors.Errorf("frame %d: detection %d: box must be [x, y, width, height], got %v", i, j, detection.Box)
			}
			detections[j] = mot.Detection{
				Box:   mot.NewRect(detection.Box[0], detection.Box[1], detection.Box[2], detection.Box[3]),
				Label: detection.Label,
			}
		}
		report, err := seq.Step(frame.Timestamp, detections)
		if err != nil {
			return errors.Wrapf(err, "frame %d", i)
		}
		matched := make([]int, len(report.Matched))
		for k, match := range report.Matched {
			matched[k] = match.TrackID
		}
		output.Frames = append(output.Frames, FrameOutput{
			Timestamp: report.Timestamp,
			Status:    report.Status.String(),
			Matched:   matched,
			Lost:      report.Lost,
			Born:      report.Born,
		})
	}
	seq.Finish()

	tracks := seq.Container().AllTracks()
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].GetID() < tracks[j].GetID() })
	output.Tracks = make([]TrackSummary, len(tracks))
	for i, track := range tracks {
		output.Tracks[i] = TrackSummary{
			ID:           track.GetID(),
			Label:        track.GetLabel(),
			Start:        track.GetCreationTimestamp(),
			End:          track.GetCurrentTimestamp(),
			Observations: track.GetNumObservations(),
		}
	}
	return writeYAML(w, output)
}

// serveMetrics starts metrics endpoint at /metrics in background and returns bound address
func serveMetrics(addr string, g prometheus.Gatherer) (*http.Server, net.Addr, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to listen on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))
	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server error: %v\n", err)
		}
	}()
	return srv, lis.Addr(), nil
}

func shutdownMetrics(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Metrics server shutdown error: %v\n", err)
	}
}

func waitForSignal(ctx context.Context, timeout time.Duration) {
	if ctx == nil {
		ctx = context.Background()
	}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	select {
	case <-sigChan:
	case <-ctx.Done():
	case <-time.After(timeout):
	}
}

func buildConfigCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), cfg)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
