package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/turtle"
	"github.com/phanxgames/turtle/internal/metrics"
	"github.com/phanxgames/turtle/stage"
	"github.com/spf13/cobra"
)

func newWindowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the program in a window with Run / Step / Reset controls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("image") {
				a.cfg.Image, _ = flags.GetString("image")
			}
			if flags.Changed("script") {
				a.cfg.Script, _ = flags.GetString("script")
			}
			if flags.Changed("metrics-addr") {
				a.cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
			}

			actor, root, err := a.build()
			if err != nil {
				return err
			}

			// Assets and scripts fail before the window opens.
			var sprite *ebiten.Image
			if a.cfg.Image != "" {
				if sprite, err = stage.LoadActorImage(a.cfg.Image); err != nil {
					return err
				}
			}
			var script *stage.Script
			if a.cfg.Script != "" {
				if script, err = stage.LoadScriptFile(a.cfg.Script); err != nil {
					return err
				}
			}

			it := turtle.NewInterpreter(root)
			if a.cfg.MetricsAddr != "" {
				rec := metrics.NewRecorder()
				it.SetObserver(rec)
				stop := serveMetrics(a, rec)
				defer stop()
			}

			st := stage.New(actor, it, sprite, stageConfig(a))
			if script != nil {
				st.SetScript(script)
			}
			return stage.Run(st)
		},
	}
	cmd.Flags().String("image", "", "PNG drawn for the actor (overrides TURTLE_IMAGE)")
	cmd.Flags().String("script", "", "JSON automation script (overrides TURTLE_SCRIPT)")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (overrides TURTLE_METRICS_ADDR)")
	return cmd
}

// stageConfig maps the resolved settings onto the host configuration.
func stageConfig(a *app) stage.RunConfig {
	return stage.RunConfig{
		Title:         a.cfg.Title,
		Width:         a.cfg.Width,
		Height:        a.cfg.Height,
		TweenDuration: a.cfg.Tween,
		RunBudget:     a.cfg.RunBudget,
		ScreenshotDir: a.cfg.ScreenshotDir,
	}
}

// serveMetrics exposes rec on the configured address until the returned
// function is called.
func serveMetrics(a *app, rec *metrics.Recorder) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Addr: a.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		a.log.WithField("addr", srv.Addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.WithError(err).Error("metrics server stopped")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
