//go:build !wasm

package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/render/svgchart"
)

const defaultPort = "4430"

func newServeCmd() *cobra.Command {
	var port, data, public string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a data file as live SVG charts",
		Long: `Serve renders the data file on every request, so edits show up on reload.

  /bar.svg   bar chart
  /line.svg  line chart
  /health    liveness check
  /          static files from --public-dir, such as the wasm demo in web/

Add ?x=<position> to show the tooltip of the nearest point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Priority: flag > env var > default
			if port == "" {
				port = os.Getenv("PORT")
				if port == "" {
					port = defaultPort
				}
			}
			if public == "" {
				public = os.Getenv("PUBLIC_DIR")
			}
			mux := newMux(data, env.Log)
			if public != "" {
				abs, err := filepath.Abs(public)
				if err != nil {
					return err
				}
				if _, err := os.Stat(abs); err != nil {
					return err
				}
				env.Log("serving static files from", abs)
				mux.Handle("/", noCache(http.FileServer(http.Dir(abs))))
			}

			server := &http.Server{
				Addr:    ":" + port,
				Handler: mux,
			}
			env.Log("serving", data, "on port", port)
			return server.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default $PORT or "+defaultPort+")")
	cmd.Flags().StringVar(&data, "data", "", "YAML data file")
	cmd.Flags().StringVar(&public, "public-dir", "", "directory of static files (default $PUBLIC_DIR)")
	cmd.MarkFlagRequired("data")
	return cmd
}

func newMux(data string, logger env.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/bar.svg", noCache(chartHandler(data, chart.Bar.String(), logger)))
	mux.Handle("/line.svg", noCache(chartHandler(data, chart.Line.String(), logger)))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is running"))
	})
	return mux
}

// noCache disables caching so every reload re-reads the data file.
func noCache(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		h.ServeHTTP(w, r)
	})
}

func chartHandler(data, kind string, logger env.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := LoadDataFile(data)
		if err != nil {
			logger(err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var at *float64
		if q := r.URL.Query().Get("x"); q != "" {
			x, err := strconv.ParseFloat(q, 64)
			if err != nil {
				http.Error(w, "bad x: "+q, http.StatusBadRequest)
				return
			}
			at = &x
		}

		frame, err := snapshot(f, kind, at, logger)
		if err != nil {
			logger(err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		img, err := svgchart.Bytes(frame)
		if err != nil {
			logger(err)
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(img)
	})
}
