package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"hiking-map-service/internal/adapters/backend"
	"hiking-map-service/internal/adapters/directions"
	"hiking-map-service/internal/adapters/weather"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/logging"
	"hiking-map-service/internal/render"
	"hiking-map-service/internal/services"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
)

type options struct {
	backendURL  string
	long        string
	lat         string
	format      string
	concurrency int
	mapboxURL   string
	nwsURL      string
	userAgent   string
}

func parseFlags(args []string) (options, error) {
	var o options

	fs := flag.NewFlagSet("hikemap", flag.ContinueOnError)
	fs.StringVar(&o.backendURL, "backend", "http://localhost:8080", "backend base URL")
	fs.StringVar(&o.long, "long", "", "home longitude (default launch pad)")
	fs.StringVar(&o.lat, "lat", "", "home latitude (default launch pad)")
	fs.StringVar(&o.format, "format", "json", "output format: json or table")
	fs.IntVar(&o.concurrency, "concurrency", services.DefaultConcurrency, "features enriched in parallel")
	fs.StringVar(&o.mapboxURL, "mapbox-url", directions.DefaultMapboxBaseURL, "Mapbox API base URL")
	fs.StringVar(&o.nwsURL, "nws-url", weather.DefaultNWSBaseURL, "National Weather Service API base URL")
	fs.StringVar(&o.userAgent, "user-agent", "hikemap-cli", "User-Agent sent to the weather service")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.format = strings.ToLower(o.format)
	if o.format != "json" && o.format != "table" {
		return o, fmt.Errorf("unknown -format %q (want json or table)", o.format)
	}
	if o.concurrency < 1 {
		return o, fmt.Errorf("-concurrency must be positive, got %d", o.concurrency)
	}
	return o, nil
}

func main() {
	logging.Setup(os.Getenv("LOG_LEVEL"), "console")

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Error().Err(err).Msg("hikemap failed")
		stop()
		os.Exit(1)
	}
}

// run fetches the token and features from the backend, then enriches every
// feature client-side. Per-feature failures are rendered, not returned.
func run(ctx context.Context, opts options, out io.Writer) error {
	api, err := backend.NewClient(opts.backendURL)
	if err != nil {
		return err
	}

	token, err := api.Token(ctx)
	if err != nil {
		return fmt.Errorf("fetch map token: %w", err)
	}
	feats, err := api.Features(ctx)
	if err != nil {
		return fmt.Errorf("fetch features: %w", err)
	}

	drive, err := directions.NewMapboxProvider(token, opts.mapboxURL, nil)
	if err != nil {
		return err
	}

	enricher := services.NewEnricher(services.Providers{
		Drive:     drive,
		Weather:   weather.NewNWSProvider(opts.nwsURL, opts.userAgent),
		Pollution: api,
	}, opts.concurrency)

	home := domain.ResolveHome(opts.long, opts.lat)

	if opts.format == "table" {
		sink := &render.Collector{}
		sink.Add(render.HomeMarker(home))
		if err := enricher.Run(ctx, feats, home, sink); err != nil {
			return err
		}
		return writeTable(out, sink.Markers())
	}

	sink := &lineSink{enc: json.NewEncoder(out)}
	sink.Add(render.HomeMarker(home))
	if err := enricher.Run(ctx, feats, home, sink); err != nil {
		return err
	}
	return sink.err
}

// lineSink prints each marker as one JSON line as soon as it arrives.
type lineSink struct {
	mu  sync.Mutex
	enc *json.Encoder
	err error
}

func (s *lineSink) Add(m render.Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = s.enc.Encode(m)
	}
}

func writeTable(out io.Writer, markers []render.Marker) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tCLASS\tDRIVE (h)\tBORDER\tNEXT FORECAST\tNEXT AQI\tERROR")

	for _, m := range markers {
		forecast, aqi := "-", "-"
		if len(m.Grid) > 0 && len(m.Grid[0]) > 0 {
			forecast = m.Grid[0][0].Tooltip
		}
		if len(m.Grid) > 1 && len(m.Grid[1]) > 0 {
			aqi = m.Grid[1][0].Tooltip
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Title, m.Class, dash(m.DriveTime), dash(m.BorderColor), forecast, aqi, dash(m.Error))
	}

	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
