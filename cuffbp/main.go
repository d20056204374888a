package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"

	"github.com/cgxeiji/cuffbp"
	"github.com/cgxeiji/cuffbp/internal/config"
	"github.com/cgxeiji/cuffbp/internal/cuffsim"
	"github.com/cgxeiji/cuffbp/internal/stream"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "TOML configuration file")
		bus     = flag.String("bus", "", "I2C bus name")
		addr    = flag.Uint("addr", 0, "I2C address of the pressure sensor")
		natsURL = flag.String("nats", "", "publish pace and results to this NATS url")
		sim     = flag.Bool("sim", false, "use a simulated cuff instead of the sensor")
		timeout = flag.Duration("timeout", 0, "give up after this long")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := &config.Config{}
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	opts := cfg.Options()
	opts = append(opts, cuffbp.WithLogger(logger))
	if *bus != "" {
		opts = append(opts, cuffbp.OnBus(*bus))
	}
	if *addr != 0 {
		opts = append(opts, cuffbp.OnAddr(uint16(*addr)))
	}
	if *timeout > 0 {
		opts = append(opts, cuffbp.Timeout(*timeout))
	}
	if *sim {
		c := cuffsim.New()
		opts = append(opts,
			cuffbp.WithSensor(c),
			cuffbp.WithClock(c),
			cuffbp.Interval(c.Interval),
		)
	}

	if *natsURL == "" {
		*natsURL = cfg.NATS.URL
	}
	var pub *stream.Publisher
	if *natsURL != "" {
		nc, err := stream.Connect(*natsURL)
		if err != nil {
			slog.Error("could not connect to NATS", slog.Any("err", err))
			os.Exit(1)
		}
		defer nc.Drain()
		pub = stream.NewPublisher(nc)
	}

	last := cuffbp.PaceNone
	opts = append(opts, cuffbp.OnEvent(func(ev cuffbp.Event) {
		switch ev.Kind {
		case cuffbp.StillInflating:
			fmt.Printf("\rInflating the cuff: %6.1f mmHg ", ev.Pressure)
		case cuffbp.Capturing:
			if ev.Pace != last {
				fmt.Printf("\n%s", ev.Pace.Advice())
				last = ev.Pace
			}
		}
		if pub != nil {
			if err := pub.Publish(ev); err != nil {
				slog.Warn("could not publish", slog.Any("err", err))
			}
		}
	}))

	monitor, err := cuffbp.New(opts...)
	if err != nil {
		slog.Error("could not start", slog.Any("err", err))
		os.Exit(1)
	}
	defer monitor.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("THE PRESSURE IS ON")
	r, err := monitor.Measure(ctx)
	fmt.Println()
	if errors.Is(err, cuffbp.ErrTimeout) {
		slog.Error("cuff was not inflated and released in time")
		return
	} else if err != nil {
		slog.Error("measurement failed", slog.Any("err", err))
		return
	}

	fmt.Printf("Systole:    %v mmHg\n", r.Systolic)
	fmt.Printf("Diastole:   %v mmHg\n", r.Diastolic)
	fmt.Printf("Heart rate: %v bpm\n", r.HeartRate)
	fmt.Printf("%v - %s\n", r.Category, r.Category.Advice())
	if r.Degraded {
		fmt.Println("(capture buffer filled up, result is partial)")
	}
}
