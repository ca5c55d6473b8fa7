package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/airbusgeo/geoshift/cmd"
	"github.com/airbusgeo/geoshift/interface/storage/filesystem"
	"github.com/airbusgeo/geoshift/internal/catalog"
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/log"
	"github.com/airbusgeo/geoshift/internal/svc"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Logger(ctx).Fatal("run error", zap.Error(err))
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	appConfig, err := newAppConfig()
	if err != nil {
		return err
	}
	if appConfig.Console {
		log.Console()
	}
	ctx = log.With(ctx, "run", uuid.New().String())

	if err := cmd.InitGDAL(ctx, appConfig.GDALConfig); err != nil {
		return fmt.Errorf("init gdal: %w", err)
	}

	strategy, err := filesystem.NewFileSystemStrategy(ctx)
	if err != nil {
		return fmt.Errorf("NewFileSystemStrategy: %w", err)
	}
	cat, err := catalog.LoadFile(ctx, appConfig.Catalog, strategy)
	if err != nil {
		return err
	}
	service, err := svc.New(ctx, cat, svc.Options{
		GridCacheSize: appConfig.GridCacheSize,
		Convergence:   appConfig.Convergence,
	})
	if err != nil {
		return fmt.Errorf("svc.new: %w", err)
	}
	defer service.Close()

	src, err := newLayout(cat, appConfig.Source)
	if err != nil {
		return err
	}
	tgt, err := newLayout(cat, appConfig.Target)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	sc := bufio.NewScanner(in)
	line, failed := 0, 0
	for sc.Scan() {
		line++
		if ctx.Err() != nil {
			return ctx.Err()
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pt, err := src.parse(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		pt.Epoch = appConfig.Epoch
		if appConfig.Deflection {
			pt.VerticalPrecision = geodesy.CalcDeflection
		}
		if err := service.ConvertPoint(ctx, &pt, appConfig.Source, appConfig.Target); err != nil {
			if !geodesy.IsRecoverable(err) {
				return fmt.Errorf("line %d: %w", line, err)
			}
			log.Logger(ctx).Warn("point not converted", zap.Int("line", line), zap.Error(err))
			failed++
			fmt.Fprintln(w, "*")
			continue
		}
		fmt.Fprintln(w, tgt.format(pt, appConfig.Convergence, appConfig.Deflection))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read points: %w", err)
	}
	log.Logger(ctx).Info("conversion done", zap.Int("lines", line), zap.Int("failed", failed))
	return nil
}

func newAppConfig() (*appConfig, error) {
	appConfig := appConfig{}
	flag.StringVar(&appConfig.Catalog, "catalog", "", "path of the yaml catalog of the reference entities")
	flag.StringVar(&appConfig.Source, "from", "", "source crs, optionally with a vertical crs (ex: NTFLAMB2E+IGN69H)")
	flag.StringVar(&appConfig.Target, "to", "", "target crs, optionally with a vertical crs (ex: RGF93G+IGN69H)")
	flag.Float64Var(&appConfig.Epoch, "epoch", 0, "epoch of the points (decimal year)")
	flag.BoolVar(&appConfig.Convergence, "convergence", false, "output the meridian convergence and the scale factor")
	flag.BoolVar(&appConfig.Deflection, "deflection", false, "output the vertical deflection")
	flag.IntVar(&appConfig.GridCacheSize, "gridCache", 16, "maximum number of grids held loaded")
	flag.BoolVar(&appConfig.Console, "console", false, "human readable logs")
	appConfig.GDALConfig = cmd.GDALConfigFlags()

	flag.Parse()

	if appConfig.Catalog == "" {
		return nil, fmt.Errorf("missing --catalog flag")
	}
	if appConfig.Source == "" || appConfig.Target == "" {
		return nil, fmt.Errorf("missing --from or --to flag")
	}
	return &appConfig, nil
}

type appConfig struct {
	Catalog       string
	Source        string
	Target        string
	Epoch         float64
	Convergence   bool
	Deflection    bool
	GridCacheSize int
	Console       bool
	GDALConfig    *cmd.GDALConfig
}
