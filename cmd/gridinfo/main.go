package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/airbusgeo/geoshift/cmd"
	"github.com/airbusgeo/geoshift/interface/storage/filesystem"
	"github.com/airbusgeo/geoshift/internal/grid"
	"github.com/airbusgeo/geoshift/internal/log"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		log.Logger(ctx).Fatal("run error", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	appConfig, err := newAppConfig()
	if err != nil {
		return err
	}
	log.Console()
	if err := cmd.InitGDAL(ctx, appConfig.GDALConfig); err != nil {
		return fmt.Errorf("init gdal: %w", err)
	}
	strategy, err := filesystem.NewFileSystemStrategy(ctx)
	if err != nil {
		return fmt.Errorf("NewFileSystemStrategy: %w", err)
	}
	opts := []grid.Option{grid.WithStorage(strategy)}
	if appConfig.Format != grid.FormatUNDEFINED {
		opts = append(opts, grid.WithFormat(appConfig.Format))
	}
	mode := grid.LoadModeHEADERONLY
	if appConfig.Output != "" || appConfig.Query != "" {
		mode = grid.LoadModeARRAY
		opts = append(opts, grid.WithProgress(progress(ctx)))
	}

	ctx = log.WithGrid(ctx, appConfig.Grid)
	g, err := grid.Load(ctx, appConfig.Grid, mode, opts...)
	if err != nil {
		return err
	}
	defer g.Close()
	fmt.Print(g.Metadata.String())

	if appConfig.Query != "" {
		var lon, lat float64
		if _, err := fmt.Sscanf(appConfig.Query, "%g,%g", &lon, &lat); err != nil {
			return fmt.Errorf("--query: %w", err)
		}
		v, err := g.Interpolate(lon, lat)
		if err != nil {
			return err
		}
		fmt.Printf("values at %g,%g: %v (precision %d)\n", lon, lat, v.V[:v.N], v.Precision)
	}

	if appConfig.Output != "" {
		if err := g.SaveTBC(ctx, appConfig.Output, appConfig.ValueType, appConfig.Encoding); err != nil {
			return err
		}
		log.Logger(ctx).Info("grid converted", zap.String("output", appConfig.Output))
	}
	return nil
}

// progress logs every tenth of the nodes
func progress(ctx context.Context) grid.ProgressFunc {
	last := -1
	return func(done, total int) {
		if total == 0 {
			return
		}
		if tenth := 10 * done / total; tenth != last {
			last = tenth
			log.Logger(ctx).Debug("loading", zap.Int("done", done), zap.Int("total", total))
		}
	}
}

func newAppConfig() (*appConfig, error) {
	appConfig := appConfig{}
	var format, valueType, encoding string
	flag.StringVar(&appConfig.Grid, "grid", "", "path of the grid")
	flag.StringVar(&format, "format", "", "format of the grid, guessed from the extension by default ("+strings.Join(grid.FormatStrings(), ", ")+")")
	flag.StringVar(&appConfig.Query, "query", "", "interpolate the grid at lon,lat (degrees)")
	flag.StringVar(&appConfig.Output, "tbc", "", "convert the grid to a TBC file")
	flag.StringVar(&valueType, "valueType", "FLOAT64", "value type of the TBC file")
	flag.StringVar(&encoding, "encoding", "LITTLEENDIAN", "encoding of the TBC file")
	appConfig.GDALConfig = cmd.GDALConfigFlags()

	flag.Parse()

	if appConfig.Grid == "" {
		return nil, fmt.Errorf("missing --grid flag")
	}
	var err error
	if format != "" {
		if appConfig.Format, err = grid.FormatString(strings.ToUpper(format)); err != nil {
			return nil, fmt.Errorf("--format: %w", err)
		}
	}
	if appConfig.ValueType, err = grid.ValueTypeString(strings.ToUpper(valueType)); err != nil {
		return nil, fmt.Errorf("--valueType: %w", err)
	}
	if appConfig.Encoding, err = grid.EncodingString(strings.ToUpper(encoding)); err != nil {
		return nil, fmt.Errorf("--encoding: %w", err)
	}
	return &appConfig, nil
}

type appConfig struct {
	Grid       string
	Format     grid.Format
	Query      string
	Output     string
	ValueType  grid.ValueType
	Encoding   grid.Encoding
	GDALConfig *cmd.GDALConfig
}
