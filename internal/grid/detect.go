package grid

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/geoshift/interface/storage"
	"github.com/airbusgeo/geoshift/internal/geodesy"
)

var extensions = map[string]Format{
	".tac":  FormatTAC,
	".tbc":  FormatTBC,
	".gsa":  FormatNTV2ASCII,
	".gsb":  FormatNTV2BINARY,
	".gri":  FormatGRAVSOFT,
	".asc":  FormatESRI,
	".egm":  FormatEGM,
	".gtx":  FormatGTXBINARY,
	".gtxa": FormatGTXASCII,
	".dis":  FormatDIS,
	".tif":  FormatGDAL,
	".tiff": FormatGDAL,
	".vrt":  FormatGDAL,
}

// DetectFormat returns the format of a grid file from its extension.
// .grd files are either Surfer ASCII grids (DSAA magic) or EGM grids.
func DetectFormat(ctx context.Context, path string, s storage.Strategy) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	if ext != ".grd" {
		return FormatUNDEFINED, geodesy.NewLoadError(path, "unrecognized grid type: %s", path)
	}
	r, err := s.OpenReaderAt(ctx, path)
	if err != nil {
		return FormatUNDEFINED, geodesy.Wrap(geodesy.LoadError, err, "cannot open %s", path)
	}
	defer r.Close()
	magic := make([]byte, 4)
	if n, _ := r.ReadAt(magic, 0); n == len(magic) && bytes.Equal(magic, []byte("DSAA")) {
		return FormatSURFER, nil
	}
	return FormatEGM, nil
}
