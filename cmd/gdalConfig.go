package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
)

// GDALConfig configures the GDAL drivers reading the raster grids (GTX, GeoTIFF...)
type GDALConfig struct {
	CacheMax     string
	ChunkSize    string
	StorageDebug bool
	WithGCS      bool
	WithS3       bool
	AwsRegion    string
	AwsEndpoint  string
	// AwsCredentials is the path of the aws shared credentials file
	AwsCredentials string
}

const (
	CacheMax       = "gdalCacheMax"
	ChunkSize      = "gdalChunkSize"
	WithGCS        = "with-gcs"
	WithS3         = "with-s3"
	AWSRegion      = "aws-region"
	AWSEndPoint    = "aws-endpoint"
	AwsCredentials = "aws-shared-credentials-file"
	StorageDebug   = "gdalStorageDebug"
)

func GDALConfigFlags() *GDALConfig {
	gdalConfig := GDALConfig{}
	flag.StringVar(&gdalConfig.CacheMax, CacheMax, "64MB", "gdal raster block cache")
	flag.StringVar(&gdalConfig.ChunkSize, ChunkSize, "1048576", "gdal chunk size of the remote reads, in bytes")
	flag.BoolVar(&gdalConfig.WithGCS, WithGCS, false, "configure GDAL to read grids on gcs (/vsigs/, may need authentication)")
	flag.BoolVar(&gdalConfig.WithS3, WithS3, false, "configure GDAL to read grids on s3 (/vsis3/, may need authentication)")
	flag.StringVar(&gdalConfig.AwsRegion, AWSRegion, "", "define aws_region for GDAL to use s3 storage (--with-s3)")
	flag.StringVar(&gdalConfig.AwsEndpoint, AWSEndPoint, "", "define aws_endpoint for GDAL to use s3 storage (--with-s3)")
	flag.StringVar(&gdalConfig.AwsCredentials, AwsCredentials, "", "define aws_shared_credentials_file for GDAL to use s3 storage (--with-s3)")
	flag.BoolVar(&gdalConfig.StorageDebug, StorageDebug, false, "log the remote accesses of GDAL")
	return &gdalConfig
}

func InitGDAL(ctx context.Context, gdalConfig *GDALConfig) error {
	env := map[string]string{
		"GDAL_DISABLE_READDIR_ON_OPEN": "EMPTY_DIR",
		"GDAL_CACHEMAX":                gdalConfig.CacheMax,
		"CPL_VSIL_CURL_CHUNK_SIZE":     gdalConfig.ChunkSize,
	}
	if gdalConfig.StorageDebug {
		env["CPL_CURL_VERBOSE"] = "YES"
		env["CPL_DEBUG"] = "ON"
	}
	switch {
	case gdalConfig.WithGCS && gdalConfig.WithS3:
		return fmt.Errorf("--%s and --%s are exclusive", WithGCS, WithS3)
	case gdalConfig.WithS3:
		if gdalConfig.AwsRegion != "" {
			env["AWS_REGION"] = gdalConfig.AwsRegion
		}
		if gdalConfig.AwsEndpoint != "" {
			env["AWS_S3_ENDPOINT"] = gdalConfig.AwsEndpoint
		}
		if gdalConfig.AwsCredentials != "" {
			env["CPL_AWS_CREDENTIALS_FILE"] = gdalConfig.AwsCredentials
		}
	case gdalConfig.WithGCS:
		// credentials are read from GOOGLE_APPLICATION_CREDENTIALS
	}
	for k, v := range env {
		if v == "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("setenv %s: %w", k, err)
		}
	}

	godal.RegisterAll()
	return nil
}
