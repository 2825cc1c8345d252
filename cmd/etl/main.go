package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"yvrfountains/internal/db"
	"yvrfountains/internal/domain/storage"
	"yvrfountains/internal/etl"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type importOptions struct {
	csvPath   string
	city      string
	dataset   string
	sourceURL string
	dryRun    bool
}

func parseFlags() importOptions {
	var opts importOptions
	flag.StringVar(&opts.csvPath, "csv", "", "path to the city's CSV export (required)")
	flag.StringVar(&opts.city, "city", "Vancouver", "city the dataset belongs to")
	flag.StringVar(&opts.dataset, "dataset", "", "dataset name, e.g. drinking-fountains (required)")
	flag.StringVar(&opts.sourceURL, "source-url", "", "URL the export was downloaded from")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "parse and validate rows without touching the database")
	flag.Parse()
	return opts
}

func newLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func main() {
	opts := parseFlags()
	if opts.csvPath == "" || opts.dataset == "" {
		flag.Usage()
		os.Exit(2)
	}

	// The importer also runs outside the service environment, so a missing
	// .env is fine as long as DB_ADDR is exported.
	_ = godotenv.Load()

	logger, err := newLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(opts, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(opts importOptions, logger *zap.SugaredLogger) error {
	file, err := os.Open(opts.csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // city exports have ragged rows

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	mapping, err := etl.Resolve(header)
	if err != nil {
		return err
	}

	if opts.dryRun {
		return dryRun(reader, mapping, logger)
	}

	maxConns := int32(4)
	if val := os.Getenv("DB_MAX_CONNS"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid value for DB_MAX_CONNS: %w", err)
		}
		maxConns = int32(parsed)
	}

	pool, err := db.NewPool(context.Background(), db.Config{
		Addr:        os.Getenv("DB_ADDR"),
		MaxConns:    maxConns,
		MaxIdleTime: "15m",
		AppName:     "yvrfountains-etl",
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	store := storage.NewContainer(pool)

	batchID := uuid.NewString()
	started := time.Now()
	var created, updated, skipped int

	err = store.WithImportTx(context.Background(), func(tx *storage.ImportTx) error {
		ctx := context.Background()

		city, err := tx.Sources.GetOrCreateCity(ctx, opts.city)
		if err != nil {
			return err
		}

		var sourceURL *string
		if opts.sourceURL != "" {
			sourceURL = &opts.sourceURL
		}
		dataset, err := tx.Sources.GetOrCreateDataset(ctx, city.ID, opts.dataset, "csv", sourceURL)
		if err != nil {
			return err
		}

		line := 1 // header was line 1
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("reading line %d: %w", line+1, err)
			}
			line++

			fountain, err := mapping.Fountain(record, city.ID, dataset.ID)
			if err != nil {
				// Bad rows are a property of the export, not the batch.
				logger.Warnw("skipping row", "batch_id", batchID, "line", line, "error", err)
				skipped++
				continue
			}

			wasCreated, err := tx.Fountains.UpsertByOriginalRef(ctx, fountain)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			if wasCreated {
				created++
			} else {
				updated++
			}
		}

		return tx.Sources.MarkLoaded(ctx, dataset.ID)
	})
	if err != nil {
		return err
	}

	logger.Infow("import complete",
		"batch_id", batchID,
		"city", opts.city,
		"dataset", opts.dataset,
		"created", created,
		"updated", updated,
		"skipped", skipped,
		"duration", time.Since(started).String(),
	)
	return nil
}

// dryRun walks the file with the same row builder the import uses, so a
// pass here means the real run will accept the same rows.
func dryRun(reader *csv.Reader, mapping etl.Mapping, logger *zap.SugaredLogger) error {
	var ok, skipped int
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading line %d: %w", line+1, err)
		}
		line++

		if _, err := mapping.Fountain(record, 1, 1); err != nil {
			logger.Warnw("row would be skipped", "line", line, "error", err)
			skipped++
			continue
		}
		ok++
	}

	logger.Infow("dry run complete", "valid", ok, "skipped", skipped)
	return nil
}
