package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mmrzaf/fixgen/internal/domain"
	"github.com/mmrzaf/fixgen/internal/generate"
	"github.com/mmrzaf/fixgen/internal/hashing"
	"github.com/mmrzaf/fixgen/internal/infra/shapes"
	"github.com/mmrzaf/fixgen/internal/infra/sinks"
	"github.com/mmrzaf/fixgen/internal/output"
	"github.com/mmrzaf/fixgen/internal/validation"
)

const insertBatchSize = 1000

// Service orchestrates one generation run: load shape, validate,
// generate, deliver to a sink or writer, summarize.
type Service struct {
	shapeRepo shapes.Repository
	sinkReg   *sinks.Registry
	gen       *generate.Generator
	log       *zap.SugaredLogger
}

func NewService(shapeRepo shapes.Repository, sinkReg *sinks.Registry, gen *generate.Generator, log *zap.SugaredLogger) *Service {
	return &Service{
		shapeRepo: shapeRepo,
		sinkReg:   sinkReg,
		gen:       gen,
		log:       log,
	}
}

// RunRequest describes one run. Exactly one of Shape or ShapeRef must be
// set; exactly one of TargetDSN or Out must be set.
type RunRequest struct {
	Shape    *domain.Shape
	ShapeRef string // shape name, or a path inside the shapes dir

	Config domain.Config
	Count  *int   // overrides the shape's row default
	Seed   *int64 // overrides both Config.Seed and the shape's seed

	TargetDSN string // DB sink destination
	Table     string // overrides the shape's table
	Truncate  bool

	Format string // jsonl or csv, when writing to Out
	Out    io.Writer
}

func (s *Service) Run(req *RunRequest) (*domain.RunSummary, error) {
	shape, err := s.loadShape(req)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateShape(shape); err != nil {
		return nil, fmt.Errorf("shape %q: %w", shape.Name, err)
	}

	cfg := req.Config
	if shape.Seed != nil {
		cfg.Seed = *shape.Seed
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}

	total := shape.Rows
	if req.Count != nil {
		total = *req.Count
	}

	fingerprint, err := hashing.Fingerprint(shape, cfg, total)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}

	s.log.Infow("generating records",
		"shape", shape.Name, "rows", total, "seed", cfg.Seed, "fingerprint", fingerprint)

	started := time.Now()
	records, err := s.gen.Generate(shape, cfg, total)
	if err != nil {
		return nil, err
	}

	destination, err := s.deliver(req, shape, records)
	if err != nil {
		return nil, err
	}

	summary := &domain.RunSummary{
		Shape:           shape.Name,
		Rows:            len(records),
		Seed:            cfg.Seed,
		Fingerprint:     fingerprint,
		Destination:     destination,
		DurationSeconds: time.Since(started).Seconds(),
	}
	s.log.Infow("run complete",
		"shape", summary.Shape, "rows", summary.Rows, "destination", summary.Destination)
	return summary, nil
}

func (s *Service) loadShape(req *RunRequest) (*domain.Shape, error) {
	if req.Shape != nil {
		return req.Shape, nil
	}
	if req.ShapeRef == "" {
		return nil, errors.New("no shape given")
	}
	if strings.ContainsAny(req.ShapeRef, "/\\") || strings.HasSuffix(req.ShapeRef, ".yaml") ||
		strings.HasSuffix(req.ShapeRef, ".yml") || strings.HasSuffix(req.ShapeRef, ".json") {
		return s.shapeRepo.GetByPath(req.ShapeRef)
	}
	return s.shapeRepo.Get(req.ShapeRef)
}

func (s *Service) deliver(req *RunRequest, shape *domain.Shape, records []domain.Record) (string, error) {
	if req.TargetDSN != "" {
		return req.TargetDSN, s.writeSink(req, shape, records)
	}
	if req.Out == nil {
		return "", errors.New("no destination given")
	}

	switch req.Format {
	case "", "jsonl":
		return "jsonl", output.WriteJSONL(req.Out, shape, records)
	case "csv":
		return "csv", output.WriteCSV(req.Out, shape, records)
	case "table":
		return "table", output.WriteTable(req.Out, shape, records)
	default:
		return "", fmt.Errorf("unknown output format: %s", req.Format)
	}
}

func (s *Service) writeSink(req *RunRequest, shape *domain.Shape, records []domain.Record) error {
	kind, err := sinks.InferKind(req.TargetDSN)
	if err != nil {
		return err
	}
	sink, err := s.sinkReg.Open(kind, req.TargetDSN)
	if err != nil {
		return err
	}
	if err := sink.Connect(); err != nil {
		return fmt.Errorf("connect %s sink: %w", kind, err)
	}
	defer sink.Close()

	table := shape.TargetTable()
	if req.Table != "" {
		table = req.Table
	}
	// EnsureTable follows the shape's declared table; honor an explicit
	// override by rewriting it on a copy.
	target := *shape
	target.Table = table

	if err := sink.EnsureTable(&target); err != nil {
		return fmt.Errorf("ensure table %q: %w", table, err)
	}
	if req.Truncate {
		if err := sink.Truncate(table); err != nil {
			return fmt.Errorf("truncate table %q: %w", table, err)
		}
	}

	columns := shape.FieldNames()
	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		if err := sink.InsertBatch(table, columns, records[start:end]); err != nil {
			return fmt.Errorf("insert batch into %q: %w", table, err)
		}
		s.log.Debugw("batch inserted", "table", table, "rows", end-start)
	}
	return nil
}
