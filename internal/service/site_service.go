package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/curtsdirt/site/internal/config"
	"github.com/curtsdirt/site/internal/contact"
	"github.com/curtsdirt/site/internal/estimate"
	"github.com/curtsdirt/site/internal/model"
)

type DocumentGenerator interface {
	Generate(doc model.EstimateDocument) ([]byte, error)
}

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatXLSX DocumentFormat = "xlsx"
)

var contentTypes = map[DocumentFormat]string{
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func ParseDocumentFormat(raw string) (DocumentFormat, error) {
	switch DocumentFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, raw)
	}
}

type SiteService struct {
	estimator  *estimate.Estimator
	composer   *contact.Composer
	generators map[DocumentFormat]DocumentGenerator
	business   model.Business
	defaults   model.DimensionInput
	depths     []float64
	now        func() time.Time
}

type DocumentResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

func NewSiteService(cfg *config.Config, business model.Business, pdf, excel DocumentGenerator) *SiteService {
	return &SiteService{
		estimator: estimate.New(cfg.Estimate.TonsPerYard),
		composer:  contact.NewComposer(cfg.Business.ContactEmail),
		generators: map[DocumentFormat]DocumentGenerator{
			FormatPDF:  pdf,
			FormatXLSX: excel,
		},
		business: business,
		defaults: model.DimensionInput{
			Length: cfg.Estimate.DefaultLength,
			Width:  cfg.Estimate.DefaultWidth,
			Depth:  cfg.Estimate.DefaultDepth,
		},
		depths: cfg.Estimate.DepthTable,
		now:    time.Now,
	}
}

// WithInputDefaults fills fields the visitor has not supplied yet. A field
// that is present but empty stays empty and estimates as zero.
func (s *SiteService) WithInputDefaults(input model.DimensionInput, present func(field string) bool) model.DimensionInput {
	if !present("length") {
		input.Length = s.defaults.Length
	}
	if !present("width") {
		input.Width = s.defaults.Width
	}
	if !present("depth") {
		input.Depth = s.defaults.Depth
	}
	return input
}

// Estimate is recomputed on every call; results are never cached.
func (s *SiteService) Estimate(input model.DimensionInput) model.VolumeEstimate {
	return s.estimator.Estimate(input)
}

func (s *SiteService) Display(est model.VolumeEstimate) estimate.Display {
	return estimate.NewDisplay(est.CubicYards, est.RecommendedYards, est.Tons, est.TonsPerYard)
}

func (s *SiteService) ComposeContact(req model.ContactRequest) model.MailDraft {
	return s.composer.Compose(req)
}

func (s *SiteService) ExportEstimate(ctx context.Context, input model.DimensionInput, format DocumentFormat) (*DocumentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	generator, ok := s.generators[format]
	if !ok || generator == nil {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, format)
	}

	est := s.estimator.Estimate(input)
	if !(est.CubicYards > 0) {
		return nil, ErrEmptyArea
	}

	doc := model.EstimateDocument{
		Reference:  newReference(),
		CreatedAt:  s.now(),
		Business:   s.business,
		Estimate:   est,
		DepthTable: s.estimator.DepthTable(est.LengthFeet, est.WidthFeet, s.depths),
	}

	content, err := generator.Generate(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, format, err)
	}

	return &DocumentResult{
		FileName:    buildFileName(doc, format),
		ContentType: contentTypes[format],
		Content:     content,
	}, nil
}

func newReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "EST-" + strings.ToUpper(id[:8])
}

func buildFileName(doc model.EstimateDocument, format DocumentFormat) string {
	dims := fmt.Sprintf("%sx%sx%s",
		formatDimension(doc.Estimate.LengthFeet),
		formatDimension(doc.Estimate.WidthFeet),
		formatDimension(doc.Estimate.DepthInches),
	)
	return fmt.Sprintf("topsoil-estimate-%s-%s.%s", sanitizeFileName(dims), strings.ToLower(doc.Reference), format)
}

func formatDimension(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_', r == '.':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
