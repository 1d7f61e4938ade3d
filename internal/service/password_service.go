package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/entropass/entropass/internal/charset"
	"github.com/entropass/entropass/internal/config"
	"github.com/entropass/entropass/internal/entropy"
	"github.com/entropass/entropass/internal/generator"
	"github.com/entropass/entropass/internal/logger"
	"github.com/entropass/entropass/internal/model"
	"github.com/entropass/entropass/internal/weakness"
)

// AuditRecorder persists generation metadata
type AuditRecorder interface {
	Create(ctx context.Context, a *model.GenerationAudit) error
}

// GenerateInput holds a generation request. Nil fields fall back to the
// configured defaults.
type GenerateInput struct {
	Letters          *int
	Symbols          *int
	Numbers          *int
	MinEntropyBits   *float64
	ExcludeAmbiguous *bool
	MaxAttempts      *int

	Source    string
	RequestID string
	ClientIP  string
}

// GenerateOutput is a generation result together with what produced it
type GenerateOutput struct {
	generator.Result
	Composition      generator.Composition
	MinEntropyBits   float64
	ExcludeAmbiguous bool
	Label            string
	Length           int
}

// Policy describes the active generation rules
type Policy struct {
	MinLetters       int                   `json:"minLetters"`
	MinSymbols       int                   `json:"minSymbols"`
	MinNumbers       int                   `json:"minNumbers"`
	MinLength        int                   `json:"minLength"`
	ExcludeAmbiguous bool                  `json:"excludeAmbiguous"`
	LetterPoolSize   int                   `json:"letterPoolSize"`
	SymbolPoolSize   int                   `json:"symbolPoolSize"`
	NumberPoolSize   int                   `json:"numberPoolSize"`
	Defaults         generator.Composition `json:"defaults"`
	MinEntropyBits   float64               `json:"minEntropyBits"`
	DefaultBits      float64               `json:"defaultEntropyBits"`
	MaxAttempts      int                   `json:"maxAttempts"`
}

// PasswordService generates and checks passwords
type PasswordService struct {
	strict  charset.Pools
	relaxed charset.Pools
	weak    *weakness.Set
	src     generator.Source
	audit   AuditRecorder
	cfg     config.GeneratorConfig
	log     *logger.Logger
	now     func() time.Time
}

// NewPasswordService creates a new PasswordService. audit may be nil, in
// which case nothing is recorded. src may be nil to use crypto/rand.
func NewPasswordService(src generator.Source, audit AuditRecorder, cfg config.GeneratorConfig, log *logger.Logger) *PasswordService {
	weak := weakness.DefaultSet()
	if len(cfg.WeakPasswords) > 0 {
		weak = weakness.NewSet(cfg.WeakPasswords...)
	}
	if src == nil {
		src = generator.NewCryptoSource()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = generator.DefaultMaxAttempts
	}

	log = log.WithComponent("password_service")
	log.Debug().Int("weak_passwords", weak.Len()).Int("max_attempts", cfg.MaxAttempts).Msg("password service configured")

	return &PasswordService{
		strict:  charset.BuildPools(true),
		relaxed: charset.BuildPools(false),
		weak:    weak,
		src:     src,
		audit:   audit,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Generate validates the requested composition and runs the generator.
// A run that exhausts its attempts is returned with Secure false, not as an
// error.
func (s *PasswordService) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	comp := generator.Composition{
		Letters: intOr(in.Letters, s.cfg.Letters),
		Symbols: intOr(in.Symbols, s.cfg.Symbols),
		Numbers: intOr(in.Numbers, s.cfg.Numbers),
	}
	if err := comp.Validate(); err != nil {
		return nil, err
	}

	minBits := s.cfg.MinEntropyBits
	if in.MinEntropyBits != nil {
		minBits = *in.MinEntropyBits
	}
	exclude := s.cfg.ExcludeAmbiguous
	if in.ExcludeAmbiguous != nil {
		exclude = *in.ExcludeAmbiguous
	}
	attempts := intOr(in.MaxAttempts, s.cfg.MaxAttempts)

	gen := generator.New(s.pools(exclude), s.weak, s.src, generator.WithMaxAttempts(attempts))
	res, err := gen.Generate(ctx, comp, minBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	log := s.log
	if in.RequestID != "" {
		log = log.WithRequestID(in.RequestID)
	}
	log.Generation(logger.GenerationEvent{
		Letters:          comp.Letters,
		Symbols:          comp.Symbols,
		Numbers:          comp.Numbers,
		ExcludeAmbiguous: exclude,
		MinEntropyBits:   minBits,
		EntropyBits:      res.EntropyBits,
		Secure:           res.Secure,
		Attempts:         res.Attempts,
	})

	s.record(ctx, in, comp, exclude, minBits, res)

	return &GenerateOutput{
		Result:           *res,
		Composition:      comp,
		MinEntropyBits:   minBits,
		ExcludeAmbiguous: exclude,
		Label:            entropy.Label(res.EntropyBits, minBits),
		Length:           len([]rune(res.Password)),
	}, nil
}

// Check runs the weakness checks against a password
func (s *PasswordService) Check(password string) weakness.Report {
	return weakness.Inspect(password, s.weak)
}

// Policy returns the generation rules for the given ambiguity setting
func (s *PasswordService) Policy(excludeAmbiguous bool) Policy {
	pools := s.pools(excludeAmbiguous)
	defaults := generator.Composition{Letters: s.cfg.Letters, Symbols: s.cfg.Symbols, Numbers: s.cfg.Numbers}
	defaultBits := entropy.EstimateBits(
		defaults.Letters, defaults.Symbols, defaults.Numbers,
		pools.Letters.Size(), pools.Symbols.Size(), pools.Digits.Size(),
	)
	return Policy{
		MinLetters:       generator.MinLetters,
		MinSymbols:       generator.MinSymbols,
		MinNumbers:       generator.MinNumbers,
		MinLength:        generator.MinLength,
		ExcludeAmbiguous: excludeAmbiguous,
		LetterPoolSize:   pools.Letters.Size(),
		SymbolPoolSize:   pools.Symbols.Size(),
		NumberPoolSize:   pools.Digits.Size(),
		Defaults:         defaults,
		MinEntropyBits:   s.cfg.MinEntropyBits,
		DefaultBits:      defaultBits,
		MaxAttempts:      s.cfg.MaxAttempts,
	}
}

// DefaultExcludeAmbiguous returns the configured ambiguity default
func (s *PasswordService) DefaultExcludeAmbiguous() bool {
	return s.cfg.ExcludeAmbiguous
}

func (s *PasswordService) pools(excludeAmbiguous bool) charset.Pools {
	if excludeAmbiguous {
		return s.strict
	}
	return s.relaxed
}

// record stores generation metadata. Failures are logged and do not affect
// the result handed back to the caller.
func (s *PasswordService) record(ctx context.Context, in GenerateInput, comp generator.Composition, exclude bool, minBits float64, res *generator.Result) {
	if s.audit == nil {
		return
	}

	source := in.Source
	if source == "" {
		source = model.SourceCLI
	}
	a := &model.GenerationAudit{
		ID:               uuid.New().String(),
		RequestID:        optional(in.RequestID),
		Source:           source,
		Letters:          comp.Letters,
		Symbols:          comp.Symbols,
		Numbers:          comp.Numbers,
		ExcludeAmbiguous: exclude,
		MinEntropyBits:   minBits,
		EntropyBits:      res.EntropyBits,
		Secure:           res.Secure,
		Attempts:         res.Attempts,
		ClientIP:         optional(in.ClientIP),
		CreatedAt:        s.now(),
	}
	if err := s.audit.Create(ctx, a); err != nil {
		s.log.Error().Err(err).Msg("failed to record generation audit")
	}
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
