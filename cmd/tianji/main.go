package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/qiansheng/tianji-ai-go/internal/config"
	"github.com/qiansheng/tianji-ai-go/internal/logging"
	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/services"
	"github.com/qiansheng/tianji-ai-go/pkg/interfaces"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		pillars     = flag.String("pillars", "", "four pillars as space-separated glyph pairs, e.g. \"庚子 戊子 甲寅 丙寅\"")
		gender      = flag.String("gender", "male", "chart subject gender: male or female")
		match       = flag.String("match", "", "second chart pillars for a compatibility reading")
		matchGender = flag.String("match-gender", "female", "second chart gender: male or female")
		cast        = flag.Bool("cast", false, "cast a six-line hexagram")
		question    = flag.String("question", "", "question put to the oracle (default from configuration)")
		seed        = flag.String("seed", "", "fixed seed for a reproducible cast")
		selfCheck   = flag.Bool("selfcheck", false, "verify the coin-toss line distribution and exit")
		summary     = flag.Bool("summary", false, "print condensed summaries instead of full records")
	)
	flag.Parse()

	// Pick up TIANJI_ overrides from a local .env; a missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg)

	analyzer := services.NewChartAnalyzerWithConfig(cfg, logger)
	caster := services.NewHexagramCaster(logger)
	matcher := services.NewCompatibilityAnalyzer(logger)

	ctx := context.Background()
	ran := false

	if *pillars != "" && *match == "" {
		ran = true
		req, err := parseRequest(*pillars, *gender)
		if err != nil {
			return err
		}
		analysis, err := analyzer.AnalyzeChart(ctx, req)
		if err != nil {
			return err
		}
		if *summary {
			printAnalysisSummary(analysisSummary(analysis))
		} else if err := printJSON(analysis); err != nil {
			return err
		}
	}

	if *match != "" {
		ran = true
		if *pillars == "" {
			return fmt.Errorf("-match needs -pillars for the first chart")
		}
		first, err := parseRequest(*pillars, *gender)
		if err != nil {
			return err
		}
		second, err := parseRequest(*match, *matchGender)
		if err != nil {
			return err
		}
		result, err := matcher.Analyze(ctx, &models.CompatibilityRequest{First: *first, Second: *second})
		if err != nil {
			return err
		}
		if err := printJSON(result); err != nil {
			return err
		}
	}

	if *cast {
		ran = true
		req := &models.CastRequest{Question: *question}
		if req.Question == "" {
			req.Question = cfg.Divination.DefaultQuestion
		}
		if *seed != "" {
			n, err := strconv.ParseInt(*seed, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid -seed %q: %w", *seed, err)
			}
			req.Seed = &n
		}
		result, err := caster.Cast(ctx, req)
		if err != nil {
			return err
		}
		if *summary {
			printCastSummary(castSummary(result))
		} else if err := printJSON(result); err != nil {
			return err
		}
	}

	if *selfCheck {
		ran = true
		// Per-cast logging would drown the tally, so the self-check casts
		// through a quiet logger.
		quiet := logrus.New()
		quiet.SetLevel(logrus.ErrorLevel)
		quiet.SetFormatter(&logrus.JSONFormatter{})
		if err := runSelfCheck(ctx, services.NewHexagramCaster(quiet), cfg.Divination.SelfCheckCasts); err != nil {
			return err
		}
	}

	if !ran {
		flag.Usage()
		return fmt.Errorf("nothing to do: pass -pillars, -match, -cast or -selfcheck")
	}

	return nil
}

// parseGender normalizes a flag value into a model gender.
func parseGender(s string) (models.Gender, error) {
	switch strings.ToLower(s) {
	case "male":
		return models.GenderMale, nil
	case "female":
		return models.GenderFemale, nil
	}
	return "", fmt.Errorf("gender: want male or female, got %q", s)
}

// parseRequest splits space-separated pillar pairs into an analyze request.
func parseRequest(pillars, gender string) (*models.AnalyzeRequest, error) {
	g, err := parseGender(gender)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(pillars)
	if len(fields) != 4 {
		return nil, fmt.Errorf("pillars: want four glyph pairs, got %d in %q", len(fields), pillars)
	}

	return &models.AnalyzeRequest{
		Year:   fields[0],
		Month:  fields[1],
		Day:    fields[2],
		Hour:   fields[3],
		Gender: g,
	}, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// analysisSummary condenses a full analysis record into its transport shape.
func analysisSummary(a *models.ChartAnalysis) *interfaces.ChartAnalysisResponse {
	favorable := make([]string, 0, len(a.Strength.Favorable))
	for _, e := range a.Strength.Favorable {
		favorable = append(favorable, string(e))
	}
	return &interfaces.ChartAnalysisResponse{
		ID:          a.ID,
		Chart:       a.Chart.String(),
		DayMaster:   string(a.DayMaster),
		Pattern:     a.Pattern.Name,
		Verdict:     string(a.Strength.Verdict),
		Score:       a.Strength.Score,
		Favorable:   favorable,
		GeneratedAt: a.GeneratedAt,
	}
}

// castSummary condenses a cast record into its transport shape.
func castSummary(r *models.CastResult) *interfaces.CastResponse {
	resp := &interfaces.CastResponse{
		ID:          r.ID,
		Question:    r.Question,
		Primary:     r.Primary.Name,
		MovingLines: r.MovingLines,
		CastAt:      r.CastAt,
	}
	if r.Future != nil {
		resp.Future = r.Future.Name
	}
	return resp
}

func printAnalysisSummary(v interfaces.ChartAnalysisInterface) {
	fmt.Printf("Analysis %s\n", v.GetID())
	fmt.Printf("  Chart:      %s\n", v.GetChart())
	fmt.Printf("  Day Master: %s\n", v.GetDayMaster())
	fmt.Printf("  Pattern:    %s\n", v.GetPattern())
	fmt.Printf("  Verdict:    %s (score %s)\n", v.GetVerdict(), v.GetScore().StringFixed(1))
	fmt.Printf("  Favorable:  %s\n", strings.Join(v.GetFavorable(), " "))
}

func printCastSummary(v interfaces.CastInterface) {
	fmt.Printf("Cast %s\n", v.GetID())
	if q := v.GetQuestion(); q != "" {
		fmt.Printf("  Question: %s\n", q)
	}
	fmt.Printf("  Primary:  %s\n", v.GetPrimary())
	if f := v.GetFuture(); f != "" {
		fmt.Printf("  Future:   %s\n", f)
	}
	if moving := v.GetMovingLines(); len(moving) > 0 {
		fmt.Printf("  Moving:   %v\n", moving)
	}
}

// runSelfCheck casts repeatedly and prints the observed line distribution.
// Three fair coins give 1/8 old yin, 3/8 young yang, 3/8 young yin and
// 1/8 old yang.
func runSelfCheck(ctx context.Context, caster *services.HexagramCaster, casts int) error {
	counts := make(map[models.LineValue]int)
	total := 0
	for i := 0; i < casts; i++ {
		result, err := caster.Cast(ctx, &models.CastRequest{})
		if err != nil {
			return fmt.Errorf("self-check cast %d: %w", i+1, err)
		}
		for _, line := range result.Lines {
			counts[line]++
			total++
		}
	}

	fmt.Printf("Self-check: %d casts, %d lines\n", casts, total)
	for _, v := range []models.LineValue{models.LineOldYin, models.LineYoungYang, models.LineYoungYin, models.LineOldYang} {
		share := float64(counts[v]) / float64(total) * 100
		fmt.Printf("  %s (%d): %5.2f%%\n", v.Label(), int(v), share)
	}
	return nil
}
