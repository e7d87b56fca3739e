package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/catalog"
	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	company := flag.String("company", "", "target organization")
	role := flag.String("role", "", "target role")
	experience := flag.String("experience", string(models.LevelFresher), "Fresher or Experienced")
	flag.Parse()

	if *company == "" || *role == "" || flag.NArg() == 0 {
		log.Fatalf("usage: evaluate_resumes -company TCS -role \"Software Developer\" [-experience Fresher] resume.pdf...")
	}

	log.Println("🚀 Starting batch evaluation...")

	// Load configuration
	cfg := config.Load()

	skillCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("❌ Failed to load skill catalog: %v", err)
	}
	if len(skillCatalog.Lookup(*company, *role)) == 0 {
		log.Printf("⚠️  %s / %s is not in the catalog, every score will be 0", *company, *role)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	analyzer := services.NewAnalyzerService(
		repositories.NewHistoryRepository(db),
		services.NewEvaluatorService(skillCatalog),
		services.NewPDFParserService(cfg.Storage.ExtractTimeout),
		nil,
	)

	ctx := context.Background()

	successCount := 0
	failCount := 0

	for _, path := range flag.Args() {
		log.Printf("\n📄 Processing: %s", path)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}
		log.Printf("   📖 Read %d bytes", len(data))

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		analysis, err := analyzer.Analyze(ctx, services.Submission{
			Name:         name,
			Organization: *company,
			Role:         *role,
			Experience:   *experience,
			Resume:       data,
		})
		if err != nil && !(analysis != nil && errors.Is(err, models.ErrStorage)) {
			log.Printf("   ❌ Analysis failed: %v", err)
			failCount++
			continue
		}
		if err != nil {
			log.Printf("   ⚠️  Not saved to history: %v", err)
		}

		result := analysis.Result
		log.Printf("   📊 Score: %d%%", result.Score)
		log.Printf("   Found: %s", strings.Join(result.FoundSkills, ", "))
		log.Printf("   Missing: %s", strings.Join(result.MissingSkills, ", "))
		for _, note := range result.ATSNotes {
			log.Printf("   ATS: %s", note)
		}
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Evaluation Summary:")
	log.Printf("   ✅ Successful: %d resumes", successCount)
	log.Printf("   ❌ Failed: %d resumes", failCount)
	log.Println(strings.Repeat("=", 60))

	records, err := analyzer.History()
	if err != nil {
		log.Printf("❌ Failed to load history: %v", err)
	} else {
		log.Printf("🕘 History (%d entries, newest first):", len(records))
		for _, record := range records {
			log.Printf("   %s", record.Summary())
		}
	}

	if failCount > 0 {
		log.Println("⚠️  Some resumes could not be evaluated. Please check the logs above.")
		os.Exit(1)
	}
}
