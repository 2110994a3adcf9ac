package main

import (
	"context"
	"flag"
	"time"

	"leadscore_backend/internal/scoring"
	"leadscore_backend/internal/training"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/modelstore"
)

func main() {
	configPath := flag.String("config", "", "path to YAML training config")
	count := flag.Int("count", 0, "number of synthetic leads to generate (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	modelDir := flag.String("out", "", "model artifact output directory (overrides config)")
	upload := flag.Bool("upload", false, "upload artifacts to the configured model bucket")
	flag.Parse()

	log := logger.New("development")

	trainCfg, err := training.LoadConfig(*configPath)
	if err != nil {
		log.Error("failed to load training config", "error", err)
		panic("failed to load training config: " + err.Error())
	}
	if *count > 0 {
		trainCfg.Count = *count
	}
	if *seed != 0 {
		trainCfg.Seed = *seed
	}
	if *modelDir != "" {
		trainCfg.ModelDir = *modelDir
	}

	start := time.Now()
	log.Info("generating synthetic leads", "count", trainCfg.Count, "seed", trainCfg.Seed)
	samples := training.Generate(trainCfg.Seed, trainCfg.Count)

	if err := training.WriteCSV(trainCfg.DataPath, samples); err != nil {
		log.Error("failed to write dataset", "error", err)
		panic("failed to write dataset: " + err.Error())
	}
	log.Info("dataset written", "path", trainCfg.DataPath)

	result, err := training.Train(trainCfg, samples)
	if err != nil {
		log.Error("training failed", "error", err)
		panic("training failed: " + err.Error())
	}

	if err := scoring.SaveArtifacts(trainCfg.ModelDir, result.Artifacts); err != nil {
		log.Error("failed to save artifacts", "error", err)
		panic("failed to save artifacts: " + err.Error())
	}

	log.Info("training complete",
		"trainSize", result.TrainSize,
		"testSize", result.TestSize,
		"holdoutAccuracy", result.HoldoutAccuracy,
		"modelDir", trainCfg.ModelDir,
		"elapsed", time.Since(start).String(),
	)

	if *upload {
		uploadArtifacts(trainCfg.ModelDir, log)
	}
}

func uploadArtifacts(dir string, log *logger.Logger) {
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config for upload", "error", err)
		panic("failed to load config for upload: " + err.Error())
	}
	if !cfg.IsModelStoreEnabled() {
		log.Warn("model store not configured; skipping upload")
		return
	}

	store, err := modelstore.New(cfg)
	if err != nil {
		log.Error("failed to initialize model store", "error", err)
		panic("failed to initialize model store: " + err.Error())
	}

	if err := store.Upload(context.Background(), dir); err != nil {
		log.Error("failed to upload artifacts", "error", err)
		panic("failed to upload artifacts: " + err.Error())
	}
	log.Info("artifacts uploaded", "bucket", cfg.GetModelBucket())
}
