package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"fable/pkg/account"
	"fable/pkg/inference"
	"fable/pkg/pipeline"
	"fable/pkg/server"
	"fable/pkg/story"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	dataDir := os.Getenv("FABLE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	ledger, err := account.OpenLedger(filepath.Join(dataDir, "account.json"))
	if err != nil {
		log.Fatalf("Failed to load account document: %v", err)
	}
	history, err := story.OpenHistory(filepath.Join(dataDir, "stories.json"))
	if err != nil {
		log.Fatalf("Failed to load story history: %v", err)
	}
	log.Infof("Loaded %d saved stories", history.Len())

	var gen inference.Generator
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		gemini, err := inference.NewGeminiGenerator(ctx, geminiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		gen = gemini
	} else {
		apiKey := os.Getenv("OPENAI_API_KEY")
		openAI := inference.NewOpenAIGenerator(apiKey, os.Getenv("OPENAI_MODEL"))
		if apiKey == "" {
			openAI.ChangeBaseURL("http://localhost:1234/v1")
			openAI.SetModel("")
		}
		gen = openAI
	}

	pipe := pipeline.New(ledger, gen, history)

	srv := server.NewServer(ctx, pipe, account.NewLocalAuth(), account.NewMockPayment())
	srv.Echo.Logger.SetLevel(log.DEBUG)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}
