package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/spf13/afero"

	"interview-copilot/answer_bank"
	"interview-copilot/answer_engine"
	"interview-copilot/audio_capture"
	"interview-copilot/clients/llm"
	"interview-copilot/config"
	"interview-copilot/projects"
	"interview-copilot/question_finder"
	"interview-copilot/session"
	"interview-copilot/speech_to_text"
)

func main() {
	modelFlag := flag.String("m", "", "model file for whisper (overrides stt.model_path)")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	modelPath := cfg.STT.ModelPath
	if *modelFlag != "" {
		modelPath = *modelFlag
	}

	// Load model
	model, err := whisper.New(modelPath)
	if err != nil {
		log.Fatalf("error loading model: %v", err)
	}

	defer model.Close()

	sttEngine, err := speech_to_text.New(&speech_to_text.Config{
		Model: model,
	})
	if err != nil {
		log.Fatalf("error with speech_to_text.New: %v", err)
	}

	fileSys := afero.NewOsFs()

	resumeText := loadTextOrEmpty(fileSys, cfg.Paths.Resume)
	jdText := loadTextOrEmpty(fileSys, cfg.Paths.JD)

	projectList, degraded := projects.Load(fileSys, cfg.Paths.Projects)
	if degraded {
		log.Printf("running without project records")
	}

	bankEntries, degraded := answer_bank.Load(fileSys, cfg.Paths.AnswerBank)
	if degraded {
		log.Printf("running without historical answers")
	}

	retriever, err := answer_bank.NewRetriever(&answer_bank.RetrieverConfig{
		Entries:          bankEntries,
		SimilarityThresh: cfg.Retrieval.SimilarityThresh,
		OverlapThresh:    cfg.Retrieval.OverlapThresh,
	})
	if err != nil {
		log.Fatalf("error with answer_bank.NewRetriever: %v", err)
	}

	llmClient, err := llm.NewFromConfig(&llm.FactoryConfig{
		Provider:     cfg.LLM.Provider,
		Model:        cfg.LLM.Model,
		OpenAIAPIKey: cfg.OpenAIKey(),
		OllamaHost:   cfg.LLM.Host,
		Timeout:      time.Duration(cfg.LLM.TimeoutS) * time.Second,
	})
	if err != nil {
		log.Fatalf("error with llm.NewFromConfig: %v", err)
	}

	engine, err := answer_engine.New(&answer_engine.Config{
		LLMClient:  llmClient,
		Retriever:  retriever,
		Role:       cfg.Role,
		ResumeText: resumeText,
		JDText:     jdText,
		Projects:   projectList,
	})
	if err != nil {
		log.Fatalf("error with answer_engine.New: %v", err)
	}

	capture, err := audio_capture.New(&audio_capture.Config{
		DeviceIndex: cfg.Audio.InputDevice,
		SampleRate:  cfg.Audio.Rate,
		Channels:    cfg.Audio.Channels,
		ChunkMs:     cfg.Audio.ChunkMs,
	})
	if err != nil {
		log.Fatalf("error with audio_capture.New: %v", err)
	}

	loop, err := session.New(&session.Config{
		Chunks:      capture.Chunks(),
		STTEngine:   sttEngine,
		Engine:      engine,
		Finder:      question_finder.New(nil),
		FileSys:     fileSys,
		SampleRate:  cfg.Audio.Rate,
		Channels:    cfg.Audio.Channels,
		WindowS:     cfg.Streaming.WindowS,
		StepS:       cfg.Streaming.StepS,
		RMSThresh:   cfg.Streaming.VADRMSThresh,
		MinSpeechMs: cfg.Streaming.MinSpeechMs,
		SessionsDir: cfg.Paths.Sessions,
	})
	if err != nil {
		log.Fatalf("error with session.New: %v", err)
	}

	// the capture goroutine stops first on SIGINT; its channel close drains
	// the loop, so the transcript is written only after capture has exited
	stop := make(chan struct{})

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigC
		log.Printf("shutting down")
		close(stop)
	}()

	captureErr := make(chan error, 1)

	go func() {
		captureErr <- capture.Run(stop)
	}()

	if err := loop.Run(context.Background()); err != nil {
		log.Fatalf("error: %v", err)
	}

	if err := <-captureErr; err != nil {
		log.Fatalf("error capturing audio: %v", err)
	}
}

func loadTextOrEmpty(fileSys afero.Fs, path string) string {
	data, err := afero.ReadFile(fileSys, path)
	if err != nil {
		log.Printf("no file at %s, continuing without it", path)

		return ""
	}

	return string(data)
}
