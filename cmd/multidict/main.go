package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"multidict/internal/config"
	"multidict/internal/dictionary"
	"multidict/internal/gui"
	"multidict/internal/llm"
	"multidict/internal/logger"
	"multidict/internal/search"
)

const (
	AppName = "Multi-Source English Dictionary"
	AppID   = "com.multidict.app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))
	appLogger.Info("app", "application starting", map[string]interface{}{
		"model":      cfg.LLM.Model,
		"dictionary": cfg.Dictionary.BaseURL,
	})

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(gui.NewTheme(cfg.UI))

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.UI.WindowWidth, cfg.UI.WindowHeight))
	window.CenterOnScreen()

	dictClient := dictionary.NewClient(cfg.Dictionary.BaseURL, appLogger)
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.APIKey, appLogger)
	defer func() {
		_ = dictClient.Close()
		_ = llmClient.Close()
	}()

	results := gui.NewResultsView()
	warning := gui.NewInputWarning(window)

	// fyne.Do marshals the background LLM hand-off onto the interactive
	// thread; nothing else touches the display off-thread.
	orchestrator := search.NewOrchestrator(dictClient, llmClient, results, warning, fyne.Do, appLogger)

	searchBar := gui.NewSearchBar(orchestrator.OnSearch)

	window.SetContent(container.NewBorder(
		searchBar.GetContainer(), // top
		nil, nil, nil,
		results.GetContainer(), // center
	))

	window.ShowAndRun()
}
