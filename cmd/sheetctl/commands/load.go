package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// loadTasks liest einen Aufgaben-Export. YAML ist eine Obermenge von JSON, daher genügt ein Decoder;
// danach läuft der Wert einmal durch JSON, damit die json-Tags der Entitäten gelten.
func loadTasks(r io.Reader) ([]entity.TaskEntity, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse task dump: %w", err)
	}
	if doc == nil {
		return []entity.TaskEntity{}, nil
	}

	// Erlaubt sowohl eine reine Liste als auch {"tasks": [...]}.
	if m, ok := doc.(map[string]any); ok {
		tasks, found := m["tasks"]
		if !found {
			return nil, fmt.Errorf("task dump has no tasks list")
		}
		doc = tasks
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize task dump: %w", err)
	}

	var tasks []entity.TaskEntity
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	if tasks == nil {
		tasks = []entity.TaskEntity{}
	}
	return tasks, nil
}

func loadTasksFile(path string) ([]entity.TaskEntity, error) {
	if path == "-" {
		return loadTasks(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return loadTasks(f)
}
