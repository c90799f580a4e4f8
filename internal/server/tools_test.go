package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"frame_load",
		"frame_convert_layout",
		"detections_iou",
		"detections_dedupe",
		"detections_fuse",
		"detections_crop",
		"detections_annotate",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema missing 'properties' object")
			}
			if len(props) == 0 {
				t.Error("InputSchema has no properties")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema missing 'required' list")
			}
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required property %s not defined", name)
				}
			}
		})
	}
}

func TestToolDefinitions_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range GetToolDefinitions() {
		if seen[tool.Name] {
			t.Errorf("duplicate tool name: %s", tool.Name)
		}
		seen[tool.Name] = true
	}
}
