package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// boxSchema describes a single bounding box argument.
func boxSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// detectionListSchema describes an ordered list of detections.
func detectionListSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"box": boxSchema("Bounding box of the detection"),
				"class": map[string]interface{}{
					"description": "Object class name (face, weapon, mask) or numeric tag (0, 1, 2)",
				},
			},
			"required": []string{"box"},
		},
	}
}

// thresholdSchema describes the IoU threshold argument shared by the
// dedupe and fuse tools.
func thresholdSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Minimum IoU (0.0-1.0) at which two boxes count as the same object. Default 0.45",
		"default":     0.45,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Frame Handling
		{
			Name:        "frame_load",
			Description: "Load an image file into the frame cache and return its dimensions and channel layout. Subsequent frame and visualization tools reuse the cached frame.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"layout": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"gray", "rgb", "bgr"},
						"description": "Channel layout to decode into. Default rgb",
						"default":     "rgb",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "frame_convert_layout",
			Description: "Reorder the channels of a cached frame in place (rgb to bgr or back). Fails if the frame is not in the expected source layout; converting twice is an error, not a silent double swap.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path of a previously loaded frame (loaded on demand if absent)",
					},
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgb", "bgr"},
						"description": "Target channel layout",
					},
				},
				"required": []string{"path", "to"},
			},
		},

		// Detection Post-Processing
		{
			Name:        "detections_iou",
			Description: "Compute the Intersection-over-Union overlap ratio (0.0-1.0) of two bounding boxes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"box1": boxSchema("First box"),
					"box2": boxSchema("Second box"),
				},
				"required": []string{"box1", "box2"},
			},
		},
		{
			Name:        "detections_dedupe",
			Description: "Collapse duplicate detections of the same object within one detector's output. Keeps the earliest box of each overlap cluster and drops the rest; surviving boxes keep their original order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"detections": detectionListSchema("Detection set in detector output order; earlier boxes win"),
					"threshold":  thresholdSchema(),
				},
				"required": []string{"detections"},
			},
		},
		{
			Name:        "detections_fuse",
			Description: "Merge the detection sets of two detectors that observed the same image. Overlapping pairs become their coordinate envelope; boxes unique to either side are kept. Argument order matters: primary seeds the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"primary":   detectionListSchema("Detection set that seeds the result and wins ties"),
					"secondary": detectionListSchema("Detection set folded into the result"),
					"threshold": thresholdSchema(),
				},
				"required": []string{"primary", "secondary"},
			},
		},

		// Visualization
		{
			Name:        "detections_crop",
			Description: "Crop one detected region from a loaded frame and return it as base64-encoded PNG. Use this to zoom into a single detection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path of the frame to crop",
					},
					"box": boxSchema("Region to extract"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "box"},
			},
		},
		{
			Name:        "detections_annotate",
			Description: "Render a detection set onto its frame: color-coded box outlines with class labels, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path of the frame to annotate",
					},
					"detections": detectionListSchema("Detections to draw"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the output image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "detections"},
			},
		},
	}
}
