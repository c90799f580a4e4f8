package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/detection-tools-mcp/internal/detection"
	"github.com/ironsheep/detection-tools-mcp/internal/imaging"
)

// DefaultIoUThreshold is applied when a tool call omits the threshold.
// Reference deployments run their identity decisions in the 0.3-0.5 band.
const DefaultIoUThreshold = 0.45

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "detections_dedupe").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Frame Handling
	case "frame_load":
		return s.handleFrameLoad(args)
	case "frame_convert_layout":
		return s.handleFrameConvertLayout(args)

	// Detection Post-Processing
	case "detections_iou":
		return s.handleDetectionsIoU(args)
	case "detections_dedupe":
		return s.handleDetectionsDedupe(args)
	case "detections_fuse":
		return s.handleDetectionsFuse(args)

	// Visualization
	case "detections_crop":
		return s.handleDetectionsCrop(args)
	case "detections_annotate":
		return s.handleDetectionsAnnotate(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// validateBoxes rejects inverted boxes before they reach the library.
//
// The overlap metric itself tolerates malformed boxes (they degrade to zero
// overlap), but a client sending x1 > x2 has a bug that deserves a clear
// error instead of a geometrically meaningless result.
func validateBoxes(label string, dets []detection.Detection) error {
	for i, d := range dets {
		if !d.Box.Valid() {
			return fmt.Errorf("%s[%d]: inverted box (%d,%d)-(%d,%d)",
				label, i, d.Box.X1, d.Box.Y1, d.Box.X2, d.Box.Y2)
		}
	}
	return nil
}

// validateThreshold rejects thresholds outside [0, 1].
func validateThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v out of range [0, 1]", threshold)
	}
	return nil
}

// === Frame Handling Handlers ===

type frameLoadArgs struct {
	Path   string `json:"path"`
	Layout string `json:"layout"`
}

func (s *Server) handleFrameLoad(args json.RawMessage) (interface{}, error) {
	var a frameLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	layout := imaging.LayoutRGB
	if a.Layout != "" {
		var err error
		layout, err = imaging.ParseLayout(a.Layout)
		if err != nil {
			return nil, err
		}
	}
	frame, err := s.frames.Load(a.Path, layout)
	if err != nil {
		return nil, err
	}
	return frame.Info(), nil
}

type frameConvertLayoutArgs struct {
	Path string `json:"path"`
	To   string `json:"to"`
}

func (s *Server) handleFrameConvertLayout(args json.RawMessage) (interface{}, error) {
	var a frameConvertLayoutArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	target, err := imaging.ParseLayout(a.To)
	if err != nil {
		return nil, err
	}
	frame, err := s.frames.Load(a.Path, imaging.LayoutRGB)
	if err != nil {
		return nil, err
	}
	if err := frame.Convert(target); err != nil {
		return nil, err
	}
	return frame.Info(), nil
}

// === Detection Post-Processing Handlers ===

type detectionsIoUArgs struct {
	Box1 detection.Box `json:"box1"`
	Box2 detection.Box `json:"box2"`
}

// IoUResult contains the overlap ratio of two boxes.
type IoUResult struct {
	IoU     float64 `json:"iou"`
	Overlap bool    `json:"overlap"`
}

func (s *Server) handleDetectionsIoU(args json.RawMessage) (interface{}, error) {
	var a detectionsIoUArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	for i, b := range []detection.Box{a.Box1, a.Box2} {
		if !b.Valid() {
			return nil, fmt.Errorf("box%d: inverted box (%d,%d)-(%d,%d)",
				i+1, b.X1, b.Y1, b.X2, b.Y2)
		}
	}
	iou := detection.IoU(a.Box1, a.Box2)
	return &IoUResult{IoU: iou, Overlap: iou > 0}, nil
}

type detectionsDedupeArgs struct {
	Detections []detection.Detection `json:"detections"`
	Threshold  *float64              `json:"threshold"`
}

// DedupeResult contains a cleaned detection set.
type DedupeResult struct {
	// Detections is the surviving subset, in original relative order.
	Detections []detection.Detection `json:"detections"`

	// Count is the number of surviving detections.
	Count int `json:"count"`

	// Removed is the number of detections dropped as duplicates.
	Removed int `json:"removed"`
}

func (s *Server) handleDetectionsDedupe(args json.RawMessage) (interface{}, error) {
	var a detectionsDedupeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold := DefaultIoUThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	if err := validateBoxes("detections", a.Detections); err != nil {
		return nil, err
	}

	cleaned := detection.SuppressDuplicates(a.Detections, threshold)
	return &DedupeResult{
		Detections: cleaned,
		Count:      len(cleaned),
		Removed:    len(a.Detections) - len(cleaned),
	}, nil
}

type detectionsFuseArgs struct {
	Primary   []detection.Detection `json:"primary"`
	Secondary []detection.Detection `json:"secondary"`
	Threshold *float64              `json:"threshold"`
}

// FuseResult contains a consolidated detection set.
type FuseResult struct {
	// Detections is the fused set: primary order first, unmatched
	// secondary boxes appended.
	Detections []detection.Detection `json:"detections"`

	// Count is the number of detections in the fused set.
	Count int `json:"count"`

	// Merged is the number of secondary detections absorbed into an
	// existing entry rather than appended.
	Merged int `json:"merged"`
}

func (s *Server) handleDetectionsFuse(args json.RawMessage) (interface{}, error) {
	var a detectionsFuseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold := DefaultIoUThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	if err := validateBoxes("primary", a.Primary); err != nil {
		return nil, err
	}
	if err := validateBoxes("secondary", a.Secondary); err != nil {
		return nil, err
	}

	fused := detection.Fuse(a.Primary, a.Secondary, threshold)
	return &FuseResult{
		Detections: fused,
		Count:      len(fused),
		Merged:     len(a.Primary) + len(a.Secondary) - len(fused),
	}, nil
}

// === Visualization Handlers ===

type detectionsCropArgs struct {
	Path  string        `json:"path"`
	Box   detection.Box `json:"box"`
	Scale float64       `json:"scale"`
}

func (s *Server) handleDetectionsCrop(args json.RawMessage) (interface{}, error) {
	var a detectionsCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	frame, err := s.frames.Load(a.Path, imaging.LayoutRGB)
	if err != nil {
		return nil, err
	}
	region := imaging.Region{X1: a.Box.X1, Y1: a.Box.Y1, X2: a.Box.X2, Y2: a.Box.Y2}
	return imaging.CropRegion(frame.Image(), region, a.Scale)
}

type detectionsAnnotateArgs struct {
	Path       string                `json:"path"`
	Detections []detection.Detection `json:"detections"`
	Scale      float64               `json:"scale"`
}

func (s *Server) handleDetectionsAnnotate(args json.RawMessage) (interface{}, error) {
	var a detectionsAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if err := validateBoxes("detections", a.Detections); err != nil {
		return nil, err
	}
	frame, err := s.frames.Load(a.Path, imaging.LayoutRGB)
	if err != nil {
		return nil, err
	}

	boxes := make([]imaging.AnnotatedBox, len(a.Detections))
	for i, d := range a.Detections {
		boxes[i] = imaging.AnnotatedBox{
			Region: imaging.Region{X1: d.Box.X1, Y1: d.Box.Y1, X2: d.Box.X2, Y2: d.Box.Y2},
			Label:  labelFor(d.Class),
			Class:  int(d.Class),
		}
	}
	return imaging.AnnotateBoxes(frame.Image(), boxes, a.Scale)
}

// labelFor returns the uppercase overlay label for a class.
func labelFor(c detection.Class) string {
	switch c {
	case detection.ClassFace:
		return "FACE"
	case detection.ClassWeapon:
		return "WEAPON"
	case detection.ClassMask:
		return "MASK"
	default:
		return fmt.Sprintf("%d", int(c))
	}
}
