// Package server implements the MCP protocol layer for detection tools.
//
// This package handles the Model Context Protocol (MCP) communication between
// the detection post-processing library and MCP clients. It implements the
// JSON-RPC 2.0 based protocol over stdin/stdout.
//
// # Protocol Flow
//
//  1. Client sends "initialize" request -> Server responds with capabilities
//  2. Client sends "notifications/initialized" -> Server acknowledges silently
//  3. Client sends "tools/list" -> Server returns available tool definitions
//  4. Client sends "tools/call" -> Server executes the tool and returns results
//
// # Available Tools
//
// Frame handling:
//   - frame_load: Load an image file into the frame cache, report metadata
//   - frame_convert_layout: Reorder a cached frame's channels (rgb <-> bgr)
//
// Detection post-processing:
//   - detections_iou: Overlap ratio of two bounding boxes
//   - detections_dedupe: Collapse duplicate boxes within one detector output
//   - detections_fuse: Merge the outputs of two detectors on the same frame
//
// Visualization:
//   - detections_crop: Extract one detected region as base64 PNG
//   - detections_annotate: Render a detection set onto its frame
//
// # Input Validation
//
// Detection boxes arrive from untrusted clients, so handlers reject inverted
// boxes (x1 > x2 or y1 > y2) and out-of-range thresholds before invoking the
// library, which itself tolerates but does not validate such input.
//
// # Message Format
//
// All communication uses line-delimited JSON-RPC 2.0. Tool results are
// wrapped in MCP's content structure:
//
//	{
//	  "jsonrpc": "2.0",
//	  "id": 1,
//	  "result": {
//	    "content": [{"type": "text", "text": "<JSON result>"}]
//	  }
//	}
//
// # Error Codes
//
// Standard JSON-RPC error codes are used:
//   - -32601: Method not found
//   - -32602: Invalid parameters
//   - -32000: Tool execution error
package server
