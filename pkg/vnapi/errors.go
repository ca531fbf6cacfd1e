package vnapi

// APIError is the strict surface's structured failure value. Code is a
// stable machine-readable tag from spec.md §4.1's catalogue; Data
// carries whatever context helps a caller understand the failure (a
// field name, an offending id, a range). Grounded on
// original_source/contour-wasm/src/error.rs's ok/err builders and typed
// helpers.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (e *APIError) Error() string { return e.Code + ": " + e.Message }

func nonFinite(field string) *APIError {
	return &APIError{
		Code:    "non_finite",
		Message: field + " must be a finite number",
		Data:    map[string]any{"field": field},
	}
}

func outOfRange(field string, got, min, max float64) *APIError {
	return &APIError{
		Code:    "out_of_range",
		Message: field + " is out of range",
		Data:    map[string]any{"field": field, "value": got, "min": min, "max": max},
	}
}

func invalidID(kind string, id uint64) *APIError {
	return &APIError{
		Code:    "invalid_id",
		Message: kind + " id does not refer to a live entity",
		Data:    map[string]any{"kind": kind, "id": id},
	}
}

func invalidEnd(end uint8) *APIError {
	return &APIError{
		Code:    "invalid_end",
		Message: "handle end must be 0 (P1) or 1 (P2)",
		Data:    map[string]any{"end": end},
	}
}

func invalidMode(mode uint8) *APIError {
	return &APIError{
		Code:    "invalid_mode",
		Message: "handle mode is not one of free/mirrored/aligned",
		Data:    map[string]any{"mode": mode},
	}
}

func notCubic(edgeID uint64) *APIError {
	return &APIError{
		Code:    "not_cubic",
		Message: "edge is not a cubic edge",
		Data:    map[string]any{"edge_id": edgeID},
	}
}

func notPolyline(edgeID uint64) *APIError {
	return &APIError{
		Code:    "not_polyline",
		Message: "edge is not a polyline edge",
		Data:    map[string]any{"edge_id": edgeID},
	}
}

func invalidEdge(reason string) *APIError {
	return &APIError{Code: "invalid_edge", Message: reason}
}

func invalidArray(field, expected string) *APIError {
	return &APIError{
		Code:    "invalid_array",
		Message: field + " " + expected,
		Data:    map[string]any{"field": field, "expected": expected},
	}
}

func jsonParse(message string) *APIError {
	return &APIError{Code: "json_parse", Message: message}
}

func svgParse(message string) *APIError {
	return &APIError{Code: "svg_parse", Message: message}
}

func invalidStructure(message string) *APIError {
	return &APIError{Code: "invalid_structure", Message: message}
}

func internalError(message string) *APIError {
	return &APIError{Code: "internal", Message: message}
}

func capsExceeded(what string, limit int) *APIError {
	return &APIError{
		Code:    "caps_exceeded",
		Message: what + " exceeds the configured limit",
		Data:    map[string]any{"what": what, "limit": limit},
	}
}

func outOfBounds(field string, got, min, max float64) *APIError {
	return &APIError{
		Code:    "out_of_bounds",
		Message: field + " is out of the coordinate bounds",
		Data:    map[string]any{"field": field, "value": got, "min": min, "max": max},
	}
}
