package vnapi

import (
	"errors"

	"github.com/chazu/vecnet/internal/config"
	"github.com/chazu/vecnet/pkg/svgio"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// AddSVGPath is the strict counterpart of svgio.AddSVGPath, guarded
// against a panic escaping the hand-written path-data parser.
func AddSVGPath(s *vnstore.Store, d string, cfg config.Defaults) Result {
	return guard(func() Result {
		ids, err := svgio.AddSVGPath(s, d, cfg)
		if err != nil {
			return fail(svgIngestError(err, cfg))
		}
		return ok(ids)
	})
}

// AddSVGPathWithStyle is the strict counterpart of
// svgio.AddSVGPathWithStyle.
func AddSVGPathWithStyle(s *vnstore.Store, d string, stroke *vnstore.Color, strokeWidth float32, cfg config.Defaults) Result {
	return guard(func() Result {
		ids, err := svgio.AddSVGPathWithStyle(s, d, stroke, strokeWidth, cfg)
		if err != nil {
			return fail(svgIngestError(err, cfg))
		}
		return ok(ids)
	})
}

// svgIngestError classifies an svgio parse failure into spec.md §4.1's
// catalogue: a configured cap or coordinate bound reports its dedicated
// code, anything else is a generic svg_parse.
func svgIngestError(err error, cfg config.Defaults) *APIError {
	var capErr *svgio.CapError
	if errors.As(err, &capErr) {
		return capsExceeded(capErr.What, capErr.Limit)
	}
	var boundsErr *svgio.BoundsError
	if errors.As(err, &boundsErr) {
		return outOfBounds("coordinate", boundsErr.Value, cfg.CoordMin, cfg.CoordMax)
	}
	return svgParse(err.Error())
}
