package pipeline

import (
	"encoding/json"
	"io"

	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/logging"
)

// PlatformResult is the detection outcome for one platform. Path is empty
// unless exactly one candidate was found.
type PlatformResult struct {
	Platform   domain.Platform `json:"platform"`
	Path       string          `json:"path"`
	Candidates []string        `json:"candidates"`
	Reason     string          `json:"reason,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// DetectResult is what a front-end pre-fills its path fields with.
type DetectResult struct {
	Microsoft string           `json:"microsoft"`
	Steam     string           `json:"steam"`
	Platforms []PlatformResult `json:"platforms"`
}

// Detection reasons reported when Path is empty.
const (
	ReasonConfiguration = "configuration"
	ReasonNotFound      = "not_found"
	ReasonAmbiguous     = "ambiguous"
	ReasonError         = "error"
)

// Detect runs discovery for every source without prompting. Each platform
// is detected on its own: configuration and not-found errors, more than one
// candidate, and any other failure all yield an empty path for that platform
// only.
func Detect(sources []*Source) DetectResult {
	res := DetectResult{Platforms: make([]PlatformResult, 0, len(sources))}
	for _, src := range sources {
		pr := detectOne(src)
		switch src.Platform {
		case domain.PlatformMicrosoft:
			res.Microsoft = pr.Path
		case domain.PlatformSteam:
			res.Steam = pr.Path
		}
		res.Platforms = append(res.Platforms, pr)
	}
	return res
}

func detectOne(src *Source) PlatformResult {
	pr := PlatformResult{Platform: src.Platform, Candidates: []string{}}

	candidates, _, err := src.Discover()
	switch {
	case domain.IsConfiguration(err):
		logging.Logf(src.Log, logging.LevelDebug, "%s: %v", src.Platform.Label(), err)
		pr.Reason = ReasonConfiguration
		return pr
	case domain.IsNotFound(err):
		logging.Logf(src.Log, logging.LevelDebug, "%s: %v", src.Platform.Label(), err)
		pr.Reason = ReasonNotFound
		return pr
	case err != nil:
		logging.Logf(src.Log, logging.LevelWarn, "%s: detection failed: %v", src.Platform.Label(), err)
		pr.Reason = ReasonError
		pr.Error = err.Error()
		return pr
	}

	pr.Candidates = append(pr.Candidates, candidates...)
	switch len(candidates) {
	case 0:
		pr.Reason = ReasonNotFound
	case 1:
		pr.Path = candidates[0]
	default:
		pr.Reason = ReasonAmbiguous
	}
	return pr
}

// WriteJSON writes res as indented JSON followed by a newline.
func WriteJSON(w io.Writer, res DetectResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
