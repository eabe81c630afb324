// Package pipeline wires discovery for one platform: locate the roots, apply
// the root policy, scan for candidate folders, then select one and hand it
// to the converter.
//
// Types:
//   - Source (one platform: Locator, root policy, Scanner, Details)
//   - Stats (roots found, roots scanned, candidates)
//   - DetectResult (non-interactive result for every platform)
//
// Functions:
//   - Source.Discover() → candidates, Stats
//   - Source.Select(ui) → folder
//   - Run(ctx, src, ui, conv) → folder (select then convert)
//   - Detect(sources) → DetectResult
package pipeline
