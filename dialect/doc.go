// Package dialect holds per-jurisdiction extraction profiles.
//
// Retention schedules from different jurisdictions share one pipeline but
// differ in their lexicons: column gutter defaults, footer boilerplate,
// description lead phrases, disposition phrase lists, citation grammars, and
// internal marker tokens. A [Profile] captures those differences as immutable
// configuration injected into the segmenter, the grid extractor, the
// normalizer, and the scorer, so jurisdiction variants never fork the
// pipeline code itself.
//
// Profiles for known jurisdictions are built in ([Virginia], [Ohio]); new
// ones can be loaded from YAML with [Load].
package dialect
