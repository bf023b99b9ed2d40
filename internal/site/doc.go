// Package site builds a static HTML site from a tree of Markdown files.
//
// Build copies the static directory to the destination, then converts every
// .md file below the content directory with mdhtml and substitutes the
// {{ Title }} and {{ Content }} placeholders of an HTML template. When the
// site is served below a sub-path, root-relative href="/ and src="/
// attributes are rewritten to start with the configured base path.
//
// Progress is logged through the zerolog logger attached to the context.
package site
