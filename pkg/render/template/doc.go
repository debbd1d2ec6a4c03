// Package template defines the template engine seam used by document
// renderers, plus a pongo2-backed adapter in the gotemplate subpackage.
package template
